package activity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCounts struct {
	counts map[string]int
}

func (f *fakeCounts) IncrMessageCount(userID string) (int, error) {
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[userID]++
	return f.counts[userID], nil
}

func TestRecordMessageMilestoneFiresExactlyOnce(t *testing.T) {
	tracker := NewTracker(&fakeCounts{}, []int{50, 200, 500})

	hits := 0
	for i := 1; i <= 60; i++ {
		milestone, reached, err := tracker.RecordMessage("u1")
		require.NoError(t, err)
		if reached {
			hits++
			require.Equal(t, 50, milestone)
			require.Equal(t, 50, i, "milestone must fire on the 50th call")
		}
	}
	require.Equal(t, 1, hits)
}

func TestRecordMessageCountersAreIndependent(t *testing.T) {
	tracker := NewTracker(&fakeCounts{}, []int{2})

	_, reached, err := tracker.RecordMessage("a")
	require.NoError(t, err)
	require.False(t, reached)

	_, reached, err = tracker.RecordMessage("b")
	require.NoError(t, err)
	require.False(t, reached)

	milestone, reached, err := tracker.RecordMessage("a")
	require.NoError(t, err)
	require.True(t, reached)
	require.Equal(t, 2, milestone)
}

func TestRecordMessageNoMilestones(t *testing.T) {
	tracker := NewTracker(&fakeCounts{}, nil)

	for i := 0; i < 10; i++ {
		_, reached, err := tracker.RecordMessage("u")
		require.NoError(t, err)
		require.False(t, reached)
	}
}
