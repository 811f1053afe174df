package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPlayerIDLifecycle(t *testing.T) {
	s := openTest(t)

	_, ok := s.PlayerID("100")
	require.False(t, ok)

	require.NoError(t, s.SetPlayerID("100", "55501"))
	require.NoError(t, s.SetPlayerID("100", "55502")) // resubmission overwrites

	id, ok := s.PlayerID("100")
	require.True(t, ok)
	require.Equal(t, "55502", id)
	require.Equal(t, 1, s.PlayerIDCount())

	removed, ok, err := s.DeletePlayerID("100")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "55502", removed)

	_, ok, err = s.DeletePlayerID("100")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLastSeenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	when := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)
	s.Touch("200", when)
	require.NoError(t, s.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	raw, ok := reopened.LastSeenRaw("200")
	require.True(t, ok)
	require.Equal(t, "2026-08-01T12:30:00Z", raw)
}

func TestParticipationCounter(t *testing.T) {
	s := openTest(t)

	for i := 1; i <= 3; i++ {
		n, err := s.IncrMessageCount("300")
		require.NoError(t, err)
		require.Equal(t, i, n)
	}
	require.Equal(t, 3, s.MessageCount("300"))
	require.Equal(t, 0, s.MessageCount("301"))
}

func TestConcurrentIncrementsLoseNothing(t *testing.T) {
	s := openTest(t)

	// Gateway handlers run in separate goroutines, so two messages from the
	// same user can increment at the same time.
	const goroutines, perGoroutine = 8, 500
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				_, err := s.IncrMessageCount("400")
				require.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, goroutines*perGoroutine, s.MessageCount("400"))
}
