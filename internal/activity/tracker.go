// Package activity covers the participation counters and the periodic
// inactivity sweep.
package activity

// CountStore is the slice of persistent storage the tracker needs. Satisfied
// by *storage.Storage; tests substitute an in-memory fake.
type CountStore interface {
	IncrMessageCount(userID string) (int, error)
}

// Tracker bumps per-user message counters and reports milestone crossings.
type Tracker struct {
	counts     CountStore
	milestones []int
}

func NewTracker(counts CountStore, milestones []int) *Tracker {
	return &Tracker{counts: counts, milestones: milestones}
}

// RecordMessage increments the user's counter by one. It returns the reached
// milestone iff the new count lands exactly on one; comparing with equality
// rather than >= means each milestone fires once per user. The caller must
// invoke this exactly once per accepted inbound message.
func (t *Tracker) RecordMessage(userID string) (int, bool, error) {
	count, err := t.counts.IncrMessageCount(userID)
	if err != nil {
		return 0, false, err
	}
	for _, m := range t.milestones {
		if count == m {
			return m, true, nil
		}
	}
	return 0, false, nil
}
