package activity

import "time"

// MemberSnapshot is one guild member as seen at sweep time. LastSeen carries
// the raw stored timestamp; the sweep owns parsing so a corrupt record can't
// break the batch.
type MemberSnapshot struct {
	UserID    string
	Protected bool   // holds an admin or moderator role
	LastSeen  string // raw RFC 3339 value, empty if never recorded
	HasRecord bool
}

// SweepResult partitions a member list: ToRemove are past the threshold,
// ToInitialize were never seen and get stamped with now instead of removed.
type SweepResult struct {
	ToRemove     []string
	ToInitialize []string

	// Members whose stored timestamp failed to parse. They are treated as
	// seen right now and never removed, but the failure must surface as a
	// warning rather than pass silently.
	ParseFailures []ParseFailure
}

type ParseFailure struct {
	UserID string
	Raw    string
	Err    error
}

// Sweep decides removals for one batch of members. Protected members are
// always kept. Removal requires strictly more than threshold since last
// seen, so a member at exactly the boundary survives.
func Sweep(members []MemberSnapshot, now time.Time, threshold time.Duration) SweepResult {
	var res SweepResult

	for _, m := range members {
		if !m.HasRecord {
			res.ToInitialize = append(res.ToInitialize, m.UserID)
			continue
		}

		last, err := time.Parse(time.RFC3339, m.LastSeen)
		if err != nil {
			res.ParseFailures = append(res.ParseFailures, ParseFailure{
				UserID: m.UserID,
				Raw:    m.LastSeen,
				Err:    err,
			})
			continue
		}

		if m.Protected {
			continue
		}
		if now.Sub(last) > threshold {
			res.ToRemove = append(res.ToRemove, m.UserID)
		}
	}
	return res
}
