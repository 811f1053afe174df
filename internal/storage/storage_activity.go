package storage

import "time"

// Touch stamps a user as last seen at t. The write lands on disk with the
// next autosave or an explicit FlushLastSeen; per-message fsyncs would
// amplify writes for no benefit.
func (s *Storage) Touch(userID string, t time.Time) {
	s.lastSeen.Set(userID, t.UTC().Format(time.RFC3339))
}

// LastSeenRaw returns the stored last-seen value without parsing it.
// The inactivity sweep owns interpretation of malformed values.
func (s *Storage) LastSeenRaw(userID string) (string, bool) {
	return s.lastSeen.Get(userID)
}

// AllLastSeen returns a snapshot of the whole last-seen table.
func (s *Storage) AllLastSeen() map[string]string {
	return s.lastSeen.All()
}

// FlushLastSeen persists the last-seen table once. The sweep calls this a
// single time after stamping every first-contact member, instead of saving
// per member.
func (s *Storage) FlushLastSeen() error {
	return s.lastSeen.Save()
}
