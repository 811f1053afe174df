package storage

// IncrMessageCount bumps a user's participation counter by one and returns
// the new count. The increment is atomic: gateway handlers run concurrently,
// so two near-simultaneous messages must not both observe the same count.
func (s *Storage) IncrMessageCount(userID string) (int, error) {
	return s.participation.Update(userID, func(n int) int { return n + 1 }), nil
}

// MessageCount returns a user's current participation counter.
func (s *Storage) MessageCount(userID string) int {
	count, _ := s.participation.Get(userID)
	return count
}
