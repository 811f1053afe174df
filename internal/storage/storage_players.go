package storage

// SetPlayerID records or overwrites the game player ID for a user.
func (s *Storage) SetPlayerID(userID, playerID string) error {
	s.players.Set(userID, playerID)
	return s.players.Save()
}

// PlayerID returns the registered player ID for a user.
func (s *Storage) PlayerID(userID string) (string, bool) {
	return s.players.Get(userID)
}

// DeletePlayerID removes a user's player ID, returning the removed value.
// Called when a member leaves the server.
func (s *Storage) DeletePlayerID(userID string) (string, bool, error) {
	id, ok := s.players.Get(userID)
	if !ok {
		return "", false, nil
	}
	s.players.Delete(userID)
	return id, true, s.players.Save()
}

// PlayerIDCount returns how many users have registered a player ID.
func (s *Storage) PlayerIDCount() int {
	return s.players.Len()
}
