// Package storage owns the bot's three persistent tables, each backed by its
// own JSON document: registered player IDs, last-seen timestamps, and
// participation counters. Every record is keyed by the Discord user ID.
package storage

import (
	"errors"
	"path/filepath"

	"frostward/internal/datastore"
)

const (
	playerIDsFile     = "player_ids.json"
	lastSeenFile      = "last_seen.json"
	participationFile = "participation.json"
)

type Storage struct {
	players       *datastore.Store[string]
	lastSeen      *datastore.Store[string]
	participation *datastore.Store[int]
}

// Open loads the three documents from dir, creating missing ones.
func Open(dir string) (*Storage, error) {
	players, err := datastore.Open[string](filepath.Join(dir, playerIDsFile))
	if err != nil {
		return nil, err
	}
	lastSeen, err := datastore.Open[string](filepath.Join(dir, lastSeenFile))
	if err != nil {
		players.Close()
		return nil, err
	}
	participation, err := datastore.Open[int](filepath.Join(dir, participationFile))
	if err != nil {
		players.Close()
		lastSeen.Close()
		return nil, err
	}
	return &Storage{players: players, lastSeen: lastSeen, participation: participation}, nil
}

// Close flushes and closes all three tables.
func (s *Storage) Close() error {
	return errors.Join(s.players.Close(), s.lastSeen.Close(), s.participation.Close())
}
