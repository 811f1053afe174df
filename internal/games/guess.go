// Package games holds the minigames: guess-the-number and a one-shot
// blackjack round. State is in-memory only.
package games

import (
	"math/rand"
	"sync"
)

// GuessOutcome is the result of one guess.
type GuessOutcome int

const (
	GuessNoGame GuessOutcome = iota
	GuessTooLow
	GuessTooHigh
	GuessCorrect
)

// GuessManager tracks one active guess-the-number game per user.
type GuessManager struct {
	mu    sync.Mutex
	games map[string]int
}

func NewGuessManager() *GuessManager {
	return &GuessManager{games: make(map[string]int)}
}

// Start begins a new game for the user, replacing any active one, and picks
// a secret between 1 and 100.
func (g *GuessManager) Start(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.games[userID] = rand.Intn(100) + 1
}

// Guess compares n against the user's secret. A correct guess ends the game.
func (g *GuessManager) Guess(userID string, n int) GuessOutcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	secret, ok := g.games[userID]
	if !ok {
		return GuessNoGame
	}
	switch {
	case n < secret:
		return GuessTooLow
	case n > secret:
		return GuessTooHigh
	default:
		delete(g.games, userID)
		return GuessCorrect
	}
}
