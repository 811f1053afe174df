package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessLifecycle(t *testing.T) {
	g := NewGuessManager()

	assert.Equal(t, GuessNoGame, g.Guess("u1", 50))

	g.Start("u1")
	// Binary search always terminates with a correct guess.
	lo, hi := 1, 100
	var outcome GuessOutcome
	for i := 0; i < 8; i++ {
		mid := (lo + hi) / 2
		outcome = g.Guess("u1", mid)
		if outcome == GuessCorrect {
			break
		}
		if outcome == GuessTooLow {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	assert.Equal(t, GuessCorrect, outcome)

	// Game ends once won.
	assert.Equal(t, GuessNoGame, g.Guess("u1", 50))
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		cards []string
		want  int
	}{
		{[]string{"10", "9"}, 19},
		{[]string{"J", "Q"}, 20},
		{[]string{"A", "K"}, 21},
		{[]string{"A", "A"}, 12},       // one ace demoted
		{[]string{"A", "A", "9"}, 21},  // both demotions considered
		{[]string{"A", "K", "Q"}, 21},  // ace drops to 1
		{[]string{"K", "Q", "5"}, 25},  // bust
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HandValue(tt.cards), "cards %v", tt.cards)
	}
}

func TestBlackjackResult(t *testing.T) {
	tests := []struct {
		name   string
		round  BlackjackRound
		want   BlackjackResult
	}{
		{"player wins", BlackjackRound{Player: []string{"10", "9"}, Dealer: []string{"10", "7"}}, BlackjackPlayerWins},
		{"dealer wins", BlackjackRound{Player: []string{"10", "6"}, Dealer: []string{"10", "9"}}, BlackjackDealerWins},
		{"tie", BlackjackRound{Player: []string{"10", "8"}, Dealer: []string{"9", "9"}}, BlackjackTie},
		{"player bust", BlackjackRound{Player: []string{"K", "Q", "5"}, Dealer: []string{"10", "9"}}, BlackjackPlayerBust},
		{"dealer bust", BlackjackRound{Player: []string{"10", "9"}, Dealer: []string{"K", "Q", "5"}}, BlackjackDealerBust},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.round.Result())
		})
	}
}
