package games

import (
	"math/rand"
	"strconv"
)

var ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// BlackjackRound is a single dealt round: two cards each, no hits, winner by
// total.
type BlackjackRound struct {
	Player []string
	Dealer []string
}

// BlackjackResult names the round outcome.
type BlackjackResult int

const (
	BlackjackBothBust BlackjackResult = iota
	BlackjackPlayerBust
	BlackjackDealerBust
	BlackjackPlayerWins
	BlackjackDealerWins
	BlackjackTie
)

// DealBlackjack draws two cards for each side.
func DealBlackjack() BlackjackRound {
	draw := func() string { return ranks[rand.Intn(len(ranks))] }
	return BlackjackRound{
		Player: []string{draw(), draw()},
		Dealer: []string{draw(), draw()},
	}
}

// HandValue scores a blackjack hand: face cards count 10, aces 11 demoted to
// 1 while the total busts.
func HandValue(cards []string) int {
	total, aces := 0, 0
	for _, c := range cards {
		switch c {
		case "J", "Q", "K":
			total += 10
		case "A":
			total += 11
			aces++
		default:
			n, _ := strconv.Atoi(c)
			total += n
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// Result scores the round.
func (r BlackjackRound) Result() BlackjackResult {
	p, d := HandValue(r.Player), HandValue(r.Dealer)
	switch {
	case p > 21 && d > 21:
		return BlackjackBothBust
	case p > 21:
		return BlackjackPlayerBust
	case d > 21:
		return BlackjackDealerBust
	case p > d:
		return BlackjackPlayerWins
	case p < d:
		return BlackjackDealerWins
	default:
		return BlackjackTie
	}
}
