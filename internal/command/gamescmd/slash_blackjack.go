package gamescmd

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/games"
	"frostward/internal/middleware"
	"frostward/internal/reply"
)

type BlackjackCommand struct{}

func (c *BlackjackCommand) Name() string        { return "blackjack" }
func (c *BlackjackCommand) Description() string { return "Play a quick blackjack round vs the dealer" }
func (c *BlackjackCommand) Category() string    { return "🎮 Games" }

func (c *BlackjackCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *BlackjackCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	round := games.DealBlackjack()
	lines := []string{
		fmt.Sprintf("Your hand: %s (total %d)", strings.Join(round.Player, ", "), games.HandValue(round.Player)),
		fmt.Sprintf("Dealer hand: %s (total %d)", strings.Join(round.Dealer, ", "), games.HandValue(round.Dealer)),
		verdict(round.Result()),
	}
	return reply.Ephemeral(slash.Session, slash.Event, strings.Join(lines, "\n"))
}

func verdict(r games.BlackjackResult) string {
	switch r {
	case games.BlackjackBothBust:
		return "Both busted. It's a draw."
	case games.BlackjackPlayerBust:
		return "You busted. Dealer wins."
	case games.BlackjackDealerBust:
		return "Dealer busted. You win! 🎉"
	case games.BlackjackPlayerWins:
		return "You win! 🎉"
	case games.BlackjackDealerWins:
		return "Dealer wins."
	default:
		return "It's a tie."
	}
}

func init() {
	command.Register(middleware.Chain(
		&BlackjackCommand{},
		middleware.WithCommandLogger(),
	))
}
