package gamescmd

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/games"
	"frostward/internal/middleware"
	"frostward/internal/reply"
)

type GuessCommand struct{}

func (c *GuessCommand) Name() string        { return "guess" }
func (c *GuessCommand) Description() string { return "Guess the number for your current game" }
func (c *GuessCommand) Category() string    { return "🎮 Games" }

func (c *GuessCommand) SlashDefinition() *discordgo.ApplicationCommand {
	minValue := float64(1)
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "number",
				Description: "Your guess between 1 and 100",
				Required:    true,
				MinValue:    &minValue,
				MaxValue:    100,
			},
		},
	}
}

func (c *GuessCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e, deps := slash.Session, slash.Event, slash.Deps

	number := 0
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "number" {
			number = int(opt.IntValue())
		}
	}

	switch deps.Guess.Guess(invoker(e), number) {
	case games.GuessNoGame:
		return reply.Ephemeral(s, e, "You don't have an active game. Use `/guessnumber` first.")
	case games.GuessTooLow:
		return reply.Ephemeral(s, e, "Too low! Try again.")
	case games.GuessTooHigh:
		return reply.Ephemeral(s, e, "Too high! Try again.")
	default:
		return reply.Ephemeral(s, e, "🎉 Correct! You guessed the number!")
	}
}

func init() {
	command.Register(middleware.Chain(
		&GuessCommand{},
		middleware.WithCommandLogger(),
	))
}
