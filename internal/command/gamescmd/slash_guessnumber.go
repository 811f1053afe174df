// Package gamescmd exposes the minigames as slash commands.
package gamescmd

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/middleware"
	"frostward/internal/reply"
)

type GuessNumberCommand struct{}

func (c *GuessNumberCommand) Name() string        { return "guessnumber" }
func (c *GuessNumberCommand) Description() string { return "Start a guess-the-number game (1-100)" }
func (c *GuessNumberCommand) Category() string    { return "🎮 Games" }

func (c *GuessNumberCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *GuessNumberCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	slash.Deps.Guess.Start(invoker(slash.Event))
	return reply.Ephemeral(slash.Session, slash.Event,
		"I've picked a number between 1 and 100. Use `/guess <number>` to try!")
}

func invoker(e *discordgo.InteractionCreate) string {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User.ID
	}
	if e.User != nil {
		return e.User.ID
	}
	return "unknown"
}

func init() {
	command.Register(middleware.Chain(
		&GuessNumberCommand{},
		middleware.WithCommandLogger(),
	))
}
