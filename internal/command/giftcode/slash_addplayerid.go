package giftcode

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/middleware"
	"frostward/internal/reply"
)

type AddPlayerIDCommand struct{}

func (c *AddPlayerIDCommand) Name() string        { return "addplayerid" }
func (c *AddPlayerIDCommand) Description() string { return "Register your in-game player ID" }
func (c *AddPlayerIDCommand) Category() string    { return "🎁 Gift Codes" }

func (c *AddPlayerIDCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "player_id",
				Description: "Your in-game player ID",
				Required:    true,
			},
		},
	}
}

func (c *AddPlayerIDCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e, deps := slash.Session, slash.Event, slash.Deps

	playerID := ""
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "player_id" {
			playerID = strings.TrimSpace(opt.StringValue())
		}
	}
	if playerID == "" {
		return reply.Ephemeral(s, e, "A player ID is required.")
	}

	if err := deps.Store.SetPlayerID(invoker(e), playerID); err != nil {
		return fmt.Errorf("save player id: %w", err)
	}
	return reply.Ephemeral(s, e,
		fmt.Sprintf("Your player ID `%s` has been saved for gift code distribution.", playerID))
}

func init() {
	command.Register(middleware.Chain(
		&AddPlayerIDCommand{},
		middleware.WithCommandLogger(),
		middleware.WithGuildOnly(),
	))
}
