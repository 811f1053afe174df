// Package giftcode implements gift-code registration. Actually redeeming a
// code against player accounts has no public API yet, so distribution is a
// stub that records intent.
package giftcode

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/middleware"
	"frostward/internal/reply"
)

type AddCodeCommand struct{}

func (c *AddCodeCommand) Name() string        { return "addcode" }
func (c *AddCodeCommand) Description() string { return "Register a new gift code" }
func (c *AddCodeCommand) Category() string    { return "🎁 Gift Codes" }

func (c *AddCodeCommand) UserPermissions() []int64 {
	return []int64{discordgo.PermissionManageGuild}
}

func (c *AddCodeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "code",
				Description: "The gift code text",
				Required:    true,
			},
		},
	}
}

func (c *AddCodeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e, deps := slash.Session, slash.Event, slash.Deps

	code := ""
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "code" {
			code = opt.StringValue()
		}
	}
	if code == "" {
		return reply.Ephemeral(s, e, "A gift code is required.")
	}

	if err := reply.Ephemeral(s, e, fmt.Sprintf("Gift code `%s` received. Processing...", code)); err != nil {
		return err
	}

	// TODO: call the gift-code redemption endpoint once one is documented.
	count := deps.Store.PlayerIDCount()
	feed := fmt.Sprintf("🎁 Gift code `%s` received. Would apply to **%d** registered player IDs.", code, count)
	if ch := deps.Guild.Channels.GiftcodeFeed; ch != "" {
		if err := reply.Message(s, ch, feed); err != nil {
			deps.Ops.ReportFailure("post giftcode feed", invoker(e), err)
		}
	}
	if ch := deps.Guild.Channels.GiftcodeLog; ch != "" {
		if err := reply.Message(s, ch, fmt.Sprintf("Gift code `%s` registered, redemption stubbed.", code)); err != nil {
			deps.Ops.ReportFailure("post giftcode log", invoker(e), err)
		}
	}
	return nil
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
		&AddCodeCommand{},
		middleware.WithCommandLogger(),
		middleware.WithGuildOnly(),
		middleware.WithUserPermissionCheck(),
	))
}
