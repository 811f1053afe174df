// Package translatecmd implements /translate: translate any text into the
// invoking member's language, as declared by their language role.
package translatecmd

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/middleware"
	"frostward/internal/reply"
)

type TranslateCommand struct{}

func (c *TranslateCommand) Name() string        { return "translate" }
func (c *TranslateCommand) Description() string { return "Translate text into your language" }
func (c *TranslateCommand) Category() string    { return "🌐 Translation" }

func (c *TranslateCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "The text you want translated",
				Required:    true,
			},
		},
	}
}

func (c *TranslateCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	s, e, deps := slash.Session, slash.Event, slash.Deps

	text := ""
	for _, opt := range e.ApplicationCommandData().Options {
		if opt.Name == "text" {
			text = opt.StringValue()
		}
	}

	lang := "en"
	if e.Member != nil {
		lang = deps.Guild.LanguageCodeForRoles(e.Member.Roles)
	}

	translated := deps.Translator.Translate(context.Background(), text, lang)
	return reply.Ephemeral(s, e, fmt.Sprintf("🌐 Translation to your language (%s):\n%s", lang, translated))
}

func init() {
	command.Register(middleware.Chain(
		&TranslateCommand{},
		middleware.WithCommandLogger(),
		middleware.WithGuildOnly(),
	))
}
