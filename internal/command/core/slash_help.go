// Package core holds the commands about the bot itself.
package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/middleware"
	"frostward/internal/reply"
	"frostward/internal/version"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show what this bot can do" }
func (c *HelpCommand) Category() string    { return "🛠️ Maintenance" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	// Group registered commands by category.
	byCategory := map[string][]command.Command{}
	for _, cmd := range command.All() {
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], cmd)
	}
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	fmt.Fprintf(&b, "**%s — Help**\n", version.AppName)
	for _, cat := range categories {
		fmt.Fprintf(&b, "\n**%s**\n", cat)
		for _, cmd := range byCategory[cat] {
			fmt.Fprintf(&b, "`/%s` — %s\n", cmd.Name(), cmd.Description())
		}
	}
	b.WriteString("\nPost your furnace upgrades in the furnace channel and the bot will celebrate them.\n")
	b.WriteString("Participation milestones are announced automatically; inactive members are removed after the configured threshold.")

	return reply.Ephemeral(slash.Session, slash.Event, b.String())
}

func init() {
	command.Register(middleware.Chain(
		&HelpCommand{},
		middleware.WithCommandLogger(),
	))
}
