package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"frostward/internal/command"
)

// registerCommands reconciles the guild's slash commands with the registry:
// stale definitions are overwritten, commands no longer registered are
// deleted. Creation calls are paced to stay clear of the rate limiter.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID

	wanted := map[string]*discordgo.ApplicationCommand{}
	for _, cmd := range command.All() {
		sp, ok := cmd.(command.SlashProvider)
		if !ok {
			continue
		}
		wanted[cmd.Name()] = sp.SlashDefinition()
	}

	existing, err := b.dg.ApplicationCommands(appID, guildID)
	if err != nil {
		return fmt.Errorf("list commands: %w", err)
	}

	tick := time.NewTicker(500 * time.Millisecond)
	defer tick.Stop()

	for _, ec := range existing {
		if _, keep := wanted[ec.Name]; keep {
			continue
		}
		<-tick.C
		if err := b.dg.ApplicationCommandDelete(appID, guildID, ec.ID); err != nil {
			log.Error().Err(err).Str("command", ec.Name).Msg("delete obsolete slash command failed")
			continue
		}
		log.Info().Str("command", ec.Name).Msg("deleted obsolete slash command")
	}

	for name, def := range wanted {
		<-tick.C
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, def); err != nil {
			return fmt.Errorf("register /%s: %w", name, err)
		}
		log.Debug().Str("command", name).Msg("registered slash command")
	}

	log.Info().Int("count", len(wanted)).Str("guild", guildID).Msg("slash commands synced")
	return nil
}
