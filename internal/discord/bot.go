// Package discord is the gateway adapter: it owns the session, dispatches
// inbound events into commands and the domain components, and executes their
// results against the Discord API.
package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"frostward/internal/activity"
	"frostward/internal/command"
	"frostward/internal/config"
	"frostward/internal/games"
	"frostward/internal/reply"
	"frostward/internal/storage"
	"frostward/internal/translate"
	"frostward/internal/verify"
	"frostward/pkg/jobmgr"
)

type Bot struct {
	dg    *discordgo.Session
	cfg   *config.Config
	guild *config.Guild
	store *storage.Storage

	tracker    *activity.Tracker
	translator *translate.Translator
	deps       *command.Deps
	jobs       *jobmgr.Manager
}

func NewBot(cfg *config.Config, guild *config.Guild, store *storage.Storage) *Bot {
	b := &Bot{
		cfg:        cfg,
		guild:      guild,
		store:      store,
		tracker:    activity.NewTracker(store, guild.Milestones),
		translator: translate.New(translate.NewHTTPBackend(cfg.TranslateURL, cfg.TranslateTimeout)),
		jobs:       jobmgr.New(),
	}
	b.deps = &command.Deps{
		Store:      store,
		Cfg:        cfg,
		Guild:      guild,
		Translator: b.translator,
		Resolver:   verify.NewResolver(guild),
		Guess:      games.NewGuessManager(),
		Ops:        b,
	}
	return b
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsAll
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onGuildMemberAdd)
	dg.AddHandler(b.onGuildMemberRemove)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping jobs")
	b.jobs.StopAll()
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	// Command registration happens in onGuildCreate, which the gateway fires
	// for every guild right after Ready; registering here too would sync each
	// guild twice per boot.
	if !b.cfg.InitSlashCommands {
		log.Info().Msg("slash command registration skipped")
	}

	b.startJobs()
	log.Info().Str("user", r.User.Username).Msg("✅ bot is running")
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Info().Str("guild", g.Guild.ID).Str("name", g.Guild.Name).Msg("guild available")
	if !b.cfg.InitSlashCommands {
		return
	}
	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Error().Err(err).Str("guild", g.Guild.ID).Msg("slash command registration failed")
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		cmd, ok := command.Get(name)
		if !ok {
			log.Warn().Str("command", name).Msg("unknown slash command")
			return
		}
		ctx := &command.SlashContext{Session: s, Event: i, Deps: b.deps}
		if err := cmd.Run(ctx); err != nil {
			b.commandFailed(s, i, name, err)
		}

	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		cmd, handler := b.matchComponent(customID)
		if handler == nil {
			log.Warn().Str("custom_id", customID).Msg("no handler for component")
			return
		}
		ctx := &command.ComponentContext{Session: s, Event: i, Deps: b.deps}
		if err := handler.Component(ctx); err != nil {
			b.commandFailed(s, i, cmd.Name(), err)
		}

	case discordgo.InteractionModalSubmit:
		customID := i.ModalSubmitData().CustomID
		cmd, handler := b.matchModal(customID)
		if handler == nil {
			log.Warn().Str("custom_id", customID).Msg("no handler for modal")
			return
		}
		ctx := &command.ModalContext{Session: s, Event: i, Deps: b.deps}
		if err := handler.Modal(ctx); err != nil {
			b.commandFailed(s, i, cmd.Name(), err)
		}
	}
}

// matchComponent finds the command owning a component by custom ID prefix.
func (b *Bot) matchComponent(customID string) (command.Command, command.ComponentHandler) {
	for _, cmd := range command.All() {
		if !ownsCustomID(cmd.Name(), customID) {
			continue
		}
		if h, ok := cmd.(command.ComponentHandler); ok {
			return cmd, h
		}
	}
	return nil, nil
}

func (b *Bot) matchModal(customID string) (command.Command, command.ModalHandler) {
	for _, cmd := range command.All() {
		if !ownsCustomID(cmd.Name(), customID) {
			continue
		}
		if h, ok := cmd.(command.ModalHandler); ok {
			return cmd, h
		}
	}
	return nil, nil
}

func ownsCustomID(name, customID string) bool {
	return customID == name ||
		strings.HasPrefix(customID, name+":") ||
		strings.HasPrefix(customID, name+"_")
}

// commandFailed reports the error operationally and answers the user with a
// generic apology. Internals never reach end users.
func (b *Bot) commandFailed(s *discordgo.Session, i *discordgo.InteractionCreate, name string, err error) {
	b.ReportFailure("command /"+name, interactionUserID(i), err)
	apology := "⚠️ An error occurred while running that command. Please contact an admin."
	if respondErr := reply.Ephemeral(s, i, apology); respondErr != nil {
		log.Debug().Err(respondErr).Msg("apology response failed, interaction likely already acknowledged")
	}
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return "unknown"
}
