package middleware

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"frostward/internal/command"
)

// WithCommandLogger records every invocation with its outcome.
func WithCommandLogger() Middleware {
	return func(cmd command.Command) command.Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				err := runInner(cmd, ctx)

				evt := log.Info()
				if err != nil {
					evt = log.Error().Err(err)
				}
				evt = evt.Str("command", cmd.Name())
				switch v := ctx.(type) {
				case *command.SlashContext:
					evt = evt.Str("kind", "slash").Str("guild", v.Event.GuildID).Str("user", invokerID(v.Event))
				case *command.ComponentContext:
					evt = evt.Str("kind", "component").Str("guild", v.Event.GuildID).Str("user", invokerID(v.Event))
				case *command.ModalContext:
					evt = evt.Str("kind", "modal").Str("guild", v.Event.GuildID).Str("user", invokerID(v.Event))
				}
				evt.Msg("command executed")
				return err
			},
		}
	}
}

// invokerID works for both guild (Member) and DM (User) interactions.
func invokerID(e *discordgo.InteractionCreate) string {
	if e.Member != nil && e.Member.User != nil {
		return e.Member.User.ID
	}
	if e.User != nil {
		return e.User.ID
	}
	return "unknown"
}
