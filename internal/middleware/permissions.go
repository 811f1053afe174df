package middleware

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/reply"
)

// WithUserPermissionCheck enforces PermissionRequirer: the invoking member
// needs at least one of the declared permissions. Administrators always pass.
func WithUserPermissionCheck() Middleware {
	return func(cmd command.Command) command.Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				var (
					s         *discordgo.Session
					e         *discordgo.InteractionCreate
					channelID string
				)
				switch v := ctx.(type) {
				case *command.SlashContext:
					s, e, channelID = v.Session, v.Event, v.Event.ChannelID
				case *command.ComponentContext:
					s, e, channelID = v.Session, v.Event, v.Event.ChannelID
				case *command.ModalContext:
					s, e, channelID = v.Session, v.Event, v.Event.ChannelID
				default:
					return runInner(cmd, ctx)
				}

				if e.GuildID == "" || e.Member == nil || e.Member.User == nil {
					return runInner(cmd, ctx)
				}

				pr, ok := root(cmd).(command.PermissionRequirer)
				if !ok {
					return runInner(cmd, ctx)
				}
				required := pr.UserPermissions()
				if len(required) == 0 {
					return runInner(cmd, ctx)
				}

				perms, err := s.UserChannelPermissions(e.Member.User.ID, channelID)
				if err != nil {
					return fmt.Errorf("resolve member permissions: %w", err)
				}
				if perms&discordgo.PermissionAdministrator != 0 {
					return runInner(cmd, ctx)
				}
				for _, p := range required {
					if perms&p != 0 {
						return runInner(cmd, ctx)
					}
				}

				return reply.Ephemeral(s, e, "You don't have permission to use this command.")
			},
		}
	}
}

// root unwraps middleware layers to reach the underlying command.
func root(cmd command.Command) command.Command {
	for {
		w, ok := cmd.(*wrappedCommand)
		if !ok {
			return cmd
		}
		cmd = w.Command
	}
}
