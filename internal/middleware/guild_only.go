package middleware

import "frostward/internal/command"

// WithGuildOnly drops invocations that arrive outside a guild (DMs).
func WithGuildOnly() Middleware {
	return func(cmd command.Command) command.Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				switch v := ctx.(type) {
				case *command.SlashContext:
					if v.Event.GuildID == "" {
						return nil
					}
				case *command.ComponentContext:
					if v.Event.GuildID == "" {
						return nil
					}
				case *command.ModalContext:
					if v.Event.GuildID == "" {
						return nil
					}
				}
				return runInner(cmd, ctx)
			},
		}
	}
}
