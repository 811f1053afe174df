// Package middleware wraps commands with cross-cutting checks: guild-only
// enforcement, permission gates, and invocation logging.
package middleware

import (
	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
)

type Middleware func(command.Command) command.Command

type wrappedCommand struct {
	command.Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *wrappedCommand) Component(ctx *command.ComponentContext) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return runInner(w.Command, ctx)
}

func (w *wrappedCommand) Modal(ctx *command.ModalContext) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return runInner(w.Command, ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(command.SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func (w *wrappedCommand) UserPermissions() []int64 {
	if pr, ok := w.Command.(command.PermissionRequirer); ok {
		return pr.UserPermissions()
	}
	return nil
}

// runInner continues the chain, dispatching component and modal contexts to
// their handlers and everything else to Run.
func runInner(cmd command.Command, ctx interface{}) error {
	switch v := ctx.(type) {
	case *command.ComponentContext:
		if ch, ok := cmd.(command.ComponentHandler); ok {
			return ch.Component(v)
		}
		return nil
	case *command.ModalContext:
		if mh, ok := cmd.(command.ModalHandler); ok {
			return mh.Modal(v)
		}
		return nil
	default:
		return cmd.Run(ctx)
	}
}

// Chain applies middlewares to cmd; the first listed runs outermost.
func Chain(cmd command.Command, mws ...Middleware) command.Command {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	return cmd
}
