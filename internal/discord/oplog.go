package discord

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"frostward/internal/reply"
)

// ReportFailure implements command.OpsReporter. Every boundary failure (role
// mutation, kick, channel send, command error) lands in the bot errors
// channel so moderators see partial outcomes instead of silence.
func (b *Bot) ReportFailure(op, userID string, err error) {
	log.Error().Err(err).Str("op", op).Str("user", userID).Msg("operation failed")

	ch := b.guild.Channels.BotErrors
	if ch == "" || b.dg == nil {
		return
	}
	msg := fmt.Sprintf("⚠️ **%s** failed for <@%s>: %v", op, userID, err)
	if sendErr := reply.Message(b.dg, ch, msg); sendErr != nil {
		// Nothing else to do: the error channel itself is down.
		log.Error().Err(sendErr).Msg("bot errors channel unreachable")
	}
}
