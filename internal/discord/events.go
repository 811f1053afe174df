package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"frostward/internal/command"
	"frostward/internal/furnace"
	"frostward/internal/reply"
)

// onMessageCreate feeds every human guild message through the activity
// ledger and, depending on the channel, the furnace parser or the
// moderator translation mirror.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	b.store.Touch(m.Author.ID, time.Now())

	milestone, reached, err := b.tracker.RecordMessage(m.Author.ID)
	if err != nil {
		log.Error().Err(err).Str("user", m.Author.ID).Msg("participation count failed")
	} else if reached {
		b.celebrateMilestone(s, m.Author.ID, milestone)
	}

	if m.ChannelID == b.guild.Channels.FurnaceUpgrades {
		b.handleFurnaceMessage(s, m)
		return
	}

	if b.guild.MonitoredChannels()[m.ChannelID] {
		b.mirrorTranslation(s, m)
	}
}

func (b *Bot) celebrateMilestone(s *discordgo.Session, userID string, milestone int) {
	msg := fmt.Sprintf("🎉 <@%s> just reached **%d messages**! Thank you for keeping the server alive!", userID, milestone)
	if err := reply.Message(s, b.guild.Channels.MilestoneFeed, msg); err != nil {
		b.ReportFailure("milestone announcement", userID, err)
	}
}

func (b *Bot) handleFurnaceMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	level, ok := furnace.Parse(m.Content)
	if !ok {
		return
	}
	msg := fmt.Sprintf("🔥 Congratulations <@%s> on reaching furnace **%s**!", m.Author.ID, level)
	if err := reply.Message(s, m.ChannelID, msg); err != nil {
		b.ReportFailure("furnace congratulation", m.Author.ID, err)
	}
}

// mirrorTranslation posts an English rendering of non-English chatter to the
// moderator translation log. The member's language role decides the source;
// English speakers are skipped entirely.
func (b *Bot) mirrorTranslation(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Member == nil || m.Content == "" {
		return
	}
	if b.guild.LanguageCodeForRoles(m.Member.Roles) == "en" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.cfg.TranslateTimeout)
	defer cancel()
	translated := b.translator.Translate(ctx, m.Content, "en")
	if translated == m.Content {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Translated message",
		Description: translated,
		Color:       reply.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Author", Value: fmt.Sprintf("<@%s>", m.Author.ID), Inline: true},
			{Name: "Channel", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true},
			{Name: "Original", Value: m.Content},
		},
	}
	if err := reply.MessageEmbed(s, b.guild.Channels.TranslationLog, embed); err != nil {
		b.ReportFailure("translation mirror", m.Author.ID, err)
	}
}

// onGuildMemberAdd quarantines newcomers behind the pending role and points
// them at the verification button.
func (b *Bot) onGuildMemberAdd(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
	userID := e.User.ID
	log.Info().Str("user", userID).Msg("member joined")

	if err := s.GuildMemberRoleAdd(e.GuildID, userID, b.guild.Roles.Pending); err != nil {
		b.ReportFailure("assign pending role", userID, err)
	}

	if ch := b.guild.Channels.JoinLeaveLog; ch != "" {
		msg := fmt.Sprintf("➡️ <@%s> (%s) joined the server.", userID, e.User.Username)
		if err := reply.Message(s, ch, msg); err != nil {
			b.ReportFailure("join log", userID, err)
		}
	}

	if ch := b.guild.Channels.Verify; ch != "" {
		prompt := fmt.Sprintf("Welcome <@%s>! Press the button below to verify and unlock the server.", userID)
		_, err := s.ChannelMessageSendComplex(ch, &discordgo.MessageSend{
			Content:    prompt,
			Components: command.VerifyPromptComponents(),
		})
		if err != nil {
			b.ReportFailure("verification prompt", userID, err)
		}
	}
}

// onGuildMemberRemove forgets the leaver's stored player ID so stale IDs
// never reach gift code fan-outs.
func (b *Bot) onGuildMemberRemove(s *discordgo.Session, e *discordgo.GuildMemberRemove) {
	userID := e.User.ID
	log.Info().Str("user", userID).Msg("member left")

	playerID, existed, err := b.store.DeletePlayerID(userID)
	if err != nil {
		b.ReportFailure("forget player ID", userID, err)
	} else if existed {
		if ch := b.guild.Channels.GiftcodeLog; ch != "" {
			msg := fmt.Sprintf("🗑️ Removed player ID `%s` for departed member <@%s>.", playerID, userID)
			if sendErr := reply.Message(s, ch, msg); sendErr != nil {
				b.ReportFailure("player ID removal log", userID, sendErr)
			}
		}
	}

	if ch := b.guild.Channels.JoinLeaveLog; ch != "" {
		msg := fmt.Sprintf("⬅️ <@%s> (%s) left the server.", userID, e.User.Username)
		if sendErr := reply.Message(s, ch, msg); sendErr != nil {
			b.ReportFailure("leave log", userID, sendErr)
		}
	}
}
