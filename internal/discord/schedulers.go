package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"frostward/internal/activity"
	"frostward/internal/reply"
)

func (b *Bot) startJobs() {
	if err := b.jobs.StartDailyAt("arena-reminder", 23, 55, b.arenaReminder); err != nil {
		log.Debug().Err(err).Msg("arena reminder already scheduled")
	}
	if err := b.jobs.StartEvery("inactivity-sweep", b.cfg.SweepInterval, b.inactivitySweep); err != nil {
		log.Debug().Err(err).Msg("inactivity sweep already scheduled")
	} else {
		// The ticker fires after a full interval; run one sweep soon after
		// startup so a restart doesn't postpone removals by a day. Registered
		// as a job so shutdown cancels it like everything else.
		if err := b.jobs.StartOnceAfter("initial-sweep", time.Minute, b.inactivitySweep); err != nil {
			log.Debug().Err(err).Msg("initial sweep already scheduled")
		}
	}
	log.Info().Strs("jobs", b.jobs.List()).Msg("background jobs started")
}

func (b *Bot) arenaReminder(ctx context.Context) {
	msg := "⚔️ @everyone Arena closes in 5 minutes! Spend your remaining battles now!"
	if err := reply.Message(b.dg, b.guild.Channels.ServerAnnouncements, msg); err != nil {
		b.ReportFailure("arena reminder", "everyone", err)
	}
}

// inactivitySweep walks every guild member, stamps first-contact members as
// seen now, and kicks anyone past the inactivity threshold. All last-seen
// mutations are flushed once at the end of the pass.
func (b *Bot) inactivitySweep(ctx context.Context) {
	now := time.Now()
	protected := map[string]bool{}
	for _, id := range b.guild.ProtectedRoles() {
		protected[id] = true
	}

	for _, g := range b.dg.State.Guilds {
		members, err := b.fetchAllMembers(g.ID)
		if err != nil {
			b.ReportFailure("inactivity sweep member fetch", g.ID, err)
			continue
		}

		snapshots := make([]activity.MemberSnapshot, 0, len(members))
		for _, m := range members {
			if m.User == nil || m.User.Bot {
				continue
			}
			raw, ok := b.store.LastSeenRaw(m.User.ID)
			snapshots = append(snapshots, activity.MemberSnapshot{
				UserID:    m.User.ID,
				Protected: holdsAny(m.Roles, protected),
				LastSeen:  raw,
				HasRecord: ok,
			})
		}

		res := activity.Sweep(snapshots, now, b.cfg.InactivityThreshold)

		for _, userID := range res.ToInitialize {
			b.store.Touch(userID, now)
		}
		for _, pf := range res.ParseFailures {
			log.Warn().Str("user", pf.UserID).Str("raw", pf.Raw).Err(pf.Err).
				Msg("unreadable last-seen record, member kept")
			b.ReportFailure("inactivity sweep timestamp parse", pf.UserID, pf.Err)
		}

		reason := fmt.Sprintf("Inactive for more than %s", b.cfg.InactivityThreshold)
		for _, userID := range res.ToRemove {
			if err := b.dg.GuildMemberDeleteWithReason(g.ID, userID, reason); err != nil {
				b.ReportFailure("inactivity kick", userID, err)
				continue
			}
			if ch := b.guild.Channels.ModLog; ch != "" {
				msg := fmt.Sprintf("🦵 Kicked <@%s> for inactivity (last seen over %s ago).", userID, b.cfg.InactivityThreshold)
				if sendErr := reply.Message(b.dg, ch, msg); sendErr != nil {
					b.ReportFailure("inactivity kick log", userID, sendErr)
				}
			}
		}

		if err := b.store.FlushLastSeen(); err != nil {
			b.ReportFailure("inactivity sweep flush", g.ID, err)
		}

		log.Info().Str("guild", g.ID).
			Int("scanned", len(snapshots)).
			Int("kicked", len(res.ToRemove)).
			Int("initialized", len(res.ToInitialize)).
			Int("parse_failures", len(res.ParseFailures)).
			Msg("inactivity sweep complete")
	}
}

// fetchAllMembers pages through the member list; the gateway state only has
// members seen since startup and cannot be trusted for a full sweep.
func (b *Bot) fetchAllMembers(guildID string) ([]*discordgo.Member, error) {
	var all []*discordgo.Member
	after := ""
	for {
		page, err := b.dg.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < 1000 {
			return all, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func holdsAny(roleIDs []string, set map[string]bool) bool {
	for _, id := range roleIDs {
		if set[id] {
			return true
		}
	}
	return false
}
