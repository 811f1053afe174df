// Package verifycmd implements the /verify command, the persistent
// verification button, and the application modal behind both.
package verifycmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"frostward/internal/command"
	"frostward/internal/middleware"
	"frostward/internal/reply"
	"frostward/internal/verify"
)

type VerifyCommand struct{}

func (c *VerifyCommand) Name() string        { return "verify" }
func (c *VerifyCommand) Description() string { return "Open the server application form" }
func (c *VerifyCommand) Category() string    { return "🛂 Verification" }

func (c *VerifyCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

// Run handles /verify, the backup entry point for members who lost the
// button message.
func (c *VerifyCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	return reply.Modal(slash.Session, slash.Event, command.VerifyModalData())
}

// Component handles the Start Verification button.
func (c *VerifyCommand) Component(ctx *command.ComponentContext) error {
	if ctx.Event.MessageComponentData().CustomID != command.VerifyButtonID {
		return nil
	}
	return reply.Modal(ctx.Session, ctx.Event, command.VerifyModalData())
}

// Modal handles the submitted application.
func (c *VerifyCommand) Modal(ctx *command.ModalContext) error {
	s, e, deps := ctx.Session, ctx.Event, ctx.Deps
	data := e.ModalSubmitData()
	if data.CustomID != command.VerifyModalID {
		return nil
	}
	if e.Member == nil || e.Member.User == nil {
		return fmt.Errorf("modal submitted without member context")
	}
	member := e.Member

	fields := modalFields(data)
	alliance, rank := splitAllianceRank(fields[command.VerifyFieldAllianceRank])

	app := verify.Application{
		UserID:       member.User.ID,
		ServerNumber: strings.TrimSpace(fields[command.VerifyFieldServer]),
		PlayerID:     strings.TrimSpace(fields[command.VerifyFieldPlayerID]),
		Alliance:     alliance,
		Rank:         rank,
		Language:     strings.TrimSpace(fields[command.VerifyFieldLanguage]),
		AgeGroup:     strings.TrimSpace(fields[command.VerifyFieldAgeGroup]),
	}

	if err := deps.Store.SetPlayerID(app.UserID, app.PlayerID); err != nil {
		deps.Ops.ReportFailure("persist player id", app.UserID, err)
	}

	plan := deps.Resolver.Resolve(app, member.Roles)
	applyPlan(s, e.GuildID, app.UserID, plan, deps.Ops)

	c.logApplication(s, app, member, deps)

	return reply.Ephemeral(s, e, ackMessage(plan))
}

// applyPlan executes role changes one by one. A failed mutation never blocks
// the acknowledgment, but each failure goes to the operational log so
// moderators can see that the member believes they are verified while a role
// is missing.
func applyPlan(s *discordgo.Session, guildID, userID string, plan verify.Plan, ops command.OpsReporter) {
	for _, roleID := range plan.Add {
		if err := s.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
			ops.ReportFailure(fmt.Sprintf("add role %s", roleID), userID, err)
		}
	}
	for _, roleID := range plan.Remove {
		if err := s.GuildMemberRoleRemove(guildID, userID, roleID); err != nil {
			ops.ReportFailure(fmt.Sprintf("remove role %s", roleID), userID, err)
		}
	}
}

func (c *VerifyCommand) logApplication(s *discordgo.Session, app verify.Application, member *discordgo.Member, deps *command.Deps) {
	embed := &discordgo.MessageEmbed{
		Title: "New Application",
		Color: reply.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (<@%s>)", member.User.Username, app.UserID)},
			{Name: "Server", Value: app.ServerNumber, Inline: true},
			{Name: "Player ID", Value: app.PlayerID, Inline: true},
			{Name: "Alliance", Value: orDash(app.Alliance), Inline: true},
			{Name: "Rank", Value: orDash(app.Rank), Inline: true},
			{Name: "Language", Value: app.Language, Inline: true},
			{Name: "Age Group", Value: app.AgeGroup, Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	for _, channelID := range []string{deps.Guild.Channels.ReviewInbox, deps.Guild.Channels.ApplicationLog} {
		if channelID == "" {
			continue
		}
		if err := reply.MessageEmbed(s, channelID, embed); err != nil {
			deps.Ops.ReportFailure("post application log", app.UserID, err)
		}
	}

	if wc := deps.Guild.Channels.Welcome; wc != "" {
		msg := fmt.Sprintf("Welcome <@%s>! ✅ Your application has been recorded.", app.UserID)
		if err := reply.Message(s, wc, msg); err != nil {
			deps.Ops.ReportFailure("post welcome", app.UserID, err)
		}
	}
}

// ackMessage tells the submitter exactly which roles could not be matched
// instead of silently skipping them.
func ackMessage(plan verify.Plan) string {
	var b strings.Builder
	b.WriteString("Thank you! ✅ Your application has been submitted and your roles have been updated.")
	if !plan.AllianceMatched {
		b.WriteString("\n⚠️ No alliance role matched your answer — contact an admin if that looks wrong.")
	}
	if !plan.LanguageMatched {
		b.WriteString("\n⚠️ No language role matched your answer — contact an admin if that looks wrong.")
	}
	return b.String()
}

func modalFields(data discordgo.ModalSubmitInteractionData) map[string]string {
	out := make(map[string]string)
	for _, row := range data.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range ar.Components {
			if ti, ok := comp.(*discordgo.TextInput); ok {
				out[ti.CustomID] = ti.Value
			}
		}
	}
	return out
}

// splitAllianceRank splits "BTK R4" into its parts; a lone token is treated
// as the alliance with no rank given.
func splitAllianceRank(v string) (alliance, rank string) {
	parts := strings.Fields(v)
	if len(parts) == 0 {
		return "", ""
	}
	alliance = parts[0]
	if len(parts) > 1 {
		rank = strings.ToUpper(strings.Join(parts[1:], " "))
	}
	return alliance, rank
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

func init() {
	command.Register(middleware.Chain(
		&VerifyCommand{},
		middleware.WithCommandLogger(),
		middleware.WithGuildOnly(),
	))
}
