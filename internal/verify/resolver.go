// Package verify holds the decision logic for member verification: resolving
// a submitted application against the guild's static tables into the exact
// set of roles to grant and revoke. No Discord calls happen here; the
// gateway adapter executes the resulting plan.
package verify

import (
	"strings"

	"frostward/internal/config"
)

// Application is one submitted verification form. Ephemeral: only the player
// ID survives, as a storage record.
type Application struct {
	UserID       string
	ServerNumber string
	PlayerID     string
	Alliance     string
	Rank         string
	Language     string
	AgeGroup     string
}

// Plan is the pure outcome of resolving an application. Add and Remove are
// always disjoint.
type Plan struct {
	Add    []string
	Remove []string

	// Which lookups matched, so the acknowledgment can tell the submitter
	// about silently skipped roles instead of dropping them.
	AllianceMatched bool
	LanguageMatched bool
}

type Resolver struct {
	guild *config.Guild
}

func NewResolver(guild *config.Guild) *Resolver {
	return &Resolver{guild: guild}
}

// Resolve computes the role changes for an application. Unmatched alliance or
// language input yields no role for that field, never an error. The pending
// role is removed whenever the member currently holds it.
func (r *Resolver) Resolve(app Application, existingRoles []string) Plan {
	var plan Plan

	if id, ok := r.allianceRole(app.Alliance); ok {
		plan.Add = append(plan.Add, id)
		plan.AllianceMatched = true
	}
	if id, ok := r.languageRole(app.Language); ok {
		plan.Add = append(plan.Add, id)
		plan.LanguageMatched = true
	}
	plan.Add = append(plan.Add, r.ageRole(app.AgeGroup))

	if r.guild.Roles.Pending != "" && contains(existingRoles, r.guild.Roles.Pending) {
		plan.Remove = append(plan.Remove, r.guild.Roles.Pending)
	}
	return plan
}

// allianceRole matches the alliance code case-insensitively against the
// configured table.
func (r *Resolver) allianceRole(input string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(input))
	id, ok := r.guild.AllianceRoles[code]
	return id, ok && id != ""
}

// languageRole matches the language name exactly or by prefix of the first
// configured word, first entry winning. "portuguese" therefore resolves to
// whichever regional variant is listed first.
func (r *Resolver) languageRole(input string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(input))
	if name == "" {
		return "", false
	}
	for _, lang := range r.guild.Languages {
		firstWord := strings.Fields(lang.Name)[0]
		if name == lang.Name || strings.HasPrefix(name, firstWord) {
			return lang.RoleID, true
		}
	}
	return "", false
}

// ageRole is total: any answer containing "under" maps to the under-19 role,
// everything else to 19-plus.
func (r *Resolver) ageRole(input string) string {
	if strings.Contains(strings.ToLower(input), "under") {
		return r.guild.Roles.AgeUnder19
	}
	return r.guild.Roles.Age19Plus
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
