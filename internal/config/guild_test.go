package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageCodeForRoles(t *testing.T) {
	g := &Guild{
		Languages: []LanguageRole{
			{Name: "english", Code: "en", RoleID: "r-en"},
			{Name: "french", Code: "fr", RoleID: "r-fr"},
			{Name: "german", Code: "de", RoleID: "r-de"},
		},
	}

	assert.Equal(t, "fr", g.LanguageCodeForRoles([]string{"other", "r-fr"}))
	assert.Equal(t, "en", g.LanguageCodeForRoles([]string{"r-en", "r-de"}),
		"table order wins when the member holds several language roles")
	assert.Equal(t, "en", g.LanguageCodeForRoles(nil), "no language role defaults to English")
}

func TestMonitoredChannels(t *testing.T) {
	g := &Guild{
		Channels: Channels{ServerChat: "chat"},
		AllianceChannels: map[string]AllianceChannels{
			"AAA": {Chat: "aaa-chat", LeaderChat: "aaa-lead"},
		},
	}

	set := g.MonitoredChannels()
	assert.True(t, set["chat"])
	assert.True(t, set["aaa-chat"])
	assert.True(t, set["aaa-lead"])
	assert.False(t, set["random"])
}

func TestDefaultGuildTables(t *testing.T) {
	g := DefaultGuild()

	assert.Equal(t, []int{50, 200, 500}, g.Milestones)
	assert.Len(t, g.ProtectedRoles(), 2)

	// Every alliance with channels also has a role mapping.
	for code := range g.AllianceChannels {
		assert.Contains(t, g.AllianceRoles, code)
	}

	// The ambiguous "portuguese" prefix must resolve by table position, so
	// both variants have to be present and ordered.
	var variants []string
	for _, lang := range g.Languages {
		if lang.Code == "pt" {
			variants = append(variants, lang.Name)
		}
	}
	assert.Equal(t, []string{"portuguese (brazil)", "portuguese (portugal)"}, variants)
}
