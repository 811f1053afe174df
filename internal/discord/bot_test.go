package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"frostward/internal/config"
)

func TestGuildCreateHonorsRegistrationFlag(t *testing.T) {
	b := NewBot(&config.Config{InitSlashCommands: false}, config.DefaultGuild(), nil)

	// With registration disabled the handler must bail out before touching
	// the session; the nil session panics otherwise.
	g := &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "g1", Name: "test"}}
	require.NotPanics(t, func() { b.onGuildCreate(nil, g) })
}

func TestStartupSweepStoppedWithJobs(t *testing.T) {
	b := NewBot(&config.Config{SweepInterval: time.Hour}, config.DefaultGuild(), nil)

	b.startJobs()
	require.Contains(t, b.jobs.List(), "initial-sweep")

	// Shutdown within the first minute must cancel the warmup sweep too.
	b.jobs.StopAll()
	require.Empty(t, b.jobs.List())
}
