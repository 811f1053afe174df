package middleware

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frostward/internal/command"
)

type spyCommand struct {
	runs int
}

func (c *spyCommand) Name() string        { return "spy" }
func (c *spyCommand) Description() string { return "test command" }
func (c *spyCommand) Category() string    { return "test" }
func (c *spyCommand) Run(ctx interface{}) error {
	c.runs++
	return nil
}

func slashCtx(guildID string) *command.SlashContext {
	return &command.SlashContext{
		Event: &discordgo.InteractionCreate{
			Interaction: &discordgo.Interaction{GuildID: guildID},
		},
	}
}

func TestGuildOnlyBlocksDMs(t *testing.T) {
	spy := &spyCommand{}
	cmd := Chain(spy, WithGuildOnly())

	require.NoError(t, cmd.Run(slashCtx("")))
	assert.Zero(t, spy.runs, "DM invocation must not reach the command")

	require.NoError(t, cmd.Run(slashCtx("guild-1")))
	assert.Equal(t, 1, spy.runs)
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(cmd command.Command) command.Command {
			return &wrappedCommand{
				Command: cmd,
				wrap: func(ctx interface{}) error {
					order = append(order, name)
					return runInner(cmd, ctx)
				},
			}
		}
	}

	spy := &spyCommand{}
	cmd := Chain(spy, tag("outer"), tag("inner"))
	require.NoError(t, cmd.Run(slashCtx("g")))

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, spy.runs)
}

func TestRootUnwrapsChain(t *testing.T) {
	spy := &spyCommand{}
	cmd := Chain(spy, WithGuildOnly(), WithCommandLogger())

	assert.Same(t, command.Command(spy), root(cmd))
	assert.Equal(t, "spy", cmd.Name(), "identity passes through the wrappers")
}
