package scroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

func TestAutopilotRunsAndShootsOnFlatGround(t *testing.T) {
	g := newTestGame(t, quiet)
	groundOnly(g)
	step(g, Intent{}, 1)
	require.False(t, g.Player().IsJumping)

	assert.Equal(t, Intent{Right: true, Attack: true}, NewAutopilot(g).Intent())
}

func TestAutopilotJumpsAtGap(t *testing.T) {
	g := newTestGame(t, quiet)
	// Ground ends just past the player's leading edge
	useLayout(g, Platform{Rect: core.NewRect(-500, g.groundY(), 500+g.player.Right()+10, 50), Kind: KindGround})
	step(g, Intent{}, 1)
	require.False(t, g.Player().IsJumping)

	assert.True(t, NewAutopilot(g).Intent().Jump)
}

func TestAutopilotJumpsOverMonster(t *testing.T) {
	g := newTestGame(t, quiet)
	groundOnly(g)
	step(g, Intent{}, 1)

	p := g.Player()
	m := NewMonster(ArchetypeGrunt, 1, p.Right()+100, 0)
	m.Y = p.Bottom() - m.H
	g.monsters = append(g.monsters, m)

	assert.True(t, NewAutopilot(g).Intent().Jump)
}

func TestAutopilotNoJumpMidAir(t *testing.T) {
	g := newTestGame(t, quiet)
	groundOnly(g)
	step(g, Intent{}, 1)
	step(g, Intent{Jump: true}, 1)
	require.True(t, g.Player().IsJumping)

	assert.False(t, NewAutopilot(g).Intent().Jump)
}

func TestAutopilotClearsFirstLevel(t *testing.T) {
	g := newTestGame(t, quiet, func(c *config.ScrollerConfig) {
		c.Scroll.LevelLength = 2000
	})
	s := NewScheduler(g, NewAutopilot(g), nil)
	require.True(t, s.Start())

	for i := 0; i < 20000; i++ {
		if !s.Frame() {
			break
		}
	}

	assert.Equal(t, PhaseLevelComplete, g.Phase())
	assert.Equal(t, 1, g.Run().Level)
}
