package scroller

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

func TestLands(t *testing.T) {
	plat := core.NewRect(100, 300, 200, 25)

	tests := []struct {
		name     string
		body     core.Rect
		velY     float64
		expected bool
	}{
		{"bottom on top edge", core.NewRect(150, 260, 40, 40), 1, true},
		{"bottom inside platform", core.NewRect(150, 270, 40, 40), 1, true},
		{"bottom at tolerance limit", core.NewRect(150, 295, 40, 40), 1, true},
		{"bottom past tolerance", core.NewRect(150, 296, 40, 40), 1, false},
		{"bottom above platform", core.NewRect(150, 259, 40, 40), 1, false},
		{"moving up", core.NewRect(150, 270, 40, 40), -1, false},
		{"resting", core.NewRect(150, 270, 40, 40), 0, false},
		{"left of platform", core.NewRect(60, 270, 40, 40), 1, false},
		{"overlapping left edge", core.NewRect(61, 270, 40, 40), 1, true},
		{"right of platform", core.NewRect(300, 270, 40, 40), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lands(tt.body, tt.velY, plat, 10); got != tt.expected {
				t.Errorf("Lands() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestResolveLandingNeverPenetrates(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	platforms := Generate(rng, GenParams{CanvasW: 800, GroundY: 430, LevelLength: 9000, Density: 2})

	for i := 0; i < 5000; i++ {
		body := core.NewRect(rng.Float64()*3000-200, rng.Float64()*480, 10+rng.Float64()*50, 10+rng.Float64()*50)
		velY := rng.Float64()*30 - 10

		expectLand := false
		for _, p := range platforms {
			if Lands(body, velY, p.Rect, 10) {
				expectLand = true
				break
			}
		}

		idx := resolveLanding(&body, &velY, platforms, 10)
		if !expectLand {
			require.Equal(t, -1, idx)
			continue
		}
		require.GreaterOrEqual(t, idx, 0)
		assert.Equal(t, platforms[idx].Y, body.Bottom(), "landed body must sit on the platform top")
		assert.Zero(t, velY, "landing must zero vertical velocity")
	}
}

func TestPlayerJumpsAndLands(t *testing.T) {
	g := newTestGame(t, quiet)
	step(g, Intent{}, 2)

	g.Update(Intent{Jump: true})
	require.True(t, g.Player().IsJumping)
	require.Less(t, g.Player().VelY, 0.0)
	peak := g.Player().Y

	// Holding jump mid-air does not jump again
	for i := 0; i < 20; i++ {
		g.Update(Intent{Jump: true})
		peak = min(peak, g.Player().Y)
	}
	assert.Less(t, peak, g.GroundY()-g.Player().H-200)

	step(g, Intent{}, 100)
	p := g.Player()
	assert.False(t, p.IsJumping)
	assert.Equal(t, g.GroundY(), p.Bottom())
	assert.Zero(t, p.VelY)
}

func TestPlayerClampedToViewport(t *testing.T) {
	g := newTestGame(t, quiet)

	step(g, Intent{Left: true}, 40)
	assert.Equal(t, 0.0, g.Player().X)
	assert.False(t, g.Player().FacingRight)
}

func TestMonsterWalksOffPlatformEdge(t *testing.T) {
	g := newTestGame(t, quiet)
	ground := Platform{Rect: core.NewRect(-500, g.groundY(), 20000, 50), Kind: KindGround}
	ledge := Platform{Rect: core.NewRect(500, 300, 100, 25), Kind: KindLedge}
	useLayout(g, ground, ledge)

	m := NewMonster(ArchetypeGrunt, 1, 550, 260)
	m.Platform = g.layout.Ref(1)
	g.monsters = append(g.monsters, m)

	g.Update(Intent{})
	plat, ok := g.layout.Resolve(m.Platform)
	require.True(t, ok, "monster should rest on the ledge")
	assert.Equal(t, KindLedge, plat.Kind)
	assert.Equal(t, 300.0, m.Bottom())

	// Walks left at 1.35 per frame and crosses the ledge's left edge on frame 38
	step(g, Intent{}, 37)
	assert.False(t, m.Platform.Valid(), "ref must be cleared once the monster leaves the ledge span")

	step(g, Intent{}, 112)
	plat, ok = g.layout.Resolve(m.Platform)
	require.True(t, ok, "monster should have fallen onto the ground")
	assert.Equal(t, KindGround, plat.Kind)
	assert.Equal(t, g.GroundY(), m.Bottom())
	assert.Zero(t, m.VelY)
}

func TestPowerUpFallsOntoPlatform(t *testing.T) {
	g := newTestGame(t, quiet)
	groundOnly(g)

	g.powerUps = append(g.powerUps, PowerUp{Rect: core.NewRect(600, 100, 30, 30), Kind: PowerUpHealth})
	step(g, Intent{}, 60)

	require.Len(t, g.PowerUps(), 1)
	pu := g.PowerUps()[0]
	assert.Equal(t, g.GroundY(), pu.Bottom())
	assert.Zero(t, pu.VelY)
}

func TestFallingOutOfWorldCostsLife(t *testing.T) {
	g := newTestGame(t, quiet)
	useLayout(g)

	for i := 0; i < 200 && g.Run().Lives == 5; i++ {
		g.Update(Intent{})
	}

	require.Equal(t, 4, g.Run().Lives)
	p := g.Player()
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, g.GroundY()-p.H, p.Y)
	assert.True(t, p.Invulnerable)
	assert.Equal(t, PhaseRunning, g.Phase())
}

func TestFallingIgnoresInvulnerability(t *testing.T) {
	g := newTestGame(t, quiet)
	useLayout(g)
	g.player.Invulnerable = true
	g.player.InvulnerableFrames = 1000
	g.player.Y = g.view.H + 1

	g.Update(Intent{})
	assert.Equal(t, 4, g.Run().Lives)
}
