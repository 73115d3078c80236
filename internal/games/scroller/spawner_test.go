package scroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

func ledgeAt(x, y, w float64) Platform {
	return Platform{Rect: core.NewRect(x, y, w, 25), Kind: KindLedge}
}

func TestMonsterCandidates(t *testing.T) {
	const canvasW, groundY = 800.0, 430.0
	platforms := []Platform{
		{Rect: core.NewRect(-500, groundY, 20000, 50), Kind: KindGround}, // ground never qualifies
		ledgeAt(700, 300, 250),  // still on screen
		ledgeAt(760, 300, 250),  // just inside the right edge
		ledgeAt(900, 300, 250),  // ahead
		ledgeAt(1000, 300, 250), // too far ahead
		ledgeAt(850, 300, 90),   // too narrow
		ledgeAt(820, 415, 250),  // too close to the ground
	}

	got := monsterCandidates(platforms, canvasW, groundY, 40)
	assert.Equal(t, []int{2, 3}, got)

	// A wide archetype needs wider platforms
	platforms[3].W = 110
	got = monsterCandidates(platforms, canvasW, groundY, 60)
	assert.Equal(t, []int{2}, got)
}

func TestPowerUpCandidates(t *testing.T) {
	const canvasW, groundY = 800.0, 430.0
	platforms := []Platform{
		{Rect: core.NewRect(-500, groundY, 20000, 50), Kind: KindGround},
		ledgeAt(790, 300, 250),
		ledgeAt(810, 300, 250),
		ledgeAt(1199, 200, 250),
		ledgeAt(1200, 200, 250),
	}

	assert.Equal(t, []int{2, 3}, powerUpCandidates(platforms, canvasW, groundY))
}

func TestSpawnMonsterAnchorsToPlatformEnd(t *testing.T) {
	g := newTestGame(t, quiet, func(c *config.ScrollerConfig) {
		c.Spawn.MonsterFrequency = 0.5
		c.Spawn.MonsterConfirm = 2 // Inner roll always passes
	})
	useLayout(g,
		Platform{Rect: core.NewRect(-500, g.groundY(), 20000, 50), Kind: KindGround},
		ledgeAt(900, 300, 250),
	)

	var m *Monster
	for i := 0; i < 200 && m == nil; i++ {
		m = g.trySpawnMonster()
	}
	require.NotNil(t, m, "a spawn should succeed within 200 rolls")

	st := m.Archetype.Stats(1)
	assert.Equal(t, 900+250-st.W-20, m.X)
	assert.Equal(t, 300.0, m.Bottom())
	assert.Equal(t, g.layout.Ref(1), m.Platform)
	assert.Equal(t, m.MaxHealth, m.Health)
	assert.True(t, m.Alive())
	assert.Len(t, g.Monsters(), 1)
}

func TestSpawnMonsterWithoutCandidates(t *testing.T) {
	g := newTestGame(t, quiet, func(c *config.ScrollerConfig) {
		c.Spawn.MonsterFrequency = 0.5
		c.Spawn.MonsterConfirm = 2
	})
	groundOnly(g)

	for i := 0; i < 500; i++ {
		require.Nil(t, g.trySpawnMonster())
	}
	assert.Empty(t, g.Monsters())
}

func TestSpawnMonsterDisabledAtZeroFrequency(t *testing.T) {
	g := newTestGame(t, quiet)
	useLayout(g,
		Platform{Rect: core.NewRect(-500, g.groundY(), 20000, 50), Kind: KindGround},
		ledgeAt(900, 300, 250),
	)

	for i := 0; i < 2000; i++ {
		require.Nil(t, g.trySpawnMonster())
	}
}

func TestSpawnPowerUpOnPlatform(t *testing.T) {
	g := newTestGame(t, quiet, func(c *config.ScrollerConfig) {
		c.Spawn.PowerUpRate = 1 // Every roll passes
	})
	useLayout(g,
		Platform{Rect: core.NewRect(-500, g.groundY(), 20000, 50), Kind: KindGround},
		ledgeAt(900, 300, 250),
	)

	pu := g.trySpawnPowerUp()
	require.NotNil(t, pu)
	assert.Equal(t, 1025.0, pu.X)
	assert.Equal(t, 270.0, pu.Y)
	assert.Equal(t, 30.0, pu.W)
}

func TestSpawnPowerUpGroundFallback(t *testing.T) {
	g := newTestGame(t, quiet, func(c *config.ScrollerConfig) {
		c.Spawn.PowerUpRate = 1
	})
	groundOnly(g)

	for i := 0; i < 50; i++ {
		pu := g.trySpawnPowerUp()
		require.NotNil(t, pu)
		assert.GreaterOrEqual(t, pu.X, g.view.W)
		assert.Less(t, pu.X, g.view.W+200)
		assert.Equal(t, g.GroundY()-40, pu.Y)
	}
	assert.Len(t, g.PowerUps(), 50)
}

func TestSpawnPowerUpDisabled(t *testing.T) {
	g := newTestGame(t, quiet)
	for i := 0; i < 2000; i++ {
		require.Nil(t, g.trySpawnPowerUp())
	}
}

func TestSpawnedEntitiesStayInForwardWindow(t *testing.T) {
	g := newTestGame(t, func(c *config.ScrollerConfig) {
		c.Spawn.MonsterFrequency = 0.03
		c.Spawn.PowerUpRate = 20
	})

	seenMonsters := map[*Monster]bool{}
	for frame := 0; frame < 1500 && g.IsRunning(); frame++ {
		g.Update(Intent{Right: true, Jump: frame%30 == 0})
		for _, m := range g.Monsters() {
			if seenMonsters[m] {
				continue
			}
			seenMonsters[m] = true
			// First sighting is the spawn frame: one walk step plus at most one scroll shift
			assert.Greater(t, m.X, g.view.W-monsterWindowBack-g.run.ScrollSpeed-m.Speed-m.W)
			assert.Less(t, m.Right(), g.view.W+monsterWindowAhead+ledgeSizes[2])
		}
	}
	assert.NotEmpty(t, seenMonsters, "busy config should spawn monsters")
}
