package scroller

import (
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Spawn geometry.
const (
	monsterWindowBack  = 50.0  // Monster platforms may start this far inside the right edge
	monsterWindowAhead = 200.0 // ...and at most this far beyond it
	monsterMinClear    = 20.0  // Platforms this close to the ground line are skipped
	monsterEdgeRoom    = 60.0  // Platform must be this much wider than the monster
	monsterEdgeInset   = 20.0  // Distance from the platform's right end
	powerUpSize        = 30.0
	powerUpWindow      = 1.5 // Power-up platforms start before CanvasW * powerUpWindow
	powerUpGroundSpan  = 200.0
	powerUpGroundLift  = 10.0
)

// monsterCandidates returns the indices of platforms just beyond the right
// edge that can hold a monster of width w.
func monsterCandidates(platforms []Platform, canvasW, groundY, w float64) []int {
	var out []int
	for i, p := range platforms {
		if p.X > canvasW-monsterWindowBack &&
			p.X < canvasW+monsterWindowAhead &&
			p.Y < groundY-monsterMinClear &&
			p.W >= w+monsterEdgeRoom {
			out = append(out, i)
		}
	}
	return out
}

// powerUpCandidates returns the indices of elevated platforms just ahead of
// the viewport.
func powerUpCandidates(platforms []Platform, canvasW, groundY float64) []int {
	var out []int
	for i, p := range platforms {
		if p.X > canvasW && p.X < canvasW*powerUpWindow && p.Y < groundY {
			out = append(out, i)
		}
	}
	return out
}

// trySpawnMonster rolls for a monster and anchors it to the right end of a
// platform entering the view. No eligible platform means no spawn.
func (g *Game) trySpawnMonster() *Monster {
	freq := g.run.MonsterSpawnFrequency
	if g.rng.Float64() < freq {
		return nil
	}
	if g.rng.Float64() >= freq*g.cfg.Spawn.MonsterConfirm {
		return nil
	}

	arch := Archetype(g.rng.Intn(int(archetypeCount)))
	st := arch.Stats(g.run.Level)

	candidates := monsterCandidates(g.layout.Platforms, g.view.W, g.groundY(), st.W)
	if len(candidates) == 0 {
		return nil
	}
	i := candidates[g.rng.Intn(len(candidates))]
	plat := g.layout.Platforms[i]

	m := NewMonster(arch, g.run.Level, plat.Right()-st.W-monsterEdgeInset, plat.Y-st.H)
	m.Platform = g.layout.Ref(i)
	g.monsters = append(g.monsters, m)

	g.log.Debug("monster spawned", "archetype", arch, "health", m.Health, "platform", m.Platform.ID)
	return m
}

// trySpawnPowerUp rolls for a power-up; larger rates are rarer and a
// non-positive rate disables spawning.
func (g *Game) trySpawnPowerUp() *PowerUp {
	rate := g.run.PowerUpSpawnRate
	if rate <= 0 {
		return nil
	}
	if g.rng.Float64()*rate >= 1 {
		return nil
	}

	kind := PowerUpKind(g.rng.Intn(int(powerUpKindCount)))
	var x, y float64

	if candidates := powerUpCandidates(g.layout.Platforms, g.view.W, g.groundY()); len(candidates) > 0 {
		plat := g.layout.Platforms[candidates[g.rng.Intn(len(candidates))]]
		x = plat.X + plat.W/2
		y = plat.Y - powerUpSize
	} else {
		x = g.view.W + g.rng.Float64()*powerUpGroundSpan
		y = g.groundY() - powerUpSize - powerUpGroundLift
	}

	g.powerUps = append(g.powerUps, PowerUp{
		Rect: core.NewRect(x, y, powerUpSize, powerUpSize),
		Kind: kind,
	})
	return &g.powerUps[len(g.powerUps)-1]
}
