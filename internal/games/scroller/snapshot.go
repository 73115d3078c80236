package scroller

import "math"

// Snapshot contains the observable game state for determinism checks.
// Positions are stored in hundredths of a world unit.
type Snapshot struct {
	Tick          uint64
	Phase         int
	Lives         int
	Score         int
	Level         int
	WeaponPower   int
	LevelProgress int
	CameraX       int
	Generation    uint32

	PlayerX, PlayerY int
	PlayerVelY       int

	// Each platform is 5 ints: ID, X, Y, W, Kind
	PlatformData []int
	// Each monster is 6 ints: Archetype, State, X, Y, Health, PlatformID
	MonsterData []int
	// Each projectile is 3 ints: X, Y, Power
	ProjectileData []int
	// Each power-up is 3 ints: Kind, X, Y
	PowerUpData []int
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	platformData := make([]int, 0, len(g.layout.Platforms)*5)
	for _, p := range g.layout.Platforms {
		platformData = append(platformData, int(p.ID), fixed(p.X), fixed(p.Y), fixed(p.W), int(p.Kind))
	}

	monsterData := make([]int, 0, len(g.monsters)*6)
	for _, m := range g.monsters {
		monsterData = append(monsterData, int(m.Archetype), int(m.State), fixed(m.X), fixed(m.Y), m.Health, int(m.Platform.ID))
	}

	projectileData := make([]int, 0, len(g.projectiles)*3)
	for _, pr := range g.projectiles {
		projectileData = append(projectileData, fixed(pr.X), fixed(pr.Y), pr.Power)
	}

	powerUpData := make([]int, 0, len(g.powerUps)*3)
	for _, pu := range g.powerUps {
		powerUpData = append(powerUpData, int(pu.Kind), fixed(pu.X), fixed(pu.Y))
	}

	return Snapshot{
		Tick:          g.tick,
		Phase:         int(g.run.Phase),
		Lives:         g.run.Lives,
		Score:         g.run.Score,
		Level:         g.run.Level,
		WeaponPower:   g.run.WeaponPower,
		LevelProgress: fixed(g.run.LevelProgress),
		CameraX:       fixed(g.run.CameraX),
		Generation:    g.layout.Gen,

		PlayerX:    fixed(g.player.X),
		PlayerY:    fixed(g.player.Y),
		PlayerVelY: fixed(g.player.VelY),

		PlatformData:   platformData,
		MonsterData:    monsterData,
		ProjectileData: projectileData,
		PowerUpData:    powerUpData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, snap.Lives, snap.Score, snap.Level, snap.WeaponPower,
		snap.LevelProgress, snap.CameraX, int(snap.Generation),
		snap.PlayerX, snap.PlayerY, snap.PlayerVelY,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, data := range [][]int{snap.PlatformData, snap.MonsterData, snap.ProjectileData, snap.PowerUpData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}
	return h
}
