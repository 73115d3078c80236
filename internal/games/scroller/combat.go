package scroller

import (
	"math"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Projectile geometry.
const (
	projectileBaseW    = 10.0
	projectileTierW    = 5.0
	projectileH        = 10.0
	projectileBackstep = 20.0 // Spawn offset when firing left
)

var weaponNames = [MaxWeaponPower]string{"Basic", "Enhanced", "Super", "Ultra", "Legendary"}

var weaponColors = [MaxWeaponPower]core.Color{
	core.ColorYellow,
	core.ColorOrange,
	core.ColorOrangeRed,
	core.ColorPurple,
	core.ColorMagenta,
}

// WeaponName returns the display name of a weapon tier.
func WeaponName(power int) string {
	return weaponNames[core.Clamp(power, 1, MaxWeaponPower)-1]
}

// WeaponColor returns the projectile color of a weapon tier.
func WeaponColor(power int) core.Color {
	return weaponColors[core.Clamp(power, 1, MaxWeaponPower)-1]
}

// particleColors are picked at random for death effect particles.
var particleColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorWhite,
	core.ColorMagenta,
	core.ColorCyan,
}

// fire spawns a projectile from the player's facing side at mid height.
func (g *Game) fire() {
	p := &g.player
	p.IsAttacking = true
	p.AttackCooldown = g.cfg.Player.AttackDuration

	power := g.run.WeaponPower
	x := p.X - projectileBackstep
	speed := -g.cfg.Combat.ProjectileSpeed
	if p.FacingRight {
		x = p.Right()
		speed = g.cfg.Combat.ProjectileSpeed
	}

	g.projectiles = append(g.projectiles, Projectile{
		Rect:  core.NewRect(x, p.Y+p.H/2-projectileH/2, projectileBaseW+float64(power)*projectileTierW, projectileH),
		Speed: speed,
		Power: power,
	})
}

// moveProjectiles advances shots and drops those that left the viewport.
func (g *Game) moveProjectiles(shift float64) {
	kept := g.projectiles[:0]
	for _, pr := range g.projectiles {
		pr.X += pr.Speed
		pr.X -= shift
		if pr.X > g.view.W || pr.X < 0 {
			continue
		}
		kept = append(kept, pr)
	}
	g.projectiles = kept
}

// takeDamage costs the player one life unless invulnerable.
// Returns true if the hit was applied.
func (g *Game) takeDamage() bool {
	if g.player.Invulnerable {
		return false
	}
	g.loseLife()
	return true
}

// loseLife decrements lives, starts invulnerability and ends the run at zero.
func (g *Game) loseLife() {
	g.run.Lives = core.Clamp(g.run.Lives-1, 0, MaxLives)
	g.player.Invulnerable = true
	g.player.InvulnerableFrames = g.cfg.Player.InvulnerableFrames

	g.log.Debug("life lost", "lives", g.run.Lives, "level", g.run.Level)
	if g.run.Lives == 0 {
		g.endRun()
	}
}

// strikeMonster resolves projectile hits against one live monster.
// Every overlapping projectile is consumed until the monster dies.
// Returns true if the monster was defeated.
func (g *Game) strikeMonster(m *Monster) bool {
	kept := g.projectiles[:0]
	defeated := false
	for _, pr := range g.projectiles {
		if defeated || !pr.Intersects(m.Rect) {
			kept = append(kept, pr)
			continue
		}
		m.Health -= pr.Power
		if m.Health <= 0 {
			defeated = true
		}
	}
	g.projectiles = kept

	if defeated {
		g.defeat(m)
	}
	return defeated
}

// defeat awards the monster's points and moves it to Dying. A monster can
// only be defeated once.
func (g *Game) defeat(m *Monster) {
	if !m.Alive() {
		return
	}
	g.run.Score += m.Points
	m.State = MonsterDying
	m.Platform = PlatformRef{}
	m.Effect = g.newDeathEffect(m.Rect)

	g.log.Debug("monster defeated", "archetype", m.Archetype, "points", m.Points, "score", g.run.Score)
}

// newDeathEffect bursts particles out of the monster's center.
func (g *Game) newDeathEffect(r core.Rect) *DeathEffect {
	cx, cy := r.Center()
	n := g.cfg.Combat.DeathParticles
	if n < 1 {
		n = 1
	}

	particles := make([]Particle, n)
	for i := range particles {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := 1 + g.rng.Float64()*3
		particles[i] = Particle{
			X:     cx,
			Y:     cy,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Color: particleColors[g.rng.Intn(len(particleColors))],
		}
	}

	return &DeathEffect{
		Rect:      r,
		Particles: particles,
		MaxFrames: g.cfg.Combat.DeathEffectFrames,
	}
}

// stepDeathEffect advances a fading effect; returns true once it expired.
func stepDeathEffect(e *DeathEffect, shift, gravity float64) bool {
	e.Frame++
	e.X -= shift
	for i := range e.Particles {
		pt := &e.Particles[i]
		pt.X += pt.VX - shift
		pt.Y += pt.VY
		pt.VY += gravity / 4
	}
	return e.Expired()
}

// collectPowerUp applies a power-up to the run.
func (g *Game) collectPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpHealth:
		g.run.Lives = core.Min(g.run.Lives+1, MaxLives)
	case PowerUpWeapon:
		g.run.WeaponPower = core.Min(g.run.WeaponPower+1, MaxWeaponPower)
	case PowerUpSpeed:
		g.player.Speed += g.cfg.Spawn.SpeedBoost
		g.player.boosts = append(g.player.boosts, speedBoost{
			amount: g.cfg.Spawn.SpeedBoost,
			frames: g.cfg.Spawn.SpeedBoostFrames,
		})
	}
	g.log.Debug("power-up collected", "kind", kind, "lives", g.run.Lives, "weapon", WeaponName(g.run.WeaponPower))
}
