package scroller

import (
	"math"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Lands reports whether a falling body touches down on platform p.
// The body's bottom must be inside [p.Y, p.Bottom()+tolerance] and the
// horizontal spans must overlap.
func Lands(body core.Rect, velY float64, p core.Rect, tolerance float64) bool {
	if velY <= 0 {
		return false
	}
	bottom := body.Bottom()
	return bottom >= p.Y && bottom <= p.Bottom()+tolerance && body.OverlapsX(p)
}

// fall applies one frame of gravity.
func fall(y, velY *float64, gravity float64) {
	*velY += gravity
	*y += *velY
}

// resolveLanding snaps body onto the first platform it lands on and zeroes
// its vertical velocity. Returns the platform index or -1.
func resolveLanding(body *core.Rect, velY *float64, platforms []Platform, tolerance float64) int {
	for i := range platforms {
		if Lands(*body, *velY, platforms[i].Rect, tolerance) {
			body.Y = platforms[i].Y - body.H
			*velY = 0
			return i
		}
	}
	return -1
}

// movePlayer integrates the player and resolves platform landings.
func (g *Game) movePlayer() {
	p := &g.player
	fall(&p.Y, &p.VelY, g.cfg.Physics.Gravity)
	p.X += p.VelX

	// Keep player in bounds
	p.X = core.ClampF(p.X, 0, math.Max(0, g.view.W-p.W))

	p.IsJumping = resolveLanding(&p.Rect, &p.VelY, g.layout.Platforms, g.cfg.Physics.LandingTolerance) < 0
}

// moveMonster integrates one live monster: gravity, scroll shift, landing,
// its own walk, then the edge check on the platform it rests on.
func (g *Game) moveMonster(m *Monster, shift float64) {
	fall(&m.Y, &m.VelY, g.cfg.Physics.Gravity)
	m.X -= shift

	if i := resolveLanding(&m.Rect, &m.VelY, g.layout.Platforms, g.cfg.Physics.LandingTolerance); i >= 0 {
		m.Platform = g.layout.Ref(i)
	}

	m.X -= m.Speed

	// Walking off either edge drops the monster back to airborne physics
	if plat, ok := g.layout.Resolve(m.Platform); !ok || !m.WithinX(plat.Rect) {
		m.Platform = PlatformRef{}
	}
}

// movePowerUp shifts and drops a power-up onto platforms.
func (g *Game) movePowerUp(pu *PowerUp, shift float64) {
	pu.X -= shift
	fall(&pu.Y, &pu.VelY, g.cfg.Physics.Gravity)
	resolveLanding(&pu.Rect, &pu.VelY, g.layout.Platforms, g.cfg.Physics.LandingTolerance)
}

// shiftPlatforms moves the layout left by the scroll amount.
func (g *Game) shiftPlatforms(shift float64) {
	for i := range g.layout.Platforms {
		g.layout.Platforms[i].X -= shift
	}
}

// tickPlayerTimers counts down attack cooldown, invulnerability and boosts.
func (g *Game) tickPlayerTimers() {
	p := &g.player

	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	} else {
		p.IsAttacking = false
	}

	if p.Invulnerable {
		p.InvulnerableFrames--
		if p.InvulnerableFrames <= 0 {
			p.Invulnerable = false
			p.InvulnerableFrames = 0
		}
	}

	active := p.boosts[:0]
	for _, b := range p.boosts {
		b.frames--
		if b.frames <= 0 {
			p.Speed -= b.amount
			continue
		}
		active = append(active, b)
	}
	p.boosts = active
}

// fellOut reports whether the player dropped below the viewport.
func (g *Game) fellOut() bool {
	return g.player.Y > g.view.H
}
