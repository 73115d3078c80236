package scroller

import "github.com/vovakirdan/tui-scroller/internal/core"

// Autopilot look-ahead distances in world units.
const (
	pilotGapLookahead     = 30
	pilotMonsterLookahead = 160
	pilotFloorSlack       = 5
)

// Autopilot is a scripted InputSource for headless runs. It always runs
// right and shoots, and jumps when the floor ends ahead or a monster gets close.
type Autopilot struct {
	g *Game
}

// NewAutopilot creates an autopilot that reads g.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{g: g}
}

// Intent implements InputSource.
func (a *Autopilot) Intent() Intent {
	p := a.g.player
	in := Intent{Right: true, Attack: true}
	if p.IsJumping {
		return in
	}
	in.Jump = !a.floorAhead(p) || a.monsterAhead(p)
	return in
}

// floorAhead reports whether a platform continues under the player's
// leading edge.
func (a *Autopilot) floorAhead(p Player) bool {
	x := p.Right() + pilotGapLookahead
	for _, plat := range a.g.layout.Platforms {
		top := core.NewRect(plat.X, plat.Y-pilotFloorSlack, plat.W, 2*pilotFloorSlack+1)
		if top.Contains(x, p.Bottom()) {
			return true
		}
	}
	return false
}

func (a *Autopilot) monsterAhead(p Player) bool {
	for _, m := range a.g.monsters {
		if !m.Alive() {
			continue
		}
		d := m.X - p.Right()
		if d >= 0 && d <= pilotMonsterLookahead && m.Bottom() > p.Y && m.Y < p.Bottom() {
			return true
		}
	}
	return false
}
