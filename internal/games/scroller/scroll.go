package scroller

// steer applies horizontal intent to the player and decides whether the
// world scrolls this frame. Left takes precedence and never scrolls.
func (g *Game) steer(in Intent) bool {
	p := &g.player

	switch {
	case in.Left:
		p.VelX = -p.Speed
		p.FacingRight = false
	case in.Right:
		p.VelX = p.Speed
		p.FacingRight = true

		if p.X > g.deadZone() {
			// Player holds position while the world moves
			p.VelX = 0
			g.advanceCamera()
			return true
		}
	default:
		p.VelX = 0
	}
	return false
}

// deadZone returns the x past which moving right scrolls the world.
func (g *Game) deadZone() float64 {
	return g.view.W * g.cfg.Scroll.DeadZone
}

// advanceCamera accumulates one frame of scroll distance.
func (g *Game) advanceCamera() {
	g.run.CameraX += g.run.ScrollSpeed
	g.run.LevelProgress += g.run.ScrollSpeed
}

// Progress returns level progress as a ratio in [0, 1].
func (g *Game) Progress() float64 {
	if g.run.LevelLength <= 0 {
		return 0
	}
	r := g.run.LevelProgress / g.run.LevelLength
	if r > 1 {
		return 1
	}
	return r
}
