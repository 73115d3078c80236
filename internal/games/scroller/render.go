package scroller

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// HUDRows is the number of terminal rows above the playfield.
const HUDRows = 2

// Visual characters for rendering
const (
	GroundChar    = '▓'
	LedgeChar     = '█'
	CompanionChar = '▒'
	PlayerChar    = '█'
	PlayerEye     = '▪'
	ProjectileChr = '━'
	ParticleChar  = '*'
	EmberChar     = '·'
	MountainChar  = '▲'
	CloudChar     = '~'
	FullLife      = '★'
	EmptyLife     = '☆'
)

var monsterStyle = map[Archetype]struct {
	glyph rune
	color core.Color
}{
	ArchetypeGrunt: {'▓', core.ColorRed},
	ArchetypeBrute: {'▒', core.ColorDarkRed},
	ArchetypeTank:  {'█', core.ColorPurple},
}

var powerUpColor = map[PowerUpKind]core.Color{
	PowerUpHealth: core.ColorPink,
	PowerUpWeapon: core.ColorGold,
	PowerUpSpeed:  core.ColorSky,
}

// cellRect maps a world rectangle onto screen cells, clipped to dst.
// ok is false when nothing of the rectangle is visible.
func (g *Game) cellRect(dst *core.Screen, r core.Rect) (x, y, w, h int, ok bool) {
	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight
	x0 := int(math.Floor(r.X / cw))
	x1 := int(math.Ceil(r.Right() / cw))
	y0 := HUDRows + int(math.Floor(r.Y/ch))
	y1 := HUDRows + int(math.Ceil(r.Bottom()/ch))

	// Degenerate rectangles still occupy one cell
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Clamp(x0, 0, dst.Width())
	x1 = core.Clamp(x1, 0, dst.Width())
	y0 = core.Clamp(y0, HUDRows, dst.Height())
	y1 = core.Clamp(y1, HUDRows, dst.Height())
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1 - x0, y1 - y0, true
}

// cellPoint maps a world point onto a screen cell.
func (g *Game) cellPoint(x, y float64) (int, int) {
	return int(math.Floor(x / g.cfg.Render.CellWidth)), HUDRows + int(math.Floor(y/g.cfg.Render.CellHeight))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawBackground(dst)
	g.drawPlatforms(dst)
	g.drawPowerUps(dst)
	g.drawMonsters(dst)
	g.drawProjectiles(dst)
	g.drawDeathEffects(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch g.run.Phase {
	case PhaseLevelComplete:
		drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d COMPLETE", g.run.Level), "Press SPACE to continue")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  Press R to restart", g.run.Score))
	}
}

// drawBackground draws mountains and clouds that drift slower than the
// platforms to give a sense of depth.
func (g *Game) drawBackground(dst *core.Screen) {
	_, groundRow := g.cellPoint(0, g.groundY())
	w := dst.Width()

	const mountainGap, cloudGap = 24, 31
	mOffset := int(g.run.CameraX*0.2/g.cfg.Render.CellWidth) % mountainGap
	cOffset := int(g.run.CameraX*0.1/g.cfg.Render.CellWidth) % cloudGap

	for x := -mOffset; x < w; x += mountainGap {
		for i := 0; i < 3; i++ {
			dst.SetColored(x+4+i, groundRow-1, MountainChar, core.ColorGray)
		}
		dst.SetColored(x+5, groundRow-2, MountainChar, core.ColorGray)
	}
	for x := -cOffset; x < w; x += cloudGap {
		dst.DrawTextColored(x+10, HUDRows+1, strings.Repeat(string(CloudChar), 3), core.ColorWhite)
	}
}

func (g *Game) drawPlatforms(dst *core.Screen) {
	for _, p := range g.layout.Platforms {
		x, y, w, h, ok := g.cellRect(dst, p.Rect)
		if !ok {
			continue
		}
		switch p.Kind {
		case KindGround, KindStart:
			dst.FillRect(x, y, w, h, GroundChar, core.ColorGreen)
		case KindCompanion:
			dst.FillRect(x, y, w, h, CompanionChar, core.ColorTan)
		default:
			dst.FillRect(x, y, w, h, LedgeChar, core.ColorBrown)
		}
	}
}

func (g *Game) drawPowerUps(dst *core.Screen) {
	for _, pu := range g.powerUps {
		cx, cy := pu.Center()
		x, y := g.cellPoint(cx, cy)
		dst.SetColored(x, y, pu.Kind.Glyph(), powerUpColor[pu.Kind])
	}
}

func (g *Game) drawMonsters(dst *core.Screen) {
	for _, m := range g.monsters {
		if !m.Alive() {
			continue
		}
		x, y, w, h, ok := g.cellRect(dst, m.Rect)
		if !ok {
			continue
		}
		st := monsterStyle[m.Archetype]
		dst.FillRect(x, y, w, h, st.glyph, st.color)

		// Health bar above damaged monsters
		if m.Health < m.MaxHealth && y > HUDRows {
			filled := int(math.Ceil(float64(w) * float64(m.Health) / float64(m.MaxHealth)))
			dst.FillRect(x, y-1, filled, 1, '▬', core.ColorGreen)
			dst.FillRect(x+filled, y-1, w-filled, 1, '▬', core.ColorRed)
		}
	}
}

func (g *Game) drawProjectiles(dst *core.Screen) {
	for _, pr := range g.projectiles {
		x, y, w, h, ok := g.cellRect(dst, pr.Rect)
		if !ok {
			continue
		}
		dst.FillRect(x, y, w, h, ProjectileChr, WeaponColor(pr.Power))
	}
}

func (g *Game) drawDeathEffects(dst *core.Screen) {
	for _, e := range g.DeathEffects() {
		alpha := e.Alpha()
		if alpha > 0.6 {
			if x, y, w, h, ok := g.cellRect(dst, e.Rect); ok {
				dst.FillRect(x, y, w, h, '░', core.ColorGray)
			}
		}
		glyph := ParticleChar
		if alpha < 0.5 {
			glyph = EmberChar
		}
		for _, pt := range e.Particles {
			x, y := g.cellPoint(pt.X, pt.Y)
			if y >= HUDRows {
				dst.SetColored(x, y, glyph, pt.Color)
			}
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.player
	// Blink while invulnerable
	if p.Invulnerable && (p.InvulnerableFrames/4)%2 == 1 {
		return
	}
	x, y, w, h, ok := g.cellRect(dst, p.Rect)
	if !ok {
		return
	}
	dst.FillRect(x, y, w, h, PlayerChar, core.ColorRed)

	eyeX := x
	if p.FacingRight {
		eyeX = x + w - 1
	}
	dst.SetColored(eyeX, y, PlayerEye, core.ColorWhite)
}

// drawHUD draws score, level, lives, weapon and the level progress bar.
func (g *Game) drawHUD(dst *core.Screen) {
	lives := strings.Repeat(string(FullLife), g.run.Lives) + strings.Repeat(string(EmptyLife), MaxLives-g.run.Lives)
	status := fmt.Sprintf("Score: %d  Level: %d  Lives: %s  Weapon: ", g.run.Score, g.run.Level, lives)
	dst.DrawText(0, 0, status)

	weapon := WeaponName(g.run.WeaponPower)
	wx := utf8.RuneCountInString(status)
	dst.DrawTextColored(wx, 0, weapon, WeaponColor(g.run.WeaponPower))

	if frames := g.player.BoostFrames(); frames > 0 {
		secs := (frames + 59) / 60
		dst.DrawTextColored(wx+len(weapon)+2, 0, fmt.Sprintf("Speed+ %ds", secs), core.ColorSky)
	}

	barW := dst.Width() - 8
	if barW < 1 {
		return
	}
	filled := int(float64(barW) * g.Progress())
	dst.Set(0, 1, '[')
	dst.FillRect(1, 1, filled, 1, '█', core.ColorGreen)
	dst.FillRect(1+filled, 1, barW-filled, 1, '░', core.ColorGray)
	dst.DrawText(barW+1, 1, fmt.Sprintf("] %3d%%", int(g.Progress()*100)))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw := utf8.RuneCountInString(title)
	sw := utf8.RuneCountInString(subtitle)

	// Calculate box dimensions
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorGold)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '┄')
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
