package scroller

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config file's own values.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// DifficultyPreset returns the preset games are created with.
func DifficultyPreset() config.DifficultyPreset {
	if difficultyPreset == "" {
		return config.DifficultyNormal
	}
	return difficultyPreset
}

// Game is the simulation context of one run. It owns the player, the
// platform layout and every entity list; nothing else mutates them.
type Game struct {
	cfg        config.ScrollerConfig
	cfgFixed   bool // cfg was supplied with WithConfig
	preset     config.DifficultyPreset
	difficulty *config.DifficultyManager
	log        *log.Logger

	rng        *rand.Rand
	runtime    core.RuntimeConfig
	view       Viewport
	generation uint32
	tick       uint64

	player      Player
	run         RunState
	layout      Layout
	monsters    []*Monster
	projectiles []Projectile
	powerUps    []PowerUp
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading the config file.
func WithConfig(cfg config.ScrollerConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgFixed = true
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithPreset applies a difficulty preset on Reset, overriding the one set
// with SetDifficultyPreset. Ignored together with WithConfig.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) {
		g.preset = p
	}
}

// New creates a new scroller game. Call Reset before the first Update.
func New(opts ...Option) *Game {
	g := &Game{
		cfg: config.DefaultScrollerConfig(),
		log: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "scroller"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Side Scroller"
}

// Reset initializes a new run for the given terminal and seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgFixed {
		cfg, err := config.LoadScroller(configPath)
		if err != nil {
			g.log.Warn("falling back to default config", "err", err)
			cfg = config.DefaultScrollerConfig()
		}
		if p := g.explicitPreset(); p != "" {
			config.ApplyPreset(&cfg, p)
		}
		g.cfg = cfg
	}

	if err := g.cfg.Validate(); err != nil {
		g.log.Warn("config out of range, clamping", "err", err)
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.view = ViewportFor(runtime, g.cfg)
	g.resetRun()

	g.log.Debug("run reset", "seed", runtime.Seed, "viewport_w", g.view.W, "viewport_h", g.view.H,
		"platforms", len(g.layout.Platforms))
}

func (g *Game) explicitPreset() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

// Preset returns the difficulty preset this game was reset with.
func (g *Game) Preset() config.DifficultyPreset {
	if p := g.explicitPreset(); p != "" {
		return p
	}
	return config.DifficultyNormal
}

// ViewportFor converts terminal cells into world units. A zero-sized
// terminal means headless mode and uses the configured viewport.
func ViewportFor(runtime core.RuntimeConfig, cfg config.ScrollerConfig) Viewport {
	rows := runtime.ScreenH - HUDRows
	if runtime.ScreenW <= 0 || rows <= 0 {
		return Viewport{W: cfg.World.ViewportWidth, H: cfg.World.ViewportHeight}
	}
	// Never narrower than the player
	return Viewport{
		W: math.Max(float64(runtime.ScreenW)*cfg.Render.CellWidth, cfg.Player.Width),
		H: float64(rows) * cfg.Render.CellHeight,
	}
}

// Resize changes the viewport. Everything keeps its distance to the
// bottom edge so the ground line stays where the player stands.
func (g *Game) Resize(v Viewport) {
	if v.W <= 0 || v.H <= 0 || v == g.view {
		return
	}
	dy := v.H - g.view.H
	g.view = v

	g.player.Y += dy
	for i := range g.layout.Platforms {
		g.layout.Platforms[i].Y += dy
	}
	for _, m := range g.monsters {
		m.Y += dy
		if m.Effect != nil {
			m.Effect.Y += dy
			for i := range m.Effect.Particles {
				m.Effect.Particles[i].Y += dy
			}
		}
	}
	for i := range g.projectiles {
		g.projectiles[i].Y += dy
	}
	for i := range g.powerUps {
		g.powerUps[i].Y += dy
	}
	g.player.X = core.ClampF(g.player.X, 0, g.view.W-g.player.W)
}

// newPlayer returns the player at the start position on the ground line.
func (g *Game) newPlayer() Player {
	pc := g.cfg.Player
	return Player{
		Rect:        core.NewRect(pc.StartX, g.groundY()-pc.Height, pc.Width, pc.Height),
		Speed:       pc.Speed,
		JumpPower:   pc.JumpPower,
		FacingRight: true,
	}
}

// respawn puts the player back at the start position after a fall.
func (g *Game) respawn() {
	p := &g.player
	p.X = g.cfg.Player.StartX
	p.Y = g.groundY() - p.H
	p.VelX, p.VelY = 0, 0
	p.IsJumping = false
}

// groundY returns the y of the ground line.
func (g *Game) groundY() float64 {
	return g.view.H - g.cfg.World.GroundHeight
}

// Update advances the simulation by one frame. It is a no-op unless the
// run is in the running phase.
func (g *Game) Update(in Intent) core.StepResult {
	if !g.run.Running {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	scrolling := g.steer(in)
	shift := 0.0
	if scrolling {
		shift = g.run.ScrollSpeed
	}

	p := &g.player
	if in.Jump && !p.IsJumping {
		p.VelY = -p.JumpPower
		p.IsJumping = true
	}
	if in.Attack && !p.IsAttacking && p.AttackCooldown <= 0 {
		g.fire()
	}

	g.movePlayer()
	g.shiftPlatforms(shift)
	g.tickPlayerTimers()

	// Falling out of the world costs a life regardless of invulnerability
	if g.fellOut() {
		g.loseLife()
		if !g.run.Running {
			return core.StepResult{State: g.State()}
		}
		g.respawn()
	}

	g.moveProjectiles(shift)
	g.trySpawnMonster()
	g.updateMonsters(shift)
	if !g.run.Running {
		return core.StepResult{State: g.State()}
	}
	g.updatePowerUps(shift)

	if scrolling && g.run.LevelProgress >= g.run.LevelLength {
		g.completeLevel()
	}

	return core.StepResult{State: g.State()}
}

// updateMonsters moves live monsters and resolves their collisions, ages
// death effects, then drops every removed monster.
func (g *Game) updateMonsters(shift float64) {
	for _, m := range g.monsters {
		if !g.run.Running {
			break
		}
		switch m.State {
		case MonsterAlive:
			g.moveMonster(m, shift)

			if g.player.Intersects(m.Rect) && g.takeDamage() {
				// Contact removes the monster without a death effect
				m.State = MonsterRemoved
				continue
			}
			if g.strikeMonster(m) {
				continue
			}
			if m.Right() < 0 {
				m.State = MonsterRemoved
			}
		case MonsterDying:
			if stepDeathEffect(m.Effect, shift, g.cfg.Physics.Gravity) {
				m.State = MonsterRemoved
				m.Effect = nil
			}
		}
	}

	kept := g.monsters[:0]
	for _, m := range g.monsters {
		if m.State != MonsterRemoved {
			kept = append(kept, m)
		}
	}
	// Release pointers left behind the compacted tail
	for i := len(kept); i < len(g.monsters); i++ {
		g.monsters[i] = nil
	}
	g.monsters = kept
}

// updatePowerUps spawns, moves, collects and prunes power-ups.
func (g *Game) updatePowerUps(shift float64) {
	g.trySpawnPowerUp()

	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		g.movePowerUp(&pu, shift)
		if g.player.Intersects(pu.Rect) {
			g.collectPowerUp(pu.Kind)
			continue
		}
		if pu.Right() < 0 {
			continue
		}
		kept = append(kept, pu)
	}
	g.powerUps = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:         g.run.Score,
		Level:         g.run.Level,
		GameOver:      g.run.Phase == PhaseGameOver,
		LevelComplete: g.run.Phase == PhaseLevelComplete,
	}
}

// Run returns a copy of the run state.
func (g *Game) Run() RunState {
	return g.run
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	p := g.player
	p.boosts = append([]speedBoost(nil), g.player.boosts...)
	return p
}

// Viewport returns the visible world area.
func (g *Game) Viewport() Viewport {
	return g.view
}

// GroundY returns the y of the ground line.
func (g *Game) GroundY() float64 {
	return g.groundY()
}

// Tick returns the number of simulated frames since the run started.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Platforms returns the current layout. The slice must not be modified.
func (g *Game) Platforms() []Platform {
	return g.layout.Platforms
}

// Layout returns the current layout with its generation.
func (g *Game) Layout() *Layout {
	return &g.layout
}

// Monsters returns the monsters that still take part in gameplay.
func (g *Game) Monsters() []*Monster {
	out := make([]*Monster, 0, len(g.monsters))
	for _, m := range g.monsters {
		if m.Alive() {
			out = append(out, m)
		}
	}
	return out
}

// Projectiles returns the live projectiles. The slice must not be modified.
func (g *Game) Projectiles() []Projectile {
	return g.projectiles
}

// PowerUps returns the uncollected power-ups. The slice must not be modified.
func (g *Game) PowerUps() []PowerUp {
	return g.powerUps
}

// DeathEffects returns the effects of monsters that are dying.
func (g *Game) DeathEffects() []*DeathEffect {
	var out []*DeathEffect
	for _, m := range g.monsters {
		if m.State == MonsterDying && m.Effect != nil {
			out = append(out, m.Effect)
		}
	}
	return out
}

// Config returns the active configuration.
func (g *Game) Config() config.ScrollerConfig {
	return g.cfg
}
