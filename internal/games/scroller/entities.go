// Package scroller implements a side-scrolling platform shooter.
// The player runs right across generated platforms, jumps, and shoots
// monsters that spawn ahead of the camera; the level ends once enough
// distance has been scrolled.
//
// All positions are in world units. The viewport spans [0, W] x [0, H]
// with y growing downwards; the player stays inside the viewport while
// every other entity is shifted left when the camera scrolls.
package scroller

import (
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Stat bounds for the run.
const (
	MaxLives       = 5
	MaxWeaponPower = 5
)

// Player is the single player-controlled character of a run.
type Player struct {
	core.Rect
	VelX, VelY         float64
	Speed              float64 // Current horizontal speed, including boosts
	JumpPower          float64
	IsJumping          bool // Airborne
	IsAttacking        bool
	AttackCooldown     int // Frames until the next shot is allowed
	Invulnerable       bool
	InvulnerableFrames int
	FacingRight        bool

	boosts []speedBoost
}

// speedBoost is one active speed power-up.
type speedBoost struct {
	amount float64
	frames int
}

// BoostFrames returns the frames left on the longest active speed boost.
func (p Player) BoostFrames() int {
	longest := 0
	for _, b := range p.boosts {
		longest = core.Max(longest, b.frames)
	}
	return longest
}

// PlatformKind is the visual tag of a platform.
type PlatformKind int

const (
	KindGround    PlatformKind = iota // Full-span floor
	KindLedge                         // Elevated platform
	KindCompanion                     // Smaller platform next to a ledge
	KindStart                         // Platform under the player at level start
)

// String returns the name of the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindLedge:
		return "ledge"
	case KindCompanion:
		return "companion"
	case KindStart:
		return "start"
	default:
		return "unknown"
	}
}

// PlatformID identifies a platform within one layout. Zero is never assigned.
type PlatformID uint32

// PlatformRef is a generation-checked handle to a platform.
// The zero value refers to nothing.
type PlatformRef struct {
	Gen uint32
	ID  PlatformID
}

// Valid reports whether the ref points at a platform at all.
func (r PlatformRef) Valid() bool {
	return r.ID != 0
}

// Platform is a static rectangle; only X changes after generation.
type Platform struct {
	core.Rect
	Kind PlatformKind
	ID   PlatformID
}

// Layout is one generated set of platforms, sorted by X.
type Layout struct {
	Gen       uint32
	Platforms []Platform
	index     map[PlatformID]int
}

// newLayout builds a layout and its ID index.
func newLayout(gen uint32, platforms []Platform) Layout {
	idx := make(map[PlatformID]int, len(platforms))
	for i, p := range platforms {
		idx[p.ID] = i
	}
	return Layout{Gen: gen, Platforms: platforms, index: idx}
}

// Ref returns the handle for the platform at position i.
func (l *Layout) Ref(i int) PlatformRef {
	return PlatformRef{Gen: l.Gen, ID: l.Platforms[i].ID}
}

// Resolve returns the platform a ref points at, or false when the ref is
// empty or belongs to an older layout.
func (l *Layout) Resolve(ref PlatformRef) (*Platform, bool) {
	if !ref.Valid() || ref.Gen != l.Gen {
		return nil, false
	}
	i, ok := l.index[ref.ID]
	if !ok {
		return nil, false
	}
	return &l.Platforms[i], true
}

// Archetype is one of the fixed monster templates.
type Archetype int

const (
	ArchetypeGrunt Archetype = iota // Small and quick
	ArchetypeBrute                  // Wide and fastest
	ArchetypeTank                   // Slow with the most health
	archetypeCount
)

// String returns the archetype name.
func (a Archetype) String() string {
	switch a {
	case ArchetypeGrunt:
		return "grunt"
	case ArchetypeBrute:
		return "brute"
	case ArchetypeTank:
		return "tank"
	default:
		return "unknown"
	}
}

// MonsterStats are the level-scaled properties of an archetype.
type MonsterStats struct {
	W, H   float64
	Speed  float64
	Health int
	Points int
}

// Stats returns the archetype's stats at the given level.
func (a Archetype) Stats(level int) MonsterStats {
	l := float64(level)
	switch a {
	case ArchetypeBrute:
		return MonsterStats{W: 60, H: 30, Speed: 1.6 + l*0.12, Health: 2 * level, Points: 20}
	case ArchetypeTank:
		return MonsterStats{W: 50, H: 50, Speed: 0.8 + l*0.08, Health: 3 * level, Points: 30}
	default:
		return MonsterStats{W: 40, H: 40, Speed: 1.2 + l*0.15, Health: level, Points: 10}
	}
}

// MonsterState is the lifecycle tag of a monster.
type MonsterState int

const (
	MonsterAlive   MonsterState = iota // Takes part in physics and combat
	MonsterDying                       // Defeated; only its death effect is updated
	MonsterRemoved                     // Pruned at the end of the frame
)

// Monster is an enemy walking left along platforms.
type Monster struct {
	core.Rect
	VelY      float64
	Speed     float64
	Health    int
	MaxHealth int
	Points    int
	Archetype Archetype
	Platform  PlatformRef // Platform the monster rests on; zero when airborne
	State     MonsterState
	Effect    *DeathEffect // Set while Dying
}

// NewMonster creates a live monster of the given archetype at (x, y).
func NewMonster(a Archetype, level int, x, y float64) *Monster {
	st := a.Stats(level)
	return &Monster{
		Rect:      core.NewRect(x, y, st.W, st.H),
		Speed:     st.Speed,
		Health:    st.Health,
		MaxHealth: st.Health,
		Points:    st.Points,
		Archetype: a,
	}
}

// Alive reports whether the monster still takes part in gameplay.
func (m *Monster) Alive() bool {
	return m.State == MonsterAlive
}

// Projectile is a shot fired by the player.
type Projectile struct {
	core.Rect
	Speed float64 // Signed horizontal speed
	Power int
}

// PowerUpKind is the closed set of power-up effects.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpWeapon
	PowerUpSpeed
	powerUpKindCount
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpWeapon:
		return "weapon"
	case PowerUpSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpHealth:
		return '♥'
	case PowerUpWeapon:
		return '†'
	case PowerUpSpeed:
		return '»'
	default:
		return '?'
	}
}

// PowerUp is a collectible item that falls onto platforms.
type PowerUp struct {
	core.Rect
	VelY float64
	Kind PowerUpKind
}

// Particle is one fragment of a death effect.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  core.Color
}

// DeathEffect is the fading remains of a defeated monster.
type DeathEffect struct {
	core.Rect
	Particles []Particle
	Frame     int
	MaxFrames int
}

// Alpha returns the remaining opacity in [0, 1].
func (e *DeathEffect) Alpha() float64 {
	if e.MaxFrames <= 0 {
		return 0
	}
	return core.ClampF(1-float64(e.Frame)/float64(e.MaxFrames), 0, 1)
}

// Expired reports whether the effect has used its frame budget.
func (e *DeathEffect) Expired() bool {
	return e.Frame >= e.MaxFrames
}

// Phase is the run lifecycle state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseLevelComplete
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RunState holds the scalar state of a run.
type RunState struct {
	Lives                 int
	Score                 int
	Level                 int
	WeaponPower           int
	ScrollSpeed           float64
	MonsterSpawnFrequency float64
	PowerUpSpawnRate      float64
	PlatformDensity       float64
	LevelProgress         float64
	LevelLength           float64
	CameraX               float64
	Running               bool
	Phase                 Phase
}

// Viewport is the visible world area in world units.
type Viewport struct {
	W, H float64
}

// Intent is the per-frame input snapshot read by the simulation.
type Intent struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

// IntentFromInput maps held actions onto an intent.
func IntentFromInput(in core.InputFrame) Intent {
	return Intent{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Jump:   in.Has(core.ActionJump),
		Attack: in.Has(core.ActionAttack),
	}
}
