package scroller

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Level geometry.
const (
	basePlatformCount = 20
	groundLeft        = -500.0
	groundThickness   = 50.0
	ledgeThickness    = 25.0
	xJitter           = 60.0
	companionChance   = 0.15
	startPlatformX    = 50.0
	startPlatformW    = 300.0
)

// ledgeSizes are the widths an elevated platform can take.
var ledgeSizes = []float64{250, 220, 280, 230, 260}

// ledgeHeights are offsets above the ground line.
var ledgeHeights = []float64{120, 160, 200, 240, 280}

// GenParams describes the level to generate.
type GenParams struct {
	CanvasW     float64
	GroundY     float64
	LevelLength float64
	Density     float64
	BaseCount   int // Elevated platforms at density 1.0; 0 means the default
}

// LedgeCount returns how many elevated platforms a layout gets.
func (p GenParams) LedgeCount() int {
	base := p.BaseCount
	if base <= 0 {
		base = basePlatformCount
	}
	if p.Density <= 0 {
		return 0
	}
	return int(math.Floor(float64(base) * p.Density))
}

// Generate builds the platform layout for a level, sorted by X.
// It always contains the ground and the start platform.
func Generate(rng *rand.Rand, p GenParams) []Platform {
	count := p.LedgeCount()
	platforms := make([]Platform, 0, count*2+2)

	// Ground reaches past the end of the level even on narrow viewports
	groundW := math.Max(15*p.CanvasW, p.LevelLength+2*p.CanvasW)
	platforms = append(platforms, Platform{
		Rect: core.NewRect(groundLeft, p.GroundY, groundW, groundThickness),
		Kind: KindGround,
	})

	spacing := 0.0
	if count > 0 {
		spacing = math.Max(p.CanvasW*6, p.LevelLength) / float64(count)
	}

	for i := 0; i < count; i++ {
		w := ledgeSizes[rng.Intn(len(ledgeSizes))]
		y := p.GroundY - ledgeHeights[rng.Intn(len(ledgeHeights))]
		x := p.CanvasW + float64(i)*spacing
		jitter := rng.Float64()*2*xJitter - xJitter

		platforms = append(platforms, Platform{
			Rect: core.NewRect(x+jitter, y, w, ledgeThickness),
			Kind: KindLedge,
		})

		if rng.Float64() < companionChance {
			cx := x + 180 + rng.Float64()*120
			cy := y + 50
			if rng.Float64() > 0.5 {
				cy = y - 50
			}
			cw := 120 + rng.Float64()*80
			platforms = append(platforms, Platform{
				Rect: core.NewRect(cx, cy, cw, ledgeThickness),
				Kind: KindCompanion,
			})
		}
	}

	platforms = append(platforms, Platform{
		Rect: core.NewRect(startPlatformX, p.GroundY, startPlatformW, groundThickness),
		Kind: KindStart,
	})

	sort.SliceStable(platforms, func(i, j int) bool {
		return platforms[i].X < platforms[j].X
	})

	for i := range platforms {
		platforms[i].ID = PlatformID(i + 1)
	}
	return platforms
}
