package scroller

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgeCount(t *testing.T) {
	tests := []struct {
		density  float64
		base     int
		expected int
	}{
		{0.8, 0, 16},
		{1.0, 0, 20},
		{1.25, 0, 25},
		{3.0, 0, 60},
		{0, 0, 0},
		{-1, 0, 0},
		{0.5, 10, 5},
	}

	for _, tt := range tests {
		got := GenParams{Density: tt.density, BaseCount: tt.base}.LedgeCount()
		if got != tt.expected {
			t.Errorf("LedgeCount(density=%v, base=%d) = %d, expected %d", tt.density, tt.base, got, tt.expected)
		}
	}
}

func TestGenerateInvariants(t *testing.T) {
	heights := map[float64]bool{}
	for _, h := range ledgeHeights {
		heights[h] = true
	}
	widths := map[float64]bool{}
	for _, w := range ledgeSizes {
		widths[w] = true
	}

	for seed := int64(1); seed <= 40; seed++ {
		for _, density := range []float64{0.8, 1.4, 3.0} {
			params := GenParams{CanvasW: 800, GroundY: 430, LevelLength: 9000, Density: density}
			platforms := Generate(rand.New(rand.NewSource(seed)), params)

			require.True(t, sort.SliceIsSorted(platforms, func(i, j int) bool {
				return platforms[i].X < platforms[j].X
			}), "seed %d: platforms must be sorted by X", seed)

			var grounds, starts, ledges int
			ids := map[PlatformID]bool{}
			for _, p := range platforms {
				assert.Positive(t, p.W)
				assert.Positive(t, p.H)
				assert.NotZero(t, p.ID)
				assert.False(t, ids[p.ID], "duplicate platform id %d", p.ID)
				ids[p.ID] = true

				switch p.Kind {
				case KindGround:
					grounds++
					assert.Equal(t, -500.0, p.X)
					assert.Equal(t, params.GroundY, p.Y)
					assert.GreaterOrEqual(t, p.Right(), params.LevelLength+params.CanvasW)
				case KindStart:
					starts++
					assert.Equal(t, params.GroundY, p.Y)
				case KindLedge:
					ledges++
					assert.True(t, heights[params.GroundY-p.Y], "ledge at unexpected height %v", p.Y)
					assert.True(t, widths[p.W], "ledge with unexpected width %v", p.W)
					assert.GreaterOrEqual(t, p.X, params.CanvasW-xJitter)
				case KindCompanion:
					assert.GreaterOrEqual(t, p.W, 120.0)
					assert.Less(t, p.W, 200.0)
					assert.Equal(t, ledgeThickness, p.H)
				}
			}

			assert.Equal(t, 1, grounds)
			assert.Equal(t, 1, starts)
			assert.Equal(t, params.LedgeCount(), ledges)
		}
	}
}

func TestGenerateSpreadsLedgesAcrossLevel(t *testing.T) {
	params := GenParams{CanvasW: 800, GroundY: 430, LevelLength: 9000, Density: 1}
	platforms := Generate(rand.New(rand.NewSource(3)), params)

	last := math.Inf(-1)
	for _, p := range platforms {
		if p.Kind == KindLedge {
			last = math.Max(last, p.X)
		}
	}
	// Last ledge sits one spacing short of the level end
	spacing := params.LevelLength / 20
	assert.InDelta(t, params.CanvasW+19*spacing, last, xJitter)
}

func TestGenerateZeroDensity(t *testing.T) {
	platforms := Generate(rand.New(rand.NewSource(1)), GenParams{CanvasW: 800, GroundY: 430, LevelLength: 9000})

	require.Len(t, platforms, 2)
	assert.Equal(t, KindGround, platforms[0].Kind)
	assert.Equal(t, KindStart, platforms[1].Kind)
}

func TestLayoutResolve(t *testing.T) {
	platforms := Generate(rand.New(rand.NewSource(9)), GenParams{CanvasW: 800, GroundY: 430, LevelLength: 9000, Density: 1})
	layout := newLayout(4, platforms)

	ref := layout.Ref(3)
	p, ok := layout.Resolve(ref)
	require.True(t, ok)
	assert.Equal(t, platforms[3].ID, p.ID)

	_, ok = layout.Resolve(PlatformRef{})
	assert.False(t, ok, "zero ref must not resolve")

	next := newLayout(5, platforms)
	_, ok = next.Resolve(ref)
	assert.False(t, ok, "ref from an older generation must not resolve")
}
