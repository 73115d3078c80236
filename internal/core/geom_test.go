package core

import "testing"

func TestRectIntersects(t *testing.T) {
	player := NewRect(100, 300, 40, 60)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"monster overlapping the body", NewRect(130, 340, 40, 40), true},
		{"monster touching the right edge", NewRect(140, 320, 40, 40), false},
		{"platform touching the feet", NewRect(50, 360, 200, 25), false},
		{"projectile inside", NewRect(110, 320, 10, 10), true},
		{"sub-unit overlap", NewRect(139.5, 359.5, 10, 10), true},
		{"far away", NewRect(600, 0, 30, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects() = %v, expected %v", got, tc.want)
			}
			if got := tc.other.Intersects(player); got != tc.want {
				t.Errorf("Intersects() is not symmetric: got %v reversed", got)
			}
		})
	}
}

func TestNewRectClampsNegativeSize(t *testing.T) {
	r := NewRect(1, 2, -5, -0.5)
	if r.W != 0 || r.H != 0 {
		t.Errorf("NewRect should clamp negative size, got %vx%v", r.W, r.H)
	}
}

func TestRectHorizontalSpans(t *testing.T) {
	platform := NewRect(100, 0, 50, 10)

	tests := []struct {
		name     string
		r        Rect
		overlaps bool
		within   bool
	}{
		{"inside", NewRect(110, 0, 20, 5), true, true},
		{"hanging off left", NewRect(90, 0, 20, 5), true, false},
		{"hanging off right", NewRect(140, 0, 20, 5), true, false},
		{"fully left", NewRect(60, 0, 20, 5), false, false},
		{"touching right edge", NewRect(150, 0, 20, 5), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.OverlapsX(platform); got != tc.overlaps {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.overlaps)
			}
			if got := tc.r.WithinX(platform); got != tc.within {
				t.Errorf("WithinX() = %v, expected %v", got, tc.within)
			}
		})
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	ledge := NewRect(200, 260, 250, 25)

	tests := []struct {
		x, y float64
		want bool
	}{
		{200, 260, true},
		{449.9, 284.9, true},
		{450, 270, false},
		{300, 285, false},
		{199.9, 270, false},
	}

	for _, tc := range tests {
		if got := ledge.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%v, %v), expected (25, 25)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestClampHelpers(t *testing.T) {
	if got := Clamp(7, 1, 5); got != 5 {
		t.Errorf("Clamp(7, 1, 5) = %d", got)
	}
	if got := Clamp(-1, 0, 5); got != 0 {
		t.Errorf("Clamp(-1, 0, 5) = %d", got)
	}
	if got := ClampF(-3.5, 0, 760); got != 0 {
		t.Errorf("ClampF(-3.5, 0, 760) = %v", got)
	}
	if got := ClampF(800, 0, 760); got != 760 {
		t.Errorf("ClampF(800, 0, 760) = %v", got)
	}
	if Min(3, 9) != 3 || Max(3, 9) != 9 {
		t.Error("Min/Max returned the wrong operand")
	}
}
