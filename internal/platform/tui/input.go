package tui

import (
	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
)

// Terminals report key presses and auto-repeats but never releases, so a
// press keeps its action held for a number of frames. Movement outlasts the
// typical auto-repeat delay; jump and attack only need a short window.
const (
	moveHoldFrames = 30
	tapHoldFrames  = 4
)

// heldInput turns key presses into the per-frame input snapshot the
// scheduler reads. It is shared by pointer between the model and the
// scheduler and only touched from the Bubble Tea update loop.
type heldInput struct {
	frame uint64
	until map[core.Action]uint64
}

func newHeldInput() *heldInput {
	return &heldInput{until: make(map[core.Action]uint64)}
}

// press holds a for its hold window. Pressing a direction drops the other.
func (h *heldInput) press(a core.Action) {
	hold := uint64(tapHoldFrames)
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
		hold = moveHoldFrames
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
		hold = moveHoldFrames
	case core.ActionJump, core.ActionAttack:
	default:
		return
	}
	h.until[a] = h.frame + hold
}

// stop releases both directions.
func (h *heldInput) stop() {
	delete(h.until, core.ActionLeft)
	delete(h.until, core.ActionRight)
}

// reset releases everything.
func (h *heldInput) reset() {
	for a := range h.until {
		delete(h.until, a)
	}
}

// advance moves to the next frame and forgets expired holds.
func (h *heldInput) advance() {
	h.frame++
	for a, until := range h.until {
		if until <= h.frame {
			delete(h.until, a)
		}
	}
}

// Frame returns the actions held on the current frame.
func (h *heldInput) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range h.until {
		if until > h.frame {
			f.Set(a)
		}
	}
	return f
}

// Intent implements scroller.InputSource.
func (h *heldInput) Intent() scroller.Intent {
	return scroller.IntentFromInput(h.Frame())
}
