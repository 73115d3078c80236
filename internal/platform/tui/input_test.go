package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
)

func TestHeldInputMoveOutlastsTap(t *testing.T) {
	h := newHeldInput()
	h.press(core.ActionRight)
	h.press(core.ActionAttack)

	assert.Equal(t, scroller.Intent{Right: true, Attack: true}, h.Intent())

	for range tapHoldFrames {
		h.advance()
	}
	assert.Equal(t, scroller.Intent{Right: true}, h.Intent(), "tap expires first")

	for range moveHoldFrames - tapHoldFrames {
		h.advance()
	}
	assert.Equal(t, scroller.Intent{}, h.Intent(), "movement expires after its window")
}

func TestHeldInputOppositeDirectionCancels(t *testing.T) {
	h := newHeldInput()
	h.press(core.ActionRight)
	h.press(core.ActionLeft)

	in := h.Intent()
	assert.True(t, in.Left)
	assert.False(t, in.Right)
}

func TestHeldInputRepeatExtendsHold(t *testing.T) {
	h := newHeldInput()
	h.press(core.ActionLeft)
	for range moveHoldFrames - 1 {
		h.advance()
	}
	h.press(core.ActionLeft)
	for range moveHoldFrames - 1 {
		h.advance()
	}
	assert.True(t, h.Intent().Left)
}

func TestHeldInputStopAndReset(t *testing.T) {
	h := newHeldInput()
	h.press(core.ActionLeft)
	h.press(core.ActionJump)

	h.stop()
	assert.Equal(t, scroller.Intent{Jump: true}, h.Intent())

	h.reset()
	assert.Equal(t, scroller.Intent{}, h.Intent())
}

func TestHeldInputIgnoresNonGameplayActions(t *testing.T) {
	h := newHeldInput()
	h.press(core.ActionPause)
	h.press(core.ActionQuit)

	assert.False(t, h.Frame().Has(core.ActionPause))
	assert.False(t, h.Frame().Has(core.ActionQuit))
}
