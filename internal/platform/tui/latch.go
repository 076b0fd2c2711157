package tui

import (
	"math/bits"

	"github.com/vovakirdan/shmup/internal/core"
)

// DefaultHoldFrames is used when the game does not ask for a latch length.
const DefaultHoldFrames = 6

// KeyLatch turns key events into held buttons. Terminals report presses
// and auto-repeats but never releases, so a press holds its button for a
// fixed number of frames and every repeat re-arms it.
type KeyLatch struct {
	hold      int
	remaining [16]int
}

// NewKeyLatch creates a latch that holds each press for holdFrames
// frames. Values below one hold for a single frame.
func NewKeyLatch(holdFrames int) *KeyLatch {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &KeyLatch{hold: holdFrames}
}

// Press holds b for the next hold frames.
func (l *KeyLatch) Press(b core.Button) {
	if b == 0 {
		return
	}
	l.remaining[bits.TrailingZeros16(uint16(b))] = l.hold
}

// Buttons implements hw.ButtonSource.
func (l *KeyLatch) Buttons() core.Buttons {
	var held core.Buttons
	for i, n := range l.remaining {
		if n > 0 {
			held = held.With(core.Button(1 << i))
		}
	}
	return held
}

// Tick ages every held button by one frame.
func (l *KeyLatch) Tick() {
	for i := range l.remaining {
		if l.remaining[i] > 0 {
			l.remaining[i]--
		}
	}
}

// Clear releases everything.
func (l *KeyLatch) Clear() {
	l.remaining = [16]int{}
}
