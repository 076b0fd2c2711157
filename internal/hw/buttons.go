package hw

import "github.com/vovakirdan/shmup/internal/core"

// ButtonSource reports which buttons are held right now.
type ButtonSource interface {
	Buttons() core.Buttons
}

// ButtonSourceFunc adapts a function to ButtonSource.
type ButtonSourceFunc func() core.Buttons

// Buttons implements ButtonSource.
func (f ButtonSourceFunc) Buttons() core.Buttons {
	return f()
}

// Held is a ButtonSource that always reports the same set.
type Held core.Buttons

// Buttons implements ButtonSource.
func (h Held) Buttons() core.Buttons {
	return core.Buttons(h)
}

// ButtonController keeps the snapshot taken at the start of the frame and
// the one before it.
type ButtonController struct {
	current  core.Buttons
	previous core.Buttons
}

// NewButtonController creates a controller with nothing held.
func NewButtonController() *ButtonController {
	return &ButtonController{}
}

// Update reads a new snapshot from src.
func (b *ButtonController) Update(src ButtonSource) {
	b.previous = b.current
	if src == nil {
		b.current = 0
		return
	}
	b.current = src.Buttons()
}

// IsPressed reports whether btn is held in the current snapshot.
func (b *ButtonController) IsPressed(btn core.Button) bool {
	return b.current.Has(btn)
}

// IsReleased reports whether btn is not held in the current snapshot.
func (b *ButtonController) IsReleased(btn core.Button) bool {
	return !b.current.Has(btn)
}

// JustPressed reports whether btn went down this frame.
func (b *ButtonController) JustPressed(btn core.Button) bool {
	return b.current.Has(btn) && !b.previous.Has(btn)
}

// JustReleased reports whether btn went up this frame.
func (b *ButtonController) JustReleased(btn core.Button) bool {
	return !b.current.Has(btn) && b.previous.Has(btn)
}

// Snapshot returns the current held set.
func (b *ButtonController) Snapshot() core.Buttons {
	return b.current
}
