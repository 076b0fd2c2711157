package hw

import "context"

// Game is updated once per frame with the frame's button snapshot.
type Game interface {
	Frame(buttons *ButtonController)
}

// Host bundles the hardware a game talks to.
type Host struct {
	Objects *ObjectController
	Buttons *ButtonController
}

// NewHost creates a host with an empty object table.
func NewHost() *Host {
	return &Host{
		Objects: NewObjectController(),
		Buttons: NewButtonController(),
	}
}

// Step polls src and runs one game update. The attribute changes stay
// pending until Commit, so event-driven front ends call Step, wait for
// their own refresh tick, and then Commit.
func (h *Host) Step(g Game, src ButtonSource) {
	h.Buttons.Update(src)
	g.Frame(h.Buttons)
}

// Commit publishes the frame's sprite changes to the display.
func (h *Host) Commit() {
	h.Objects.Commit()
}

// PresentFunc draws a committed frame.
type PresentFunc func(objects *ObjectController)

// Run is the frame loop: poll input, update the game, wait for vblank,
// commit, present. It only returns when ctx is done.
func Run(ctx context.Context, h *Host, g Game, src ButtonSource, vblank VBlank, present PresentFunc) error {
	for {
		h.Step(g, src)
		if err := vblank.Wait(ctx); err != nil {
			return err
		}
		h.Commit()
		if present != nil {
			present(h.Objects)
		}
	}
}
