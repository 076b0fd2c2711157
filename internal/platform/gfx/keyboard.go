package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/shmup/internal/core"
)

var keyBindings = []struct {
	key ebiten.Key
	btn core.Button
}{
	{ebiten.KeyArrowLeft, core.ButtonLeft},
	{ebiten.KeyA, core.ButtonLeft},
	{ebiten.KeyArrowRight, core.ButtonRight},
	{ebiten.KeyD, core.ButtonRight},
	{ebiten.KeyArrowUp, core.ButtonUp},
	{ebiten.KeyW, core.ButtonUp},
	{ebiten.KeyArrowDown, core.ButtonDown},
	{ebiten.KeyS, core.ButtonDown},
	{ebiten.KeyZ, core.ButtonA},
	{ebiten.KeySpace, core.ButtonA},
	{ebiten.KeyX, core.ButtonB},
	{ebiten.KeyEnter, core.ButtonStart},
	{ebiten.KeyBackspace, core.ButtonSelect},
}

// Keyboard reports the buttons held on the keyboard. Unlike a terminal,
// the window sees key releases, so no latching is needed.
type Keyboard struct{}

// Buttons implements hw.ButtonSource.
func (Keyboard) Buttons() core.Buttons {
	return buttonsFor(ebiten.IsKeyPressed)
}

func buttonsFor(pressed func(ebiten.Key) bool) core.Buttons {
	var held core.Buttons
	for _, kb := range keyBindings {
		if pressed(kb.key) {
			held = held.With(kb.btn)
		}
	}
	return held
}
