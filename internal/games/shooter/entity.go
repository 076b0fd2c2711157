package shooter

import (
	"fmt"

	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
)

// Kind tells the frame update which controller drives an entity.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Entity is a sprite on screen that moves horizontally.
type Entity struct {
	Kind      Kind
	Pos       core.Vec2 // Screen space, top-left of the sprite
	Velocity  int       // Pixels per frame; the player never reads it
	Footprint core.Size // Collision size, unused
	Object    hw.ObjectID

	// Ammo is reserved for the fire button.
	Ammo int
}
