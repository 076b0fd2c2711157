package shooter

import "github.com/vovakirdan/shmup/internal/core"

// Bounce advances x by v and keeps it inside [0, max]. Landing on
// either edge reverses the velocity.
func Bounce(x, v, max int) (int, int) {
	x = core.Clamp(x+v, 0, max)
	if x == 0 || x == max {
		v = -v
	}
	return x, v
}

// Nudge moves the player one pixel per held direction. Left is applied
// first and right sees its result, so holding both is a no-op away from
// the edges.
func Nudge(x int, left, right bool, max int) int {
	if left && x != 0 {
		x--
	}
	if right && x != max {
		x++
	}
	return x
}
