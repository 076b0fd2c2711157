package core

// RuntimeConfig contains platform settings passed to the front ends.
// The game itself only sees the fixed handheld display.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Frames per second (display refresh rate)
	Scale    int // Window scale factor for the pixel front end
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Scale:    3,
	}
}

// Phase is the frame loop state.
type Phase int

const (
	PhaseInit    Phase = iota // sprites not created yet
	PhaseRunning              // frame loop active; never left
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// GameState reports loop status to the platform.
type GameState struct {
	Phase  Phase
	Frames uint64 // Frames updated since Init
}
