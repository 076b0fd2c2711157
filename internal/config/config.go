// Package config provides YAML-based configuration for the shooter
// prototypes: starting positions, velocities and input latching.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// ShooterConfig contains everything a prototype needs at startup.
type ShooterConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemies []EnemyConfig `yaml:"enemies"`
	Input   InputConfig   `yaml:"input"`
}

// PlayerConfig places the ship.
type PlayerConfig struct {
	X            int       `yaml:"x"`
	BottomOffset int       `yaml:"bottom_offset"` // Distance from the bottom edge
	Velocity     int       `yaml:"velocity"`
	Footprint    Footprint `yaml:"footprint"`
}

// EnemyConfig places one alien.
type EnemyConfig struct {
	X         int       `yaml:"x"`
	Y         int       `yaml:"y"`
	Velocity  int       `yaml:"velocity"`
	Footprint Footprint `yaml:"footprint"`
}

// Footprint is a collision size. Nothing reads it yet.
type Footprint struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// InputConfig tunes how key events become held buttons.
type InputConfig struct {
	// HoldFrames is how many frames a terminal key press counts as held.
	// Terminals report presses and repeats, never releases.
	HoldFrames int `yaml:"hold_frames"`
}

// PlayerY returns the ship's row on a screen of the given height.
func (c ShooterConfig) PlayerY(screenH int) int {
	return screenH - c.Player.BottomOffset
}

// Validate checks positions against a screen of screenW × screenH pixels
// showing square sprites of the given size.
func (c ShooterConfig) Validate(screenW, screenH, sprite int) error {
	maxX, maxY := screenW-sprite, screenH-sprite

	if c.Player.X < 0 || c.Player.X > maxX {
		return fmt.Errorf("%w: player x %d outside [0, %d]", ErrInvalid, c.Player.X, maxX)
	}
	if y := c.PlayerY(screenH); y < 0 || y > maxY {
		return fmt.Errorf("%w: player bottom_offset %d puts the ship at y %d", ErrInvalid, c.Player.BottomOffset, y)
	}
	if len(c.Enemies) == 0 {
		return fmt.Errorf("%w: at least one enemy is required", ErrInvalid)
	}
	for i, e := range c.Enemies {
		if e.X < 0 || e.X > maxX {
			return fmt.Errorf("%w: enemy %d x %d outside [0, %d]", ErrInvalid, i, e.X, maxX)
		}
		if e.Y < 0 || e.Y > maxY {
			return fmt.Errorf("%w: enemy %d y %d outside [0, %d]", ErrInvalid, i, e.Y, maxY)
		}
		if e.Velocity == 0 {
			return fmt.Errorf("%w: enemy %d has zero velocity", ErrInvalid, i)
		}
	}
	if c.Input.HoldFrames < 0 {
		return fmt.Errorf("%w: input hold_frames %d is negative", ErrInvalid, c.Input.HoldFrames)
	}
	return nil
}
