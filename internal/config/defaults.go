package config

import (
	_ "embed"
)

// Prototype ids.
const (
	IDShooter = "shooter"
	IDTwin    = "shooter_twin"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/shooter_twin.yaml
var defaultTwinYAML []byte

// DefaultShooterConfig returns prototype A: one ship, one alien.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			X:            50,
			BottomOffset: 30,
			Velocity:     1,
			Footprint:    Footprint{W: 6, H: 14},
		},
		Enemies: []EnemyConfig{
			{X: 50, Y: 40, Velocity: 1, Footprint: Footprint{W: 6, H: 14}},
		},
		Input: InputConfig{HoldFrames: 6},
	}
}

// DefaultTwinConfig returns the alternate prototype with a second alien.
func DefaultTwinConfig() ShooterConfig {
	cfg := DefaultShooterConfig()
	cfg.Player.Velocity = 3
	cfg.Enemies = append(cfg.Enemies, EnemyConfig{
		X: 120, Y: 72, Velocity: -1, Footprint: Footprint{W: 6, H: 14},
	})
	return cfg
}

// DefaultFor returns the hardcoded defaults of a prototype.
func DefaultFor(gameID string) (ShooterConfig, bool) {
	switch gameID {
	case IDShooter:
		return DefaultShooterConfig(), true
	case IDTwin:
		return DefaultTwinConfig(), true
	default:
		return ShooterConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a prototype.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case IDShooter:
		return defaultShooterYAML
	case IDTwin:
		return defaultTwinYAML
	default:
		return nil
	}
}
