package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// HOME points at an empty dir so no user config interferes.
	t.Setenv("HOME", t.TempDir())

	for _, id := range []string{IDShooter, IDTwin} {
		t.Run(id, func(t *testing.T) {
			got, err := Load(id, "")
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", id, err)
			}
			want, _ := DefaultFor(id)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("embedded %s.yaml = %+v, expected %+v", id, got, want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  x: 10\n  bottom_offset: 20\nenemies:\n  - {x: 0, y: 0, velocity: 2}\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(IDShooter, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.X != 10 || cfg.Player.BottomOffset != 20 {
		t.Errorf("player = %+v, expected x=10 bottom_offset=20", cfg.Player)
	}
	if len(cfg.Enemies) != 1 || cfg.Enemies[0].Velocity != 2 {
		t.Errorf("enemies = %+v, expected one with velocity 2", cfg.Enemies)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(IDShooter, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(IDShooter, path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".shmup", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("player:\n  x: 99\n  bottom_offset: 30\nenemies:\n  - {x: 1, y: 2, velocity: -1}\n")
	if err := os.WriteFile(filepath.Join(dir, "shooter.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(IDShooter, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.X != 99 {
		t.Errorf("user config not picked up, player x = %d", cfg.Player.X)
	}
}

func TestLoadUnknownGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := Load("slime", ""); err == nil {
		t.Error("Load() for unknown game should fail")
	}
}

func TestValidate(t *testing.T) {
	const w, h, sprite = 240, 160, 16

	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		valid  bool
	}{
		{"defaults", func(*ShooterConfig) {}, true},
		{"player at right edge", func(c *ShooterConfig) { c.Player.X = 224 }, true},
		{"player past right edge", func(c *ShooterConfig) { c.Player.X = 225 }, false},
		{"player negative", func(c *ShooterConfig) { c.Player.X = -1 }, false},
		{"ship below screen", func(c *ShooterConfig) { c.Player.BottomOffset = 8 }, false},
		{"no enemies", func(c *ShooterConfig) { c.Enemies = nil }, false},
		{"enemy off screen", func(c *ShooterConfig) { c.Enemies[0].X = 300 }, false},
		{"enemy standing still", func(c *ShooterConfig) { c.Enemies[0].Velocity = 0 }, false},
		{"negative hold", func(c *ShooterConfig) { c.Input.HoldFrames = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			err := cfg.Validate(w, h, sprite)
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid {
				if err == nil {
					t.Error("Validate() = nil, expected error")
				} else if !errors.Is(err, ErrInvalid) {
					t.Errorf("Validate() error %v should wrap ErrInvalid", err)
				}
			}
		})
	}
}

func TestPlayerY(t *testing.T) {
	cfg := DefaultShooterConfig()
	if got := cfg.PlayerY(160); got != 130 {
		t.Errorf("PlayerY(160) = %d, expected 130", got)
	}
}
