package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/shmup/internal/registry"
)

func TestListTable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out := listTable(registry.List(), "")
	for _, want := range []string{"shooter_twin", "Shooter: Twin Aliens", "50:+1 120:-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("listTable() missing %q:\n%s", want, out)
		}
	}
}

func TestListTableConfigError(t *testing.T) {
	out := listTable([]registry.GameInfo{{ID: "shooter", Title: "Shooter"}}, "/nonexistent/shooter.yaml")
	if !strings.Contains(out, "config error") {
		t.Errorf("listTable() = %q, expected config error row", out)
	}
}
