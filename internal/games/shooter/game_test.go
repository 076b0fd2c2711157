package shooter

import (
	"testing"

	"github.com/vovakirdan/shmup/internal/assets"
	"github.com/vovakirdan/shmup/internal/config"
	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
	"github.com/vovakirdan/shmup/internal/registry"
)

func newGame(t *testing.T, g *Game, cfg config.ShooterConfig) *hw.Host {
	t.Helper()
	h := hw.NewHost()
	if err := g.InitWith(h, cfg); err != nil {
		t.Fatalf("InitWith() error = %v", err)
	}
	h.Commit()
	return h
}

func TestInitPlacesSprites(t *testing.T) {
	g := NewTwin()
	h := newGame(t, g, config.DefaultTwinConfig())

	if g.State().Phase != core.PhaseRunning {
		t.Fatalf("Phase = %v, expected running", g.State().Phase)
	}

	ents := g.Entities()
	if len(ents) != 3 {
		t.Fatalf("len(Entities()) = %d, expected 3", len(ents))
	}

	p := g.Player()
	if p.Kind != KindPlayer || p.Pos != (core.Vec2{X: 50, Y: hw.Height - 30}) {
		t.Errorf("Player() = %+v, expected player at (50, %d)", p, hw.Height-30)
	}
	if p.Velocity != 3 {
		t.Errorf("player velocity = %d, expected 3", p.Velocity)
	}

	ship := assets.MustTag(assets.TagSpaceShip).Sprite(0)
	attr, ok := h.Objects.Committed(p.Object)
	if !ok || !attr.Visible || attr.Sprite != ship || attr.X != 50 {
		t.Errorf("player object = %+v (ok=%v), expected visible ship at x=50", attr, ok)
	}

	second := ents[2]
	if second.Kind != KindEnemy || second.Pos != (core.Vec2{X: 120, Y: 72}) || second.Velocity != -1 {
		t.Errorf("second enemy = %+v", second)
	}
}

func TestEnemyTimelineThroughHost(t *testing.T) {
	g := New()
	h := newGame(t, g, config.DefaultShooterConfig())
	enemy := g.Entities()[1]

	for i := 0; i < 174; i++ {
		h.Step(g, nil)
		h.Commit()
	}

	e := g.Entities()[1]
	if e.Pos.X != 224 || e.Velocity != -1 {
		t.Fatalf("after 174 frames enemy = (%d, %d), expected (224, -1)", e.Pos.X, e.Velocity)
	}
	if attr, _ := h.Objects.Committed(enemy.Object); attr.X != 224 {
		t.Errorf("committed x = %d, expected 224", attr.X)
	}

	h.Step(g, nil)
	if attr, _ := h.Objects.Committed(enemy.Object); attr.X != 224 {
		t.Errorf("committed x before commit = %d, expected 224", attr.X)
	}
	h.Commit()
	if attr, _ := h.Objects.Committed(enemy.Object); attr.X != 223 {
		t.Errorf("committed x after 175 frames = %d, expected 223", attr.X)
	}

	if got := g.State().Frames; got != 175 {
		t.Errorf("Frames = %d, expected 175", got)
	}
}

func TestTwinEnemiesBounceIndependently(t *testing.T) {
	type pos struct{ x, v int }
	tests := []struct {
		frames int
		first  pos
		second pos
	}{
		{1, pos{51, 1}, pos{119, -1}},
		{119, pos{169, 1}, pos{1, -1}},
		{120, pos{170, 1}, pos{0, 1}},
		{121, pos{171, 1}, pos{1, 1}},
		{174, pos{224, -1}, pos{54, 1}},
		{175, pos{223, -1}, pos{55, 1}},
	}

	for _, tt := range tests {
		g := NewTwin()
		h := newGame(t, g, config.DefaultTwinConfig())
		for i := 0; i < tt.frames; i++ {
			h.Step(g, nil)
			h.Commit()
		}

		ents := g.Entities()
		for i, want := range []pos{tt.first, tt.second} {
			e := ents[i+1]
			if e.Pos.X != want.x || e.Velocity != want.v {
				t.Errorf("frame %d: enemy %d = (%d, %d), expected (%d, %d)",
					tt.frames, i+1, e.Pos.X, e.Velocity, want.x, want.v)
			}
			if attr, _ := h.Objects.Committed(e.Object); attr.X != want.x {
				t.Errorf("frame %d: enemy %d committed x = %d, expected %d",
					tt.frames, i+1, attr.X, want.x)
			}
		}
	}
}

func TestTwinMatchesBounce(t *testing.T) {
	g := NewTwin()
	h := newGame(t, g, config.DefaultTwinConfig())

	type state struct{ x, v int }
	var want []state
	for _, e := range g.Entities()[1:] {
		want = append(want, state{e.Pos.X, e.Velocity})
	}

	for f := 1; f <= 500; f++ {
		h.Step(g, nil)
		h.Commit()
		for i, e := range g.Entities()[1:] {
			want[i].x, want[i].v = Bounce(want[i].x, want[i].v, MaxX)
			if e.Pos.X != want[i].x || e.Velocity != want[i].v {
				t.Fatalf("frame %d: enemy %d = (%d, %d), expected (%d, %d)",
					f, i+1, e.Pos.X, e.Velocity, want[i].x, want[i].v)
			}
		}
	}
}

func TestPlayerInput(t *testing.T) {
	left := hw.Held(core.Buttons(0).With(core.ButtonLeft))
	right := hw.Held(core.Buttons(0).With(core.ButtonRight))
	fire := hw.Held(core.Buttons(0).With(core.ButtonA))

	cfg := config.DefaultShooterConfig()
	cfg.Player.X = 0
	g := New()
	h := newGame(t, g, cfg)

	for i := 0; i < 5; i++ {
		h.Step(g, left)
	}
	if x := g.Player().Pos.X; x != 0 {
		t.Errorf("holding left at 0: x = %d, expected 0", x)
	}

	for i := 0; i < MaxX+10; i++ {
		h.Step(g, right)
		if x := g.Player().Pos.X; x > MaxX {
			t.Fatalf("holding right: x = %d beyond %d", x, MaxX)
		}
	}
	if x := g.Player().Pos.X; x != MaxX {
		t.Errorf("holding right: x = %d, expected %d", x, MaxX)
	}

	before := g.Player()
	h.Step(g, fire)
	after := g.Player()
	if after.Pos != before.Pos || after.Ammo != before.Ammo {
		t.Errorf("fire changed the player: %+v -> %+v", before, after)
	}
	if h.Objects.InUse() != 2 {
		t.Errorf("InUse() = %d after fire, expected 2", h.Objects.InUse())
	}
}

func TestPlayerDoesNotAffectEnemy(t *testing.T) {
	run := func(src hw.ButtonSource) Entity {
		g := New()
		h := newGame(t, g, config.DefaultShooterConfig())
		for i := 0; i < 300; i++ {
			h.Step(g, src)
		}
		return g.Entities()[1]
	}

	idle := run(nil)
	busy := run(hw.Held(core.Buttons(0).With(core.ButtonLeft).With(core.ButtonA)))
	if idle != busy {
		t.Errorf("enemy diverged with input: %+v vs %+v", idle, busy)
	}
}

func TestFrameBeforeInitIsNoop(t *testing.T) {
	g := New()
	g.Frame(hw.NewButtonController())

	if s := g.State(); s.Phase != core.PhaseInit || s.Frames != 0 {
		t.Errorf("State() = %+v, expected init with 0 frames", s)
	}
}

func TestReinitReusesSlots(t *testing.T) {
	g := New()
	h := newGame(t, g, config.DefaultShooterConfig())
	for i := 0; i < 10; i++ {
		h.Step(g, nil)
	}
	before := g.Entities()

	if err := g.InitWith(h, config.DefaultShooterConfig()); err != nil {
		t.Fatalf("InitWith() error = %v", err)
	}
	if h.Objects.InUse() != 2 {
		t.Errorf("InUse() = %d, expected 2", h.Objects.InUse())
	}
	if s := g.State(); s.Frames != 0 {
		t.Errorf("Frames = %d after reinit, expected 0", s.Frames)
	}
	if x := g.Entities()[1].Pos.X; x != 50 {
		t.Errorf("enemy x = %d after reinit, expected 50", x)
	}
	if x := before[1].Pos.X; x != 60 {
		t.Errorf("earlier Entities() enemy x = %d after reinit, expected 60", x)
	}
}

func TestInitRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies[0].X = MaxX + 1

	if err := New().InitWith(hw.NewHost(), cfg); err == nil {
		t.Error("InitWith() expected error for off-screen enemy")
	}
}

func TestRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, id := range []string{config.IDShooter, config.IDTwin} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
		if err := g.Init(hw.NewHost()); err != nil {
			t.Errorf("%s Init() error = %v", id, err)
		}
		if h, ok := g.(registry.HoldTuner); !ok || h.HoldFrames() != 6 {
			t.Errorf("%s HoldFrames() not 6", id)
		}
	}
}
