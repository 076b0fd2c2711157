package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shmup/internal/assets"
	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
	"github.com/vovakirdan/shmup/internal/storage"
)

// walker moves its ship right while Right is held.
type walker struct {
	host   *hw.Host
	obj    hw.ObjectID
	x      int
	frames uint64
	broken bool // Init fails, as with an unreadable config
}

func (w *walker) ID() string    { return "walker" }
func (w *walker) Title() string { return "Walker" }

func (w *walker) Init(host *hw.Host) error {
	if w.broken {
		return errors.New("walker: config unreadable")
	}
	w.host = host
	w.x, w.frames = 10, 0
	id, err := host.Objects.Object(assets.MustTag(assets.TagSpaceShip).Sprite(0))
	if err != nil {
		return err
	}
	w.obj = id
	host.Objects.SetPosition(id, core.Vec2{X: w.x, Y: 20}).Show(id)
	return nil
}

func (w *walker) Frame(b *hw.ButtonController) {
	w.frames++
	if b.IsPressed(core.ButtonRight) {
		w.x++
	}
	w.host.Objects.SetX(w.obj, w.x)
}

func (w *walker) State() core.GameState {
	return core.GameState{Phase: core.PhaseRunning, Frames: w.frames}
}

func (w *walker) HoldFrames() int { return 2 }

func committedX(t *testing.T, m GameModel, g *walker) int {
	t.Helper()
	attr, ok := m.Host().Objects.Committed(g.obj)
	if !ok {
		t.Fatal("walker object not committed")
	}
	return attr.X
}

func update(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameModelCommitsOnTick(t *testing.T) {
	g := &walker{}
	m, err := NewGameModel(g, nil, core.DefaultConfig(), "tester")
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}
	m.Init()

	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	if x := committedX(t, m, g); x != 10 {
		t.Fatalf("committed x = %d before any tick, expected 10", x)
	}

	// First tick publishes the idle first frame and runs the input frame.
	m = update(m, TickMsg{})
	if x := committedX(t, m, g); x != 10 {
		t.Errorf("committed x = %d after tick 1, expected 10", x)
	}
	if g.x != 11 {
		t.Errorf("pending x = %d after tick 1, expected 11", g.x)
	}

	m = update(m, TickMsg{})
	if x := committedX(t, m, g); x != 11 {
		t.Errorf("committed x = %d after tick 2, expected 11", x)
	}

	// The latch holds for two frames.
	m = update(m, TickMsg{})
	m = update(m, TickMsg{})
	if g.x != 12 {
		t.Errorf("x = %d after latch expired, expected 12", g.x)
	}
}

func TestGameModelPause(t *testing.T) {
	g := &walker{}
	m, _ := NewGameModel(g, nil, core.DefaultConfig(), "tester")
	m.Init()

	m = update(m, runeKey("p"))
	m = update(m, TickMsg{})
	m = update(m, TickMsg{})
	if g.frames != 1 {
		t.Errorf("frames = %d while paused, expected 1", g.frames)
	}

	m = update(m, runeKey("p"))
	update(m, TickMsg{})
	if g.frames != 2 {
		t.Errorf("frames = %d after resume, expected 2", g.frames)
	}
}

func TestGameModelSavesSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	defer store.Close()

	g := &walker{}
	m, _ := NewGameModel(g, store, core.DefaultConfig(), "tester")
	m.Init()
	for i := 0; i < 5; i++ {
		m = update(m, TickMsg{})
	}
	id := m.SessionID()

	m = update(m, runeKey("q"))
	if !m.IsQuitting() {
		t.Fatal("IsQuitting() = false after q")
	}
	// A second quit must not store the run twice.
	update(m, runeKey("q"))

	sessions, err := store.RecentSessions("walker", 10)
	if err != nil {
		t.Fatalf("RecentSessions() error = %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("len(sessions) = %d, expected 1", len(sessions))
	}
	if sessions[0].SessionID != id || sessions[0].Frames != 6 || sessions[0].User != "tester" {
		t.Errorf("session = %+v", sessions[0])
	}
}

func TestGameModelRestart(t *testing.T) {
	g := &walker{}
	m, _ := NewGameModel(g, nil, core.DefaultConfig(), "tester")
	m.Init()
	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 3; i++ {
		m = update(m, TickMsg{})
	}
	first := m.SessionID()

	m = update(m, runeKey("r"))
	if m.SessionID() == first {
		t.Error("restart kept the session id")
	}
	if x := committedX(t, m, g); x != 10 {
		t.Errorf("committed x = %d after restart, expected 10", x)
	}
	if n := m.Host().Objects.InUse(); n != 1 {
		t.Errorf("InUse() = %d after restart, expected 1", n)
	}
}

func TestGameModelRestartFailureKeepsRun(t *testing.T) {
	g := &walker{}
	m, _ := NewGameModel(g, nil, core.DefaultConfig(), "tester")
	m.Init()
	m = update(m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(m, TickMsg{})
	first := m.SessionID()
	host := m.Host()

	g.broken = true
	m = update(m, runeKey("r"))
	if m.Host() != host {
		t.Error("failed restart replaced the host")
	}
	if m.SessionID() != first {
		t.Error("failed restart started a new session")
	}

	// The old run keeps going on its own objects.
	m = update(m, TickMsg{})
	m = update(m, TickMsg{})
	if x := committedX(t, m, g); x != 12 {
		t.Errorf("committed x = %d after failed restart, expected 12", x)
	}
	if v := m.View(); !containsAll(v, "restart failed", "config unreadable") {
		t.Errorf("View() = %q, expected restart error", v)
	}

	g.broken = false
	m = update(m, runeKey("r"))
	if m.Host() == host {
		t.Error("restart kept the old host")
	}
	if n := m.Host().Objects.InUse(); n != 1 {
		t.Errorf("InUse() = %d after restart, expected 1", n)
	}
	if v := m.View(); containsAll(v, "restart failed") {
		t.Error("restart error still shown after a successful restart")
	}
}

func TestGameModelBack(t *testing.T) {
	m, _ := NewGameModel(&walker{}, nil, core.DefaultConfig(), "tester")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() {
		t.Error("BackToMenu() = false after esc")
	}
	if cmd != nil {
		t.Error("esc inside a session should not quit the program")
	}

	m.quitOnBack = true
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("esc in a standalone program should quit")
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := NewGameModel(&walker{}, nil, core.DefaultConfig(), "tester")

	if v := m.View(); v == "" {
		t.Error("View() is empty")
	}

	small := update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if v := small.View(); !containsAll(v, "too small") {
		t.Errorf("View() = %q, expected size warning", v)
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
