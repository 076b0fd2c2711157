package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
	"github.com/vovakirdan/shmup/internal/registry"
	"github.com/vovakirdan/shmup/internal/storage"
)

// hudRows are the terminal rows below the display.
const hudRows = 2

// GameModel is the Bubble Tea model for one running prototype.
type GameModel struct {
	game   registry.Game
	host   *hw.Host
	latch  *KeyLatch
	keys   *KeyMapper
	raster *Rasterizer
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	user      string
	notice    string // Last restart error, shown under the status line
	sessionID uuid.UUID
	started   time.Time

	width, height int // Terminal size, zero until the first resize
	paused        bool
	quitOnBack    bool // Standalone programs exit instead of showing a menu
	quitting      bool
	backToMenu    bool
	saved         bool
}

// NewGameModel initializes game on a fresh host.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, user string) (GameModel, error) {
	host := hw.NewHost()
	if err := game.Init(host); err != nil {
		return GameModel{}, err
	}
	host.Commit()

	hold := DefaultHoldFrames
	if ht, ok := game.(registry.HoldTuner); ok {
		hold = ht.HoldFrames()
	}

	return GameModel{
		game:      game,
		host:      host,
		latch:     NewKeyLatch(hold),
		keys:      NewKeyMapper(),
		raster:    NewRasterizer(),
		screen:    core.NewScreen(GridW, GridH+hudRows),
		store:     store,
		config:    cfg,
		user:      user,
		sessionID: uuid.New(),
		started:   time.Now(),
	}, nil
}

// Init runs the first update and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.step()
	return tickCmd(m.config.TickRate)
}

// step polls the latch and runs one game update.
func (m GameModel) step() {
	m.host.Step(m.game, m.latch)
	m.latch.Tick()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsQuit(msg) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}

	switch msg.String() {
	case "esc":
		m.saveSession()
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	case "p":
		m.paused = !m.paused
		return m, nil
	case "r":
		m.restart()
		return m, nil
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if btn, ok := m.keys.MapKey(msg); ok {
		m.latch.Press(btn)
	}
	return m, nil
}

// handleTick is the vertical blank: publish the last update, then run
// the next one.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if !m.paused {
		m.host.Commit()
		m.step()
	}
	return m, tickCmd(m.config.TickRate)
}

// restart records the current run and starts the game over on a fresh
// host. If Init fails the current run and its host are left untouched.
func (m *GameModel) restart() {
	host := hw.NewHost()
	if err := m.game.Init(host); err != nil {
		m.notice = "restart failed: " + err.Error()
		return
	}
	m.saveSession()
	m.host = host
	m.host.Commit()
	m.latch.Clear()
	m.step()
	m.notice = ""

	m.sessionID = uuid.New()
	m.started = time.Now()
	m.saved = false
	m.paused = false
}

// saveSession stores the run once. Runs that never updated are skipped.
func (m *GameModel) saveSession() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	frames := m.game.State().Frames
	if frames == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveSession(storage.Session{
		SessionID: m.sessionID,
		GameID:    m.game.ID(),
		User:      m.user,
		Frames:    frames,
		Duration:  time.Since(m.started),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".shmup", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw renders the committed object table and the HUD into the screen.
func (m GameModel) draw() {
	m.screen.Clear()
	m.raster.Draw(m.screen, m.host.Objects.Visible(), 0, 0)

	state := m.game.State()
	status := fmt.Sprintf("%s  frame %d  [%s]", m.game.Title(), state.Frames, m.host.Buttons.Snapshot())
	if m.paused {
		status += "  PAUSED"
	}
	m.screen.DrawText(0, GridH, status)
	if m.notice != "" {
		m.screen.DrawText(0, GridH+1, m.notice)
		return
	}
	m.screen.DrawText(0, GridH+1, "←/→ move  z fire  p pause  r restart  esc menu  q quit")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.width > 0 && (m.width < m.screen.Width() || m.height < m.screen.Height()) {
		return centerText(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height(), m.width, m.height), m.width)
	}

	m.draw()
	return RenderScreen(m.screen)
}

// Host returns the hardware the game runs on.
func (m GameModel) Host() *hw.Host {
	return m.host
}

// SessionID identifies the current run in the play history.
func (m GameModel) SessionID() uuid.UUID {
	return m.sessionID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the user quits or goes back.
// It reports whether the user asked for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, user string) (backToMenu bool, err error) {
	model, err := NewGameModel(game, store, cfg, user)
	if err != nil {
		return false, err
	}
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
