// Package shooter implements the handheld shoot-em-up prototypes: a ship
// steered along the bottom of the screen and aliens bouncing between the
// screen edges.
package shooter

import (
	"fmt"

	"github.com/vovakirdan/shmup/internal/assets"
	"github.com/vovakirdan/shmup/internal/config"
	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
	"github.com/vovakirdan/shmup/internal/registry"
)

// MaxX is the rightmost sprite column that keeps a sprite fully on screen.
const MaxX = hw.Width - assets.SpriteWidth

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game is one prototype. The player is always entities[0].
type Game struct {
	id    string
	title string

	cfg      config.ShooterConfig
	host     *hw.Host
	entities []Entity
	phase    core.Phase
	frames   uint64
}

// New creates the single-alien prototype.
func New() *Game {
	return &Game{id: config.IDShooter, title: "Shooter"}
}

// NewTwin creates the prototype with a second alien moving the other way.
func NewTwin() *Game {
	return &Game{id: config.IDTwin, title: "Shooter: Twin Aliens"}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Init loads the prototype's config and creates its sprites on host.
// Objects from a previous Init are released first.
func (g *Game) Init(host *hw.Host) error {
	cfg, err := config.Load(g.id, configPath)
	if err != nil {
		return err
	}
	return g.InitWith(host, cfg)
}

// InitWith is Init with an explicit config.
func (g *Game) InitWith(host *hw.Host, cfg config.ShooterConfig) error {
	if err := cfg.Validate(hw.Width, hw.Height, assets.SpriteWidth); err != nil {
		return fmt.Errorf("%s: %w", g.id, err)
	}

	if g.host != nil {
		for _, e := range g.entities {
			if g.host.Objects.Allocated(e.Object) {
				g.host.Objects.Free(e.Object)
			}
		}
	}
	g.host = host
	g.cfg = cfg
	g.entities = nil
	g.phase = core.PhaseInit
	g.frames = 0

	ship := assets.MustTag(assets.TagSpaceShip)
	alien := assets.MustTag(assets.TagAlien1)

	player := Entity{
		Kind:      KindPlayer,
		Pos:       core.Vec2{X: cfg.Player.X, Y: cfg.PlayerY(hw.Height)},
		Velocity:  cfg.Player.Velocity,
		Footprint: core.Size{W: cfg.Player.Footprint.W, H: cfg.Player.Footprint.H},
	}
	if err := g.spawn(&player, ship.Sprite(0), hw.P1); err != nil {
		return err
	}

	for _, ec := range cfg.Enemies {
		enemy := Entity{
			Kind:      KindEnemy,
			Pos:       core.Vec2{X: ec.X, Y: ec.Y},
			Velocity:  ec.Velocity,
			Footprint: core.Size{W: ec.Footprint.W, H: ec.Footprint.H},
		}
		if err := g.spawn(&enemy, alien.Sprite(0), hw.P2); err != nil {
			return err
		}
	}

	g.phase = core.PhaseRunning
	return nil
}

func (g *Game) spawn(e *Entity, sprite hw.SpriteID, prio hw.Priority) error {
	id, err := g.host.Objects.Object(sprite)
	if err != nil {
		return fmt.Errorf("%s: spawn %s: %w", g.id, e.Kind, err)
	}
	e.Object = id
	g.host.Objects.
		SetPosition(id, e.Pos).
		SetPriority(id, prio).
		Show(id)
	g.entities = append(g.entities, *e)
	return nil
}

// Frame runs one update: the player first, then every enemy in order.
func (g *Game) Frame(buttons *hw.ButtonController) {
	if g.phase != core.PhaseRunning {
		return
	}
	g.frames++

	for i := range g.entities {
		e := &g.entities[i]
		switch e.Kind {
		case KindPlayer:
			e.Pos.X = Nudge(e.Pos.X,
				buttons.IsPressed(core.ButtonLeft),
				buttons.IsPressed(core.ButtonRight),
				MaxX)
			// A is the fire button; missiles are not implemented.
		case KindEnemy:
			e.Pos.X, e.Velocity = Bounce(e.Pos.X, e.Velocity, MaxX)
		}
		g.host.Objects.SetX(e.Object, e.Pos.X)
	}
}

// Entities returns the live entities, player first.
func (g *Game) Entities() []Entity {
	return g.entities
}

// Player returns the ship.
func (g *Game) Player() Entity {
	return g.entities[0]
}

// HoldFrames reports how long a release-less key press counts as held.
func (g *Game) HoldFrames() int {
	return g.cfg.Input.HoldFrames
}

// State returns the loop phase and frame count.
func (g *Game) State() core.GameState {
	return core.GameState{Phase: g.phase, Frames: g.frames}
}

func init() {
	registry.Register(config.IDShooter, func() registry.Game { return New() })
	registry.Register(config.IDTwin, func() registry.Game { return NewTwin() })
}
