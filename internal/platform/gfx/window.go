// Package gfx runs a prototype in a desktop window with Ebitengine, at the
// handheld's native 240×160 resolution scaled up.
package gfx

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/kamstrup/intmap"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/shmup/internal/assets"
	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
	"github.com/vovakirdan/shmup/internal/registry"
	"github.com/vovakirdan/shmup/internal/storage"
)

var (
	backdrop = color.RGBA{0x10, 0x10, 0x28, 0xff}
	hudColor = color.RGBA{0x90, 0x90, 0x90, 0xff}
	hudFace  = text.NewGoXFace(basicfont.Face7x13)
)

// Window is an ebiten.Game that drives one prototype.
type Window struct {
	ctx    context.Context
	game   registry.Game
	host   *hw.Host
	input  hw.ButtonSource
	images *intmap.Map[hw.SpriteID, *ebiten.Image]
	hud    bool
}

// NewWindow initializes game on a fresh host. input defaults to the
// keyboard.
func NewWindow(ctx context.Context, game registry.Game, input hw.ButtonSource) (*Window, error) {
	host := hw.NewHost()
	if err := game.Init(host); err != nil {
		return nil, err
	}
	host.Commit()

	if input == nil {
		input = Keyboard{}
	}

	w := &Window{
		ctx:    ctx,
		game:   game,
		host:   host,
		input:  input,
		images: intmap.New[hw.SpriteID, *ebiten.Image](8),
		hud:    true,
	}
	w.host.Step(w.game, w.input)
	return w, nil
}

// Update is called once per tick. The tick stands in for the vertical
// blank, so the previous update is committed before the next one runs.
func (w *Window) Update() error {
	if w.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		w.hud = !w.hud
	}

	w.host.Commit()
	w.host.Step(w.game, w.input)
	return nil
}

// Draw paints the committed object table.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	for _, obj := range w.host.Objects.Visible() {
		img := w.image(obj.Sprite)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(obj.X), float64(obj.Y))
		screen.DrawImage(img, op)
	}

	if w.hud {
		state := w.game.State()
		op := &text.DrawOptions{}
		op.GeoM.Translate(2, 2)
		op.ColorScale.ScaleWithColor(hudColor)
		text.Draw(screen, fmt.Sprintf("%d", state.Frames), hudFace, op)
	}
}

// Layout fixes the logical screen to the display size; ebiten scales it
// to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return hw.Width, hw.Height
}

func (w *Window) image(id hw.SpriteID) *ebiten.Image {
	if img, ok := w.images.Get(id); ok {
		return img
	}

	var img *ebiten.Image
	if sprite, ok := assets.Lookup(id); ok {
		img = ebiten.NewImageFromImage(SpriteImage(sprite))
	}
	w.images.Put(id, img)
	return img
}

// SpriteImage converts a sprite to an RGBA image with transparent
// background.
func SpriteImage(s *assets.Sprite) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, assets.SpriteWidth, assets.SpriteHeight))
	for y := range s.Pixels {
		for x, p := range s.Pixels[y] {
			if !p.Opaque {
				continue
			}
			r, g, b := p.Color.RGB()
			img.SetRGBA(x, y, color.RGBA{r, g, b, 0xff})
		}
	}
	return img
}

// Options configure Run.
type Options struct {
	Config core.RuntimeConfig // Scale and TickRate are used
	Store  *storage.Store     // Play history, may be nil
	User   string
	Logger *log.Logger
}

// Run opens a window and plays game until the window closes, q is
// pressed or ctx is done.
func Run(ctx context.Context, game registry.Game, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	scale := opts.Config.Scale
	if scale < 1 {
		scale = 1
	}

	w, err := NewWindow(ctx, game, nil)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(hw.Width*scale, hw.Height*scale)
	ebiten.SetWindowTitle(game.Title())
	if opts.Config.TickRate > 0 {
		ebiten.SetTPS(opts.Config.TickRate)
	}

	logger.Info("opening window", "game", game.ID(), "scale", scale, "tps", ebiten.TPS())
	started := time.Now()

	err = ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}

	frames := game.State().Frames
	logger.Info("window closed", "game", game.ID(), "frames", frames)
	if opts.Store != nil && frames > 0 {
		if _, saveErr := opts.Store.SaveSession(storage.Session{
			SessionID: uuid.New(),
			GameID:    game.ID(),
			User:      opts.User,
			Frames:    frames,
			Duration:  time.Since(started),
		}); saveErr != nil {
			logger.Warn("could not save session", "error", saveErr)
		}
	}

	return err
}

var _ ebiten.Game = (*Window)(nil)
