package gfx

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shmup/internal/assets"
	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
)

func TestButtonsFor(t *testing.T) {
	held := map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeySpace: true}
	got := buttonsFor(func(k ebiten.Key) bool { return held[k] })

	assert.True(t, got.Has(core.ButtonLeft))
	assert.True(t, got.Has(core.ButtonA))
	assert.False(t, got.Has(core.ButtonRight))

	assert.Equal(t, core.Buttons(0), buttonsFor(func(ebiten.Key) bool { return false }))
}

func TestSpriteImage(t *testing.T) {
	s, ok := assets.Lookup(assets.MustTag(assets.TagSpaceShip).Sprite(0))
	require.True(t, ok)

	img := SpriteImage(s)
	assert.Equal(t, assets.SpriteWidth, img.Bounds().Dx())
	assert.Equal(t, assets.SpriteHeight, img.Bounds().Dy())

	r, g, b := core.ColorCyan.RGB()
	assert.Equal(t, color.RGBA{r, g, b, 0xff}, img.RGBAAt(7, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0), "transparent corner")
}

func TestHUDFaceFitsDisplay(t *testing.T) {
	m := hudFace.Metrics()
	assert.Greater(t, m.HAscent+m.HDescent, 0.0)

	w, h := text.Measure("999999", hudFace, m.HLineGap+m.HAscent+m.HDescent)
	assert.Less(t, w+2, float64(hw.Width))
	assert.Less(t, h+2, float64(hw.Height))
}

func TestLayoutIsNative(t *testing.T) {
	w := &Window{}
	width, height := w.Layout(1920, 1080)
	assert.Equal(t, 240, width)
	assert.Equal(t, 160, height)
}
