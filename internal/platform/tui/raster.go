package tui

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/shmup/internal/assets"
	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
)

// A terminal cell covers CellW × CellH display pixels, so the 240×160
// display fits an 80×20 grid.
const (
	CellW = 3
	CellH = 8

	GridW = hw.Width / CellW
	GridH = hw.Height / CellH
)

// Shades by how much of a cell is covered, densest first.
var shades = []struct {
	min  int
	rune rune
}{
	{CellW * CellH * 3 / 4, '█'},
	{CellW * CellH / 2, '▓'},
	{CellW * CellH / 4, '▒'},
	{1, '░'},
}

type maskPixel struct {
	x, y  uint8
	color core.Color
}

// spriteMask lists only the opaque pixels of a sprite.
type spriteMask []maskPixel

// Rasterizer draws committed objects into a character screen.
type Rasterizer struct {
	masks *intmap.Map[hw.SpriteID, spriteMask]

	// frame holds color+1 per pixel, zero is transparent.
	frame [hw.Height][hw.Width]uint8
}

// NewRasterizer creates a rasterizer with an empty sprite cache.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		masks: intmap.New[hw.SpriteID, spriteMask](8),
	}
}

func (r *Rasterizer) mask(id hw.SpriteID) spriteMask {
	if m, ok := r.masks.Get(id); ok {
		return m
	}

	var m spriteMask
	if sprite, ok := assets.Lookup(id); ok {
		for y := range sprite.Pixels {
			for x, p := range sprite.Pixels[y] {
				if p.Opaque {
					m = append(m, maskPixel{x: uint8(x), y: uint8(y), color: p.Color})
				}
			}
		}
	}
	r.masks.Put(id, m)
	return m
}

// Cached returns how many sprites have been decoded.
func (r *Rasterizer) Cached() int {
	return r.masks.Len()
}

// Draw composes objects in the given order and downsamples the result
// into s with its top-left corner at (ox, oy). Later objects cover
// earlier ones.
func (r *Rasterizer) Draw(s *core.Screen, objects []hw.Object, ox, oy int) {
	r.frame = [hw.Height][hw.Width]uint8{}

	for _, obj := range objects {
		for _, p := range r.mask(obj.Sprite) {
			x, y := obj.X+int(p.x), obj.Y+int(p.y)
			if x < 0 || x >= hw.Width || y < 0 || y >= hw.Height {
				continue
			}
			r.frame[y][x] = uint8(p.color) + 1
		}
	}

	for cy := 0; cy < GridH; cy++ {
		for cx := 0; cx < GridW; cx++ {
			if cell, ok := r.cell(cx, cy); ok {
				s.SetCell(ox+cx, oy+cy, cell)
			}
		}
	}
}

// cell picks the dominant color of a cell and a shade for its coverage.
func (r *Rasterizer) cell(cx, cy int) (core.Cell, bool) {
	var counts [256]int
	covered := 0
	for y := cy * CellH; y < (cy+1)*CellH; y++ {
		for x := cx * CellW; x < (cx+1)*CellW; x++ {
			if v := r.frame[y][x]; v != 0 {
				counts[v]++
				covered++
			}
		}
	}
	if covered == 0 {
		return core.Cell{}, false
	}

	best := 1
	for v := 2; v < len(counts); v++ {
		if counts[v] > counts[best] {
			best = v
		}
	}

	ch := shades[len(shades)-1].rune
	for _, sh := range shades {
		if covered >= sh.min {
			ch = sh.rune
			break
		}
	}
	return core.Cell{Rune: ch, Color: core.Color(best - 1)}, true
}
