// Package assets holds the sprite sheet embedded in the binary. The sheet is
// parsed once, on first use, into an immutable tag table; every lookup after
// that is read-only.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
)

// Sprite frame dimensions in pixels.
const (
	SpriteWidth  = 16
	SpriteHeight = 16
)

// Tag names present in the embedded sheet.
const (
	TagSpaceShip = "Space_Ship"
	TagAlien1    = "Alien1"
	TagMissile   = "Missile" // reserved for the fire button, nothing spawns it yet
)

// ErrUnknownTag is returned when a tag name is not in the sheet.
var ErrUnknownTag = errors.New("assets: unknown tag")

//go:embed sprites.yaml
var spritesYAML []byte

// Pixel is one sprite pixel. Transparent pixels have Opaque == false.
type Pixel struct {
	Color  core.Color
	Opaque bool
}

// Sprite is one decoded frame.
type Sprite struct {
	ID     hw.SpriteID
	Tag    string
	Frame  int
	Pixels [SpriteHeight][SpriteWidth]Pixel
}

// Tag is a named run of consecutive sprite frames.
type Tag struct {
	Name   string
	first  hw.SpriteID
	frames int
}

// Sprite returns the id of frame idx, wrapping around the tag's frames.
func (t *Tag) Sprite(idx int) hw.SpriteID {
	if idx < 0 {
		idx = -idx
	}
	return t.first + hw.SpriteID(idx%t.frames)
}

// Frames returns the number of frames in the tag.
func (t *Tag) Frames() int {
	return t.frames
}

// TagMap indexes the sheet by tag name and by sprite id.
type TagMap struct {
	tags    map[string]*Tag
	sprites []*Sprite
}

// Get looks up a tag by name.
func (m *TagMap) Get(name string) (*Tag, error) {
	t, ok := m.tags[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	return t, nil
}

// Sprite returns the decoded frame for id.
func (m *TagMap) Sprite(id hw.SpriteID) (*Sprite, bool) {
	if int(id) >= len(m.sprites) {
		return nil, false
	}
	return m.sprites[id], true
}

// Len returns the number of frames in the sheet.
func (m *TagMap) Len() int {
	return len(m.sprites)
}

type sheetFile struct {
	Palette map[string]string `yaml:"palette"`
	Tags    []struct {
		Name   string   `yaml:"name"`
		Frames []string `yaml:"frames"`
	} `yaml:"tags"`
}

// Parse decodes a sprite sheet. Sprite ids are assigned in file order.
func Parse(data []byte) (*TagMap, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: cannot parse sheet: %w", err)
	}

	palette := make(map[rune]core.Color, len(f.Palette))
	for glyph, name := range f.Palette {
		r := []rune(glyph)
		if len(r) != 1 || r[0] == '.' {
			return nil, fmt.Errorf("assets: palette glyph %q must be one non-dot character", glyph)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("assets: palette glyph %q: unknown color %q", glyph, name)
		}
		palette[r[0]] = c
	}

	m := &TagMap{tags: make(map[string]*Tag, len(f.Tags))}
	for _, t := range f.Tags {
		if t.Name == "" {
			return nil, errors.New("assets: tag without a name")
		}
		if _, dup := m.tags[t.Name]; dup {
			return nil, fmt.Errorf("assets: duplicate tag %q", t.Name)
		}
		if len(t.Frames) == 0 {
			return nil, fmt.Errorf("assets: tag %q has no frames", t.Name)
		}

		tag := &Tag{Name: t.Name, first: hw.SpriteID(len(m.sprites)), frames: len(t.Frames)}
		for i, raw := range t.Frames {
			s, err := decodeFrame(raw, palette)
			if err != nil {
				return nil, fmt.Errorf("assets: tag %q frame %d: %w", t.Name, i, err)
			}
			s.ID = hw.SpriteID(len(m.sprites))
			s.Tag = t.Name
			s.Frame = i
			m.sprites = append(m.sprites, s)
		}
		m.tags[t.Name] = tag
	}
	return m, nil
}

func decodeFrame(raw string, palette map[rune]core.Color) (*Sprite, error) {
	rows := strings.Split(strings.TrimRight(raw, "\n"), "\n")
	if len(rows) != SpriteHeight {
		return nil, fmt.Errorf("expected %d rows, got %d", SpriteHeight, len(rows))
	}

	s := &Sprite{}
	for y, row := range rows {
		glyphs := []rune(row)
		if len(glyphs) != SpriteWidth {
			return nil, fmt.Errorf("row %d: expected %d pixels, got %d", y, SpriteWidth, len(glyphs))
		}
		for x, g := range glyphs {
			if g == '.' {
				continue
			}
			c, ok := palette[g]
			if !ok {
				return nil, fmt.Errorf("row %d: glyph %q not in palette", y, g)
			}
			s.Pixels[y][x] = Pixel{Color: c, Opaque: true}
		}
	}
	return s, nil
}

var (
	sheetOnce sync.Once
	sheet     *TagMap
	sheetErr  error
)

// Tags returns the embedded sheet, parsing it on first call.
func Tags() (*TagMap, error) {
	sheetOnce.Do(func() {
		sheet, sheetErr = Parse(spritesYAML)
	})
	return sheet, sheetErr
}

// MustTag resolves a tag from the embedded sheet. The sheet is compiled in,
// so a missing tag is a build defect and panics.
func MustTag(name string) *Tag {
	m, err := Tags()
	if err != nil {
		panic(err)
	}
	t, err := m.Get(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the decoded frame for id from the embedded sheet.
func Lookup(id hw.SpriteID) (*Sprite, bool) {
	m, err := Tags()
	if err != nil {
		return nil, false
	}
	return m.Sprite(id)
}
