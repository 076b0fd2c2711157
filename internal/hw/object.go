package hw

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/shmup/internal/core"
)

// ErrNoFreeObjects is returned when every hardware sprite slot is in use.
var ErrNoFreeObjects = errors.New("hw: no free object slots")

// SpriteID selects one frame of the embedded sprite sheet.
type SpriteID uint16

// ObjectID is the index of a slot in the object pool. Entities keep the
// index, the controller keeps the slot.
type ObjectID uint8

// Attributes is the per-object state the display reads.
type Attributes struct {
	Sprite   SpriteID
	X, Y     int
	Priority Priority
	Visible  bool
}

// Object pairs a slot index with its committed attributes.
type Object struct {
	ID ObjectID
	Attributes
}

type slot struct {
	attr Attributes
	used bool
}

// ObjectController owns the object attribute table. Mutators write to a
// pending copy; Commit publishes the whole table at once.
type ObjectController struct {
	pending   [MaxObjects]slot
	committed [MaxObjects]slot
	commits   uint64
}

// NewObjectController creates an empty object table.
func NewObjectController() *ObjectController {
	return &ObjectController{}
}

// Object allocates the lowest free slot showing sprite. New objects are
// hidden at the origin with priority P0.
func (c *ObjectController) Object(sprite SpriteID) (ObjectID, error) {
	for i := range c.pending {
		if !c.pending[i].used {
			c.pending[i] = slot{attr: Attributes{Sprite: sprite}, used: true}
			return ObjectID(i), nil
		}
	}
	return 0, ErrNoFreeObjects
}

func (c *ObjectController) attr(id ObjectID) *Attributes {
	if int(id) >= MaxObjects || !c.pending[id].used {
		panic(fmt.Sprintf("hw: object %d is not allocated", id))
	}
	return &c.pending[id].attr
}

// SetX sets the horizontal offset of an object.
func (c *ObjectController) SetX(id ObjectID, x int) *ObjectController {
	c.attr(id).X = x
	return c
}

// SetY sets the vertical offset of an object.
func (c *ObjectController) SetY(id ObjectID, y int) *ObjectController {
	c.attr(id).Y = y
	return c
}

// SetPosition sets both offsets.
func (c *ObjectController) SetPosition(id ObjectID, pos core.Vec2) *ObjectController {
	a := c.attr(id)
	a.X, a.Y = pos.X, pos.Y
	return c
}

// SetPriority sets the render priority.
func (c *ObjectController) SetPriority(id ObjectID, p Priority) *ObjectController {
	c.attr(id).Priority = p
	return c
}

// SetSprite replaces the image an object shows.
func (c *ObjectController) SetSprite(id ObjectID, sprite SpriteID) *ObjectController {
	c.attr(id).Sprite = sprite
	return c
}

// Show makes the object visible from the next commit.
func (c *ObjectController) Show(id ObjectID) *ObjectController {
	c.attr(id).Visible = true
	return c
}

// Hide removes the object from the display from the next commit.
func (c *ObjectController) Hide(id ObjectID) *ObjectController {
	c.attr(id).Visible = false
	return c
}

// Free releases the slot. The object stays on screen until the next commit.
func (c *ObjectController) Free(id ObjectID) {
	c.attr(id)
	c.pending[id] = slot{}
}

// Allocated reports whether id names a live slot in the pending table.
func (c *ObjectController) Allocated(id ObjectID) bool {
	return int(id) < MaxObjects && c.pending[id].used
}

// Reset frees every slot and clears the committed table.
func (c *ObjectController) Reset() {
	c.pending = [MaxObjects]slot{}
	c.committed = [MaxObjects]slot{}
	c.commits = 0
}

// Pending returns the not yet committed attributes of an object.
func (c *ObjectController) Pending(id ObjectID) Attributes {
	return *c.attr(id)
}

// Committed returns the attributes the display currently shows for id.
func (c *ObjectController) Committed(id ObjectID) (Attributes, bool) {
	if int(id) >= MaxObjects {
		return Attributes{}, false
	}
	s := c.committed[id]
	return s.attr, s.used
}

// Commit copies the pending table to the display.
func (c *ObjectController) Commit() {
	c.committed = c.pending
	c.commits++
}

// Commits returns how many times the table has been committed.
func (c *ObjectController) Commits() uint64 {
	return c.commits
}

// InUse returns the number of allocated slots in the pending table.
func (c *ObjectController) InUse() int {
	n := 0
	for i := range c.pending {
		if c.pending[i].used {
			n++
		}
	}
	return n
}

// Visible returns the committed visible objects in draw order: lowest
// priority first and, within a priority, higher slots first, so the last
// object drawn is the one on top.
func (c *ObjectController) Visible() []Object {
	out := make([]Object, 0, MaxObjects)
	for i := range c.committed {
		s := c.committed[i]
		if s.used && s.attr.Visible {
			out = append(out, Object{ID: ObjectID(i), Attributes: s.attr})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID > out[j].ID
	})
	return out
}
