package hw_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
)

// stepper moves one object right by one pixel per frame while Right is held.
type stepper struct {
	objects *hw.ObjectController
	id      hw.ObjectID
	x       int
	frames  int
}

func (s *stepper) Frame(b *hw.ButtonController) {
	s.frames++
	if b.IsPressed(core.ButtonRight) {
		s.x++
		s.objects.SetX(s.id, s.x)
	}
}

func newStepper(t *testing.T, h *hw.Host) *stepper {
	t.Helper()
	id, err := h.Objects.Object(0)
	require.NoError(t, err)
	h.Objects.Show(id)
	return &stepper{objects: h.Objects, id: id}
}

func TestButtonControllerEdges(t *testing.T) {
	b := hw.NewButtonController()

	b.Update(hw.Held(core.Buttons(core.ButtonLeft)))
	assert.True(t, b.IsPressed(core.ButtonLeft))
	assert.True(t, b.JustPressed(core.ButtonLeft))
	assert.True(t, b.IsReleased(core.ButtonRight))

	b.Update(hw.Held(core.Buttons(core.ButtonLeft)))
	assert.True(t, b.IsPressed(core.ButtonLeft))
	assert.False(t, b.JustPressed(core.ButtonLeft))

	b.Update(nil)
	assert.True(t, b.JustReleased(core.ButtonLeft))
	assert.Equal(t, core.Buttons(0), b.Snapshot())
}

func TestStepLeavesChangesPending(t *testing.T) {
	h := hw.NewHost()
	g := newStepper(t, h)

	h.Step(g, hw.Held(core.Buttons(core.ButtonRight)))
	assert.Equal(t, 1, h.Objects.Pending(g.id).X)
	_, ok := h.Objects.Committed(g.id)
	assert.False(t, ok)

	h.Commit()
	attr, ok := h.Objects.Committed(g.id)
	require.True(t, ok)
	assert.Equal(t, 1, attr.X)
}

func TestRunCommitsEveryFrameUntilCancelled(t *testing.T) {
	h := hw.NewHost()
	g := newStepper(t, h)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seen []int
	present := func(objs *hw.ObjectController) {
		attr, _ := objs.Committed(g.id)
		seen = append(seen, attr.X)
		if len(seen) == 5 {
			cancel()
		}
	}

	err := hw.Run(ctx, h, g, hw.Held(core.Buttons(core.ButtonRight)), hw.NoWait, present)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
	// The sixth update ran but was never committed.
	assert.Equal(t, 6, g.frames)
	assert.Equal(t, uint64(5), h.Objects.Commits())
}

func TestTickerVBlankHonoursContext(t *testing.T) {
	v := hw.NewTickerVBlank(1)
	defer v.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, v.Wait(ctx), context.DeadlineExceeded)
}

func TestTickerVBlankTicks(t *testing.T) {
	v := hw.NewTickerVBlank(1000)
	defer v.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, v.Wait(ctx))
}
