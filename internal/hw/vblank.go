package hw

import (
	"context"
	"time"
)

// VBlank blocks until the display's next vertical blank.
type VBlank interface {
	Wait(ctx context.Context) error
}

// TickerVBlank paces frames with a ticker at the display refresh rate.
type TickerVBlank struct {
	ticker *time.Ticker
}

// NewTickerVBlank creates a vblank source firing rate times per second.
// A non-positive rate falls back to 60.
func NewTickerVBlank(rate int) *TickerVBlank {
	if rate <= 0 {
		rate = 60
	}
	return &TickerVBlank{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Wait blocks for the next tick or until ctx is done.
func (v *TickerVBlank) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-v.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (v *TickerVBlank) Stop() {
	v.ticker.Stop()
}

type noWait struct{}

func (noWait) Wait(ctx context.Context) error {
	return ctx.Err()
}

// NoWait never blocks. Headless runs use it to go as fast as possible.
var NoWait VBlank = noWait{}
