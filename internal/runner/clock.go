package runner

import (
	"context"
	"time"
)

// Clock paces the frames of the driver loop.
type Clock interface {
	// Wait blocks until the next frame is due or the context is canceled.
	Wait(ctx context.Context) error
	// Stop releases the resources of the clock.
	Stop()
}

// TickerClock is a clock based on a time.Ticker.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock returns a clock that ticks with the given frame duration.
func NewTickerClock(frame time.Duration) *TickerClock {
	return &TickerClock{
		ticker: time.NewTicker(frame),
	}
}

// Wait implements Clock.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop implements Clock.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// UnpacedClock is a clock that never waits, used to run programs as fast as
// possible.
type UnpacedClock struct{}

// Wait implements Clock.
func (UnpacedClock) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Stop implements Clock.
func (UnpacedClock) Stop() {}
