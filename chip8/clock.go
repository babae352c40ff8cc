package chip8

import (
	"context"
	"time"
)

// Tick is one clock signal.
type Tick struct{}

// DefaultClockDepth is how many ticks may queue up before new ones are dropped.
const DefaultClockDepth = 8

// Clock emits ticks at a fixed rate from its own goroutine.
type Clock struct {
	interval time.Duration
	ticks    chan Tick
}

// NewClock returns a clock ticking hz times per second. Up to depth ticks
// are buffered while the engine is not polling.
func NewClock(hz, depth int) *Clock {
	if hz < 1 {
		hz = 1
	}
	if depth < 1 {
		depth = DefaultClockDepth
	}
	return &Clock{
		interval: time.Second / time.Duration(hz),
		ticks:    make(chan Tick, depth),
	}
}

// Ticks returns the tick channel. It is closed once Run returns.
func (c *Clock) Ticks() <-chan Tick {
	return c.ticks
}

// Interval returns the time between two ticks.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Run sends ticks until ctx is cancelled.
func (c *Clock) Run(ctx context.Context) error {
	defer close(c.ticks)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			select {
			case c.ticks <- Tick{}:
			default:
			}
		}
	}
}
