package slatetest

import (
	"sync"
	"testing"
	"time"

	"github.com/go-slate/slate/pkg/animation"
)

// FakeClock stands in for the animation clock so transition tests can
// step time by exact frame intervals instead of sleeping. Safe for
// concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock at a fixed epoch. The epoch is
// arbitrary; animations only ever look at deltas.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// InstallFakeClock wires a fresh FakeClock into the animation package
// for the duration of the test and restores the previous clock when the
// test finishes.
func InstallFakeClock(t testing.TB) *FakeClock {
	t.Helper()
	c := NewFakeClock()
	prev := animation.SetClock(c)
	t.Cleanup(func() { animation.SetClock(prev) })
	return c
}

// Now implements animation.Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance steps the clock forward by d, typically one frame interval.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to an exact instant.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
