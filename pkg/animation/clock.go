// Package animation schedules per-frame callbacks for a screen.
//
// The [Animator] is a registry of predicate callbacks invoked once per
// rendered frame; a callback stays registered until it returns false. The
// screen drives its animator from the host's display tick (for example a
// vsync or page-flip handler), so nothing in this package ever blocks or
// sleeps.
package animation

import "time"

// Clock provides time for transition animations. The default implementation
// uses system time. Tests can inject a fake clock via SetClock to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
