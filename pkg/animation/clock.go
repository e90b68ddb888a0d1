package animation

import (
	"time"

	"github.com/zoobzio/clockz"
)

// clock is the package-level time source for tickers. Tests swap in a
// clockz.FakeClock via SetClock to step animations deterministically.
var clock clockz.Clock = clockz.RealClock

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c clockz.Clock) clockz.Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
