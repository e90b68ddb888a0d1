// Package animation runs the slider's visual effects.
//
// Effects are frame-driven. A [Controller] owns a [Ticker]; the host calls
// [StepTickers] once per frame, and each controller turns the time since it
// started into progress that listeners write onto an element. The slider
// only sees the [Animator] interface. [FrameAnimator] implements it on top
// of controllers for in-memory documents; package jsdom implements it with
// the browser's element.animate.
package animation

import (
	"sync"
	"time"
)

// tickers holds every started ticker until it is stopped.
var tickers = struct {
	sync.Mutex
	set map[*Ticker]struct{}
}{set: make(map[*Ticker]struct{})}

// Ticker calls fn once per host frame with the time since Start.
type Ticker struct {
	fn      func(elapsed time.Duration)
	started time.Time
	active  bool
}

// NewTicker returns a stopped ticker.
func NewTicker(fn func(elapsed time.Duration)) *Ticker {
	return &Ticker{fn: fn}
}

// Start registers the ticker for the next frame. Starting an active ticker
// does nothing.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.started = Now()

	tickers.Lock()
	tickers.set[t] = struct{}{}
	tickers.Unlock()
}

// Stop unregisters the ticker.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false

	tickers.Lock()
	delete(tickers.set, t)
	tickers.Unlock()
}

// Active reports whether the ticker receives frames.
func (t *Ticker) Active() bool { return t.active }

// StepTickers delivers one frame to every active ticker. Tickers started by
// a callback get their first frame on the next call.
func StepTickers() {
	tickers.Lock()
	due := make([]*Ticker, 0, len(tickers.set))
	for t := range tickers.set {
		due = append(due, t)
	}
	tickers.Unlock()

	if len(due) == 0 {
		return
	}
	now := Now()
	for _, t := range due {
		// An earlier callback in this frame may have stopped t.
		if t.active && t.fn != nil {
			t.fn(now.Sub(t.started))
		}
	}
}

// HasActiveTickers reports whether a frame would do any work.
func HasActiveTickers() bool {
	tickers.Lock()
	defer tickers.Unlock()
	return len(tickers.set) > 0
}
