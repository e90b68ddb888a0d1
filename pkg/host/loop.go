// Package host provides the single-threaded event loop the slider runs on.
//
// Every state change of a widget happens inside a callback executed by the
// loop, one callback at a time and each to completion. Other goroutines
// (interval timers, file watchers, terminal input) never touch widgets
// directly: they hand work to the loop with Dispatch.
package host

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/slider/pkg/animation"
	"github.com/go-drift/slider/pkg/errors"
	"github.com/zoobzio/clockz"
)

// FrameInterval is the default time between animation frames.
const FrameInterval = 16 * time.Millisecond

// Handle cancels a scheduled activity. Stop is idempotent.
type Handle interface {
	Stop()
}

// Scheduler runs fn every interval on the host's UI goroutine.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// Loop is a run-to-completion dispatch queue with a frame clock.
type Loop struct {
	clock         clockz.Clock
	frameInterval time.Duration

	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock sets the clock used for intervals and frames.
// Use this with clockz.FakeClock for deterministic tests.
func WithClock(clock clockz.Clock) Option {
	return func(l *Loop) { l.clock = clock }
}

// WithFrameInterval sets the time between animation frames.
func WithFrameInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.frameInterval = d
		}
	}
}

// NewLoop creates an idle loop.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		clock:         clockz.RealClock,
		frameInterval: FrameInterval,
		wake:          make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Clock returns the loop's clock.
func (l *Loop) Clock() clockz.Clock {
	return l.clock
}

// Dispatch queues fn for the loop goroutine. Safe for concurrent use.
// Returns false if fn is nil.
func (l *Loop) Dispatch(fn func()) bool {
	if fn == nil {
		return false
	}
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Pending returns the number of queued callbacks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Drain runs every callback queued before the call and returns how many ran.
// Callbacks queued while draining wait for the next Drain.
// Must be called from the loop goroutine.
func (l *Loop) Drain() int {
	l.mu.Lock()
	callbacks := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, fn := range callbacks {
		l.run(fn)
	}
	return len(callbacks)
}

func (l *Loop) run(fn func()) {
	defer errors.Recover("host.Dispatch")
	fn()
}

// Frame drains the queue and steps running animations.
// Must be called from the loop goroutine.
func (l *Loop) Frame() {
	l.Drain()
	animation.StepTickers()
}

// NeedsFrame reports whether callbacks or animations are pending.
func (l *Loop) NeedsFrame() bool {
	return l.Pending() > 0 || animation.HasActiveTickers()
}

// Run processes callbacks and frames until ctx is done.
// The calling goroutine becomes the loop goroutine.
func (l *Loop) Run(ctx context.Context) error {
	frames := l.clock.NewTicker(l.frameInterval)
	defer frames.Stop()

	for {
		if l.NeedsFrame() {
			l.Frame()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-frames.C():
		}
	}
}

// Every schedules fn on the loop every interval until the returned handle
// is stopped. Ticks that fire after Stop are dropped, including ticks
// already queued.
func (l *Loop) Every(interval time.Duration, fn func()) Handle {
	iv := &repeat{done: make(chan struct{})}
	ticker := l.clock.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-iv.done:
				return
			case <-ticker.C():
				l.Dispatch(func() {
					if iv.stopped.Load() {
						return
					}
					fn()
				})
			}
		}
	}()
	return iv
}

type repeat struct {
	once    sync.Once
	stopped atomic.Bool
	done    chan struct{}
}

func (iv *repeat) Stop() {
	iv.once.Do(func() {
		iv.stopped.Store(true)
		close(iv.done)
	})
}
