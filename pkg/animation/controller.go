package animation

import (
	"fmt"
	"time"
)

// Status is the phase of a Controller.
//
//	Start()        last frame
//	Idle ──► Running ──────────► Finished
//	 ▲                               │
//	 └────────────── Reset() ────────┘
type Status int

const (
	// Idle means the controller has not started or was reset; Value is 0.
	Idle Status = iota
	// Running means frames are advancing Value toward 1.
	Running
	// Finished means Value reached 1.
	Finished
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Controller maps frame time onto progress from 0 to 1 over Duration,
// shaped by Curve. Dispose it when it is no longer needed.
type Controller struct {
	// Duration is the run time. Zero or less finishes on the first frame.
	Duration time.Duration
	// Curve eases linear progress. Nil means linear.
	Curve func(float64) float64

	value   float64
	status  Status
	ticker  *Ticker
	changes subscribers[func()]
	phases  subscribers[func(Status)]
}

// NewController returns an idle controller.
func NewController(d time.Duration) *Controller {
	return &Controller{Duration: d, Curve: LinearCurve}
}

// Value is the eased progress.
func (c *Controller) Value() float64 { return c.value }

// Status returns the current phase.
func (c *Controller) Status() Status { return c.status }

// Running reports whether frames are still advancing the controller.
func (c *Controller) Running() bool { return c.ticker != nil }

// Start runs from 0, restarting if already running. Listeners see the
// starting value immediately.
func (c *Controller) Start() {
	c.Stop()
	c.value = 0
	c.setStatus(Running)
	c.changes.each(func(fn func()) { fn() })

	c.ticker = NewTicker(c.frame)
	c.ticker.Start()
}

// Stop freezes the controller at its current value.
func (c *Controller) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

// Reset stops and returns to Idle at 0.
func (c *Controller) Reset() {
	c.Stop()
	c.value = 0
	c.setStatus(Idle)
	c.changes.each(func(fn func()) { fn() })
}

// OnChange calls fn whenever Value changes. The returned func unsubscribes.
func (c *Controller) OnChange(fn func()) func() { return c.changes.add(fn) }

// OnStatus calls fn on every phase change. The returned func unsubscribes.
func (c *Controller) OnStatus(fn func(Status)) func() { return c.phases.add(fn) }

// Dispose stops the controller and drops all listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.changes = subscribers[func()]{}
	c.phases = subscribers[func(Status)]{}
}

func (c *Controller) frame(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(elapsed)/float64(c.Duration), 1)
	}
	c.value = progress
	if c.Curve != nil {
		c.value = c.Curve(progress)
	}
	c.changes.each(func(fn func()) { fn() })

	if progress == 1 {
		c.Stop()
		c.setStatus(Finished)
	}
}

func (c *Controller) setStatus(s Status) {
	if c.status == s {
		return
	}
	c.status = s
	c.phases.each(func(fn func(Status)) { fn(s) })
}

// subscribers is an ordered set of callbacks with unsubscribe handles.
type subscribers[F any] struct {
	ids []int
	fns map[int]F
	seq int
}

func (s *subscribers[F]) add(fn F) func() {
	if s.fns == nil {
		s.fns = make(map[int]F)
	}
	id := s.seq
	s.seq++
	s.ids = append(s.ids, id)
	s.fns[id] = fn
	return func() { delete(s.fns, id) }
}

// each calls visit for every live subscriber in subscription order.
func (s *subscribers[F]) each(visit func(F)) {
	for _, id := range s.ids {
		if fn, ok := s.fns[id]; ok {
			visit(fn)
		}
	}
}
