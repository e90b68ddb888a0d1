package slidertest

import (
	stderrors "errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/slider/pkg/animation"
	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/errors"
	"github.com/go-drift/slider/pkg/host"
	"github.com/go-drift/slider/pkg/slider"
	"github.com/zoobzio/clockz"
	"go.uber.org/zap/zaptest"
)

// DefaultPage is the host page a Tester starts with.
const DefaultPage = `<!DOCTYPE html><html><head></head><body><div id="root"></div><div id="other"></div></body></html>`

// FrameDuration is how far PumpAndSettle advances the clock per frame.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = stderrors.New("PumpAndSettle timed out: animations did not finish")

// Tester drives sliders mounted into an in-memory page.
type Tester struct {
	t         testing.TB
	doc       *dom.HTMLDocument
	clock     *clockz.FakeClock
	prevClock clockz.Clock
	loop      *host.Loop
	animator  *animation.FrameAnimator

	mu       sync.Mutex
	reported []error
	panics   []*errors.PanicError
	prevHdl  errors.Handler
}

// NewTester creates a tester over DefaultPage. Global state (animation
// clock, errors handler) is restored through t.Cleanup.
func NewTester(t testing.TB) *Tester {
	t.Helper()
	return NewTesterWithPage(t, DefaultPage)
}

// NewTesterWithPage creates a tester over the given HTML page.
func NewTesterWithPage(t testing.TB, page string) *Tester {
	t.Helper()
	doc, err := dom.ParseString(page)
	if err != nil {
		t.Fatalf("slidertest: parse page: %v", err)
	}

	clk := clockz.NewFakeClock()
	tt := &Tester{
		t:        t,
		doc:      doc,
		clock:    clk,
		loop:     host.NewLoop(host.WithClock(clk)),
		animator: animation.NewFrameAnimator(),
	}
	tt.prevClock = animation.SetClock(clk)
	tt.prevHdl = errors.SetHandler(tt)
	t.Cleanup(tt.cleanup)
	return tt
}

func (tt *Tester) cleanup() {
	for i := 0; i < 8 && animation.HasActiveTickers(); i++ {
		tt.clock.Advance(time.Hour)
		animation.StepTickers()
	}
	animation.SetClock(tt.prevClock)
	errors.SetHandler(tt.prevHdl)
}

// Options wires a slider to the tester's document, animator, scheduler
// and a test logger.
func (tt *Tester) Options() []slider.Option {
	return []slider.Option{
		slider.WithDocument(tt.doc),
		slider.WithAnimator(tt.animator),
		slider.WithScheduler(tt.loop),
		slider.WithLogger(zaptest.NewLogger(tt.t)),
	}
}

// NewSlider constructs a slider wired to the tester. Extra options are
// applied after the tester's own.
func (tt *Tester) NewSlider(height, width string, images []slider.Image, opts ...slider.Option) (*slider.Slider, error) {
	return slider.New(height, width, images, append(tt.Options(), opts...)...)
}

// Document returns the host document.
func (tt *Tester) Document() *dom.HTMLDocument { return tt.doc }

// Clock returns the fake clock for advancing time.
func (tt *Tester) Clock() *clockz.FakeClock { return tt.clock }

// Loop returns the host loop sliders schedule on.
func (tt *Tester) Loop() *host.Loop { return tt.loop }

// Animator returns the animator sliders fade with.
func (tt *Tester) Animator() *animation.FrameAnimator { return tt.animator }

// HTML renders the whole document.
func (tt *Tester) HTML() string { return tt.doc.String() }

// Find evaluates a finder against the document.
func (tt *Tester) Find(f Finder) FinderResult {
	return FinderResult{elements: f.Evaluate(tt.doc), finder: f}
}

// Tap clicks the first element matched by f.
func (tt *Tester) Tap(f Finder) error {
	result := tt.Find(f)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", f.Description())
	}
	result.First().Click()
	return nil
}

// TapAt clicks the match of f at index.
func (tt *Tester) TapAt(f Finder, index int) error {
	result := tt.Find(f)
	if index < 0 || index >= result.Count() {
		return fmt.Errorf("TapAt: index %d out of range (found %d): %s", index, result.Count(), f.Description())
	}
	result.At(index).Click()
	return nil
}

// Pump runs a single frame: queued callbacks, then animation tickers.
func (tt *Tester) Pump() {
	tt.loop.Frame()
}

// PumpAndSettle runs frames, advancing the clock by FrameDuration between
// them, until nothing is pending or timeout of fake time has passed.
func (tt *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		tt.Pump()
		if !tt.loop.NeedsFrame() {
			return nil
		}
		tt.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Tick advances the clock by d, waits (in real time, bounded) until at
// least want callbacks have been dispatched to the loop by interval
// goroutines, then pumps one frame.
func (tt *Tester) Tick(d time.Duration, want int) error {
	tt.clock.Advance(d)
	tt.clock.BlockUntilReady()

	deadline := time.Now().Add(2 * time.Second)
	for tt.loop.Pending() < want {
		if time.Now().After(deadline) {
			return fmt.Errorf("Tick: %d callbacks dispatched, want %d", tt.loop.Pending(), want)
		}
		time.Sleep(time.Millisecond)
	}
	tt.Pump()
	return nil
}

// Reported returns the errors sent to the errors handler since the tester
// was created.
func (tt *Tester) Reported() []error {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return append([]error(nil), tt.reported...)
}

// Panics returns the panics recovered since the tester was created.
func (tt *Tester) Panics() []*errors.PanicError {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return append([]*errors.PanicError(nil), tt.panics...)
}

// HandleError implements errors.Handler.
func (tt *Tester) HandleError(err *errors.SliderError) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.reported = append(tt.reported, err)
}

// HandlePanic implements errors.Handler.
func (tt *Tester) HandlePanic(err *errors.PanicError) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.panics = append(tt.panics, err)
}
