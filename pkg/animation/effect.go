package animation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-drift/slider/pkg/dom"
)

// ErrNoKeyframes is returned when an animation is requested without frames.
var ErrNoKeyframes = errors.New("animation: no keyframes")

// Keyframe is one step of an opacity effect.
type Keyframe struct {
	Opacity float64
}

// Options controls a single run of an effect.
type Options struct {
	// Duration is the total run time.
	Duration time.Duration
	// Curve shapes progress; nil means linear.
	Curve func(float64) float64
}

// FadeFrames are the keyframes the slider plays when its image changes.
func FadeFrames() []Keyframe {
	return []Keyframe{{Opacity: 0.4}, {Opacity: 1}}
}

// Animator runs a visual effect on an element. Implementations must not
// block: the call starts the effect and returns.
type Animator interface {
	Animate(el dom.Element, frames []Keyframe, opts Options) error
}

// NopAnimator accepts every request and does nothing.
type NopAnimator struct{}

// Animate implements Animator.
func (NopAnimator) Animate(dom.Element, []Keyframe, Options) error { return nil }

// FrameAnimator plays effects by writing the element's inline opacity on
// every frame. When an effect completes the inline opacity is removed, the
// same way a non-filling web animation reverts to the underlying style.
// Starting a new effect on an element replaces the one already running there.
type FrameAnimator struct {
	running map[dom.Element]*Controller
}

// NewFrameAnimator returns an animator with no running effects.
func NewFrameAnimator() *FrameAnimator {
	return &FrameAnimator{running: make(map[dom.Element]*Controller)}
}

// Animate implements Animator.
func (a *FrameAnimator) Animate(el dom.Element, frames []Keyframe, opts Options) error {
	if el == nil {
		return errors.New("animation: nil element")
	}
	if len(frames) == 0 {
		return ErrNoKeyframes
	}
	if opts.Duration < 0 {
		return fmt.Errorf("animation: negative duration %s", opts.Duration)
	}

	if prev := a.running[el]; prev != nil {
		prev.Dispose()
	}

	c := NewController(opts.Duration)
	if opts.Curve != nil {
		c.Curve = opts.Curve
	}
	opacity := TweenKeyframes(frames)
	c.OnChange(func() {
		el.SetStyle("opacity", formatOpacity(opacity.Transform(c)))
	})
	c.OnStatus(func(status Status) {
		if status != Finished {
			return
		}
		el.SetStyle("opacity", "")
		if a.running[el] == c {
			delete(a.running, el)
		}
		c.Dispose()
	})
	a.running[el] = c
	c.Start()
	return nil
}

// Running reports whether an effect is playing on el.
func (a *FrameAnimator) Running(el dom.Element) bool {
	_, ok := a.running[el]
	return ok
}

func formatOpacity(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
