//go:build js && wasm

package jsdom

import (
	"errors"
	"sync"
	"syscall/js"
	"time"

	"github.com/go-drift/slider/pkg/animation"
	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/host"
)

// Animator plays effects with the Web Animations API (element.animate).
type Animator struct{}

// Animate implements animation.Animator.
func (Animator) Animate(el dom.Element, frames []animation.Keyframe, opts animation.Options) error {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return errors.New("jsdom: animate needs a browser element")
	}
	if len(frames) == 0 {
		return animation.ErrNoKeyframes
	}
	if fn := e.v.Get("animate"); fn.IsUndefined() {
		return errors.New("jsdom: element.animate is not supported")
	}

	keyframes := make([]any, len(frames))
	for i, f := range frames {
		keyframes[i] = map[string]any{"opacity": f.Opacity}
	}
	e.v.Call("animate", keyframes, map[string]any{
		"duration": float64(opts.Duration) / float64(time.Millisecond),
	})
	return nil
}

// Scheduler runs callbacks with window.setInterval. The browser already
// calls them on its event loop, so no dispatching is needed.
type Scheduler struct{}

// Every implements host.Scheduler.
func (Scheduler) Every(interval time.Duration, fn func()) host.Handle {
	h := &timer{}
	h.cb = js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	h.id = js.Global().Call("setInterval", h.cb, interval.Milliseconds())
	return h
}

type timer struct {
	once sync.Once
	id   js.Value
	cb   js.Func
}

func (h *timer) Stop() {
	h.once.Do(func() {
		js.Global().Call("clearInterval", h.id)
		h.cb.Release()
	})
}
