package slider_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/slider/pkg/slider"
	"github.com/go-drift/slider/pkg/slidertest"
	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/capitan"
)

func TestMain(m *testing.M) {
	// Listeners run inside Emit, so events are visible as soon as a call returns.
	capitan.Configure(capitan.WithSyncMode())
	os.Exit(m.Run())
}

var allSignals = []capitan.Signal{
	slider.SliderMounted,
	slider.SliderTransitioned,
	slider.SliderUpdateFailed,
	slider.SliderConfigUpdated,
	slider.SliderAutoStarted,
	slider.SliderAutoStopped,
}

// event is the part of a lifecycle event the tests compare.
type event struct {
	Signal   string
	Index    int
	Total    int
	Selector string
	Failed   bool
	Interval time.Duration
}

type eventLog struct {
	mu     sync.Mutex
	events []event
}

func (l *eventLog) all() []event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]event(nil), l.events...)
}

// listen hooks every lifecycle signal and records the events of slider id.
func listen(t *testing.T, id string) *eventLog {
	t.Helper()
	log := &eventLog{}
	for _, sig := range allSignals {
		listener := capitan.Hook(sig, func(_ context.Context, e *capitan.Event) {
			if got, _ := slider.KeySlider.From(e); got != id {
				return
			}
			ev := event{Signal: e.Signal().Name()}
			ev.Index, _ = slider.KeyIndex.From(e)
			ev.Total, _ = slider.KeyTotal.From(e)
			ev.Selector, _ = slider.KeySelector.From(e)
			msg, _ := slider.KeyError.From(e)
			ev.Failed = msg != ""
			ev.Interval, _ = slider.KeyInterval.From(e)

			log.mu.Lock()
			log.events = append(log.events, ev)
			log.mu.Unlock()
		})
		t.Cleanup(listener.Close)
	}
	return log
}

func TestLifecycleSignals(t *testing.T) {
	withHole := []slider.Image{{Src: "a.jpg"}, {Src: "b.jpg"}, {}}

	tests := []struct {
		name   string
		images []slider.Image
		act    func(s *slider.Slider)
		want   []event
	}{
		{
			name:   "append",
			images: images(3),
			act:    func(s *slider.Slider) { _ = s.Append("#root") },
			want:   []event{{Signal: "slider.mounted", Total: 3, Selector: "#root"}},
		},
		{
			name:   "navigation",
			images: images(3),
			act: func(s *slider.Slider) {
				_ = s.Append("#root")
				_ = s.Next()
				_ = s.JumpTo(0)
				_ = s.Prev()
			},
			want: []event{
				{Signal: "slider.mounted", Total: 3, Selector: "#root"},
				{Signal: "slider.transitioned", Index: 1, Total: 3},
				{Signal: "slider.transitioned", Index: 0, Total: 3},
				{Signal: "slider.transitioned", Index: 2, Total: 3},
			},
		},
		{
			name:   "missing source restores index",
			images: withHole,
			act: func(s *slider.Slider) {
				_ = s.Append("#root")
				_ = s.JumpTo(1)
				_ = s.Next()
			},
			want: []event{
				{Signal: "slider.mounted", Total: 3, Selector: "#root"},
				{Signal: "slider.transitioned", Index: 1, Total: 3},
				{Signal: "slider.update.failed", Index: 1, Failed: true},
			},
		},
		{
			name:   "out of range jump emits nothing",
			images: images(2),
			act:    func(s *slider.Slider) { _ = s.JumpTo(5) },
		},
		{
			name:   "config update",
			images: images(2),
			act:    func(s *slider.Slider) { s.UpdateConfig(slider.ConfigUpdate{ShowDots: slider.Bool(false)}) },
			want:   []event{{Signal: "slider.config.updated"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := slidertest.NewTester(t)
			s, err := tester.NewSlider("350px", "450px", tt.images)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			log := listen(t, s.ID())

			tt.act(s)

			if diff := cmp.Diff(tt.want, log.all()); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAutoStoppedSignalFiresOnce(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))
	log := listen(t, s.ID())

	h := s.Auto(time.Second)
	for range 3 {
		h.Stop()
	}

	want := []event{
		{Signal: "slider.auto.started", Interval: time.Second},
		{Signal: "slider.auto.stopped", Interval: time.Second},
	}
	if diff := cmp.Diff(want, log.all()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}
