package slider_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-drift/slider/pkg/slider"
	"github.com/go-drift/slider/pkg/slidertest"
)

func TestAutoAdvances(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))

	h := s.Auto(2 * time.Second)
	defer h.Stop()

	if err := tester.Tick(time.Second, 0); err != nil {
		t.Fatal(err)
	}
	if s.Current() != 0 {
		t.Fatalf("advanced before the interval elapsed: Current() = %d", s.Current())
	}

	for i, want := range []int{1, 2, 0} {
		d := 2 * time.Second
		if i == 0 {
			d = time.Second
		}
		if err := tester.Tick(d, 1); err != nil {
			t.Fatal(err)
		}
		if s.Current() != want {
			t.Errorf("tick %d: Current() = %d, want %d", i+1, s.Current(), want)
		}
	}
	if got := counterText(tester); got != "1 / 3" {
		t.Errorf("counter = %q, want \"1 / 3\"", got)
	}
}

func TestAutoDefaultInterval(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(2))

	h := s.Auto(0)
	defer h.Stop()

	if err := tester.Tick(slider.DefaultAutoInterval, 1); err != nil {
		t.Fatal(err)
	}
	if s.Current() != 1 {
		t.Errorf("Current() = %d, want 1", s.Current())
	}
}

func TestAutoStop(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))

	h := s.Auto(time.Second)
	if err := tester.Tick(time.Second, 1); err != nil {
		t.Fatal(err)
	}
	if s.Current() != 1 {
		t.Fatalf("Current() = %d, want 1", s.Current())
	}

	h.Stop()
	h.Stop()

	tester.Clock().Advance(5 * time.Second)
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if s.Current() != 1 {
		t.Errorf("advanced after Stop: Current() = %d", s.Current())
	}
}

func TestAutoWithManualNavigation(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(4))

	h := s.Auto(time.Second)
	defer h.Stop()

	if err := s.JumpTo(2); err != nil {
		t.Fatal(err)
	}
	if err := tester.Tick(time.Second, 1); err != nil {
		t.Fatal(err)
	}
	if s.Current() != 3 {
		t.Errorf("Current() = %d, want auto-advance to continue from the manual index", s.Current())
	}
}

func TestAutoFailureIsReported(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, []slider.Image{{Src: "a.jpg"}, {}})

	h := s.Auto(time.Second)
	defer h.Stop()

	if err := tester.Tick(time.Second, 1); err != nil {
		t.Fatal(err)
	}
	if s.Current() != 0 {
		t.Errorf("Current() = %d, want 0", s.Current())
	}
	if n := len(tester.Reported()); n != 1 {
		t.Errorf("reported %d errors, want 1", n)
	}
}

func TestAutoWithoutScheduler(t *testing.T) {
	tester := slidertest.NewTester(t)
	s, err := slider.New("350px", "450px", images(3), slider.WithDocument(tester.Document()))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Append("#root"); err != nil {
		t.Fatal(err)
	}
	log := listen(t, s.ID())

	h := s.Auto(time.Second)
	h.Stop()

	reported := tester.Reported()
	if len(reported) != 1 || !stderrors.Is(reported[0], slider.ErrNoScheduler) {
		t.Fatalf("reported = %v, want one ErrNoScheduler", reported)
	}
	if got := log.all(); len(got) != 0 {
		t.Errorf("no auto-advance signals expected, got %v", got)
	}
	if tester.Loop().Pending() != 0 {
		t.Errorf("nothing should be queued, %d pending", tester.Loop().Pending())
	}
}
