package slider_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-drift/slider/pkg/animation"
	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/errors"
	"github.com/go-drift/slider/pkg/slider"
	"github.com/go-drift/slider/pkg/slidertest"
)

func TestNextUpdatesAllParts(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))

	for range 2 {
		if err := s.Next(); err != nil {
			t.Fatal(err)
		}
	}

	if got := counterText(tester); got != "3 / 3" {
		t.Errorf("counter = %q, want \"3 / 3\"", got)
	}
	if got := activeDots(tester); len(got) != 1 || got[0] != 2 {
		t.Errorf("active dots = %v, want [2]", got)
	}
	if got := imageSrc(t, tester); got != "https://img.example/2.jpg" {
		t.Errorf("src = %q", got)
	}
	img := tester.Find(slidertest.BySelector("img")).First()
	if alt, _ := img.Attr("alt"); alt != "image 2" {
		t.Errorf("alt = %q", alt)
	}

	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if got := counterText(tester); got != "1 / 3" {
		t.Errorf("counter after wrap = %q, want \"1 / 3\"", got)
	}
	if got := imageSrc(t, tester); got != "https://img.example/0.jpg" {
		t.Errorf("src after wrap = %q", got)
	}
}

func TestExactlyOneActiveDot(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(5))

	steps := []func() error{s.Next, s.Next, s.Prev, func() error { return s.JumpTo(4) }, s.Next, s.Prev}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatal(err)
		}
		got := activeDots(tester)
		if len(got) != 1 || got[0] != s.Current() {
			t.Errorf("step %d: active dots = %v, want [%d]", i, got, s.Current())
		}
	}
}

func TestHiddenCounterIsNotUpdated(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))

	s.UpdateConfig(slider.ConfigUpdate{ShowCounter: slider.Bool(false)})
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}

	if got := counterText(tester); got != "1 / 3" {
		t.Errorf("counter = %q, want the stale \"1 / 3\"", got)
	}
	if got := activeDots(tester); len(got) != 1 || got[0] != 1 {
		t.Errorf("active dots = %v, want [1]", got)
	}
}

func TestHiddenDotsAreNotUpdated(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))

	s.UpdateConfig(slider.ConfigUpdate{ShowDots: slider.Bool(false)})
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if got := activeDots(tester); len(got) != 1 || got[0] != 0 {
		t.Errorf("active dots = %v, want the stale [0]", got)
	}
	if got := counterText(tester); got != "2 / 3" {
		t.Errorf("counter = %q", got)
	}
}

func TestCounterEnabledAfterBuildWithoutCounter(t *testing.T) {
	tester := slidertest.NewTester(t)
	s, _ := tester.NewSlider("1px", "1px", images(3))
	s.UpdateConfig(slider.ConfigUpdate{ShowCounter: slider.Bool(false)})
	if err := s.Append("#root"); err != nil {
		t.Fatal(err)
	}

	s.UpdateConfig(slider.ConfigUpdate{ShowCounter: slider.Bool(true)})
	if err := s.Next(); err != nil {
		t.Fatalf("Next with a missing counter element: %v", err)
	}
	if tester.Find(slidertest.BySelector("." + slider.ClassCounter)).Exists() {
		t.Error("update must not create a counter")
	}
	if got := imageSrc(t, tester); got != "https://img.example/1.jpg" {
		t.Errorf("src = %q", got)
	}
}

func TestStructuralKeysApplyOnNextAppend(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))

	s.UpdateConfig(slider.ConfigUpdate{ShowControls: slider.Bool(false)})
	inRoot := slidertest.Within(slidertest.BySelector("#root"), "."+slider.ClassInteractions)
	if !tester.Find(inRoot).Exists() {
		t.Fatal("existing controls must stay after disabling them")
	}

	if err := s.Append("#other"); err != nil {
		t.Fatal(err)
	}
	inOther := slidertest.Within(slidertest.BySelector("#other"), "."+slider.ClassInteractions)
	if tester.Find(inOther).Exists() {
		t.Error("a new copy must be built without controls")
	}
	if !tester.Find(inRoot).Exists() {
		t.Error("appending must not rebuild the first copy")
	}
}

func TestImageFitAppliesOnNavigation(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(2))

	s.UpdateConfig(slider.ConfigUpdate{ImageFit: slider.Fit(slider.FitContain)})
	img := tester.Find(slidertest.BySelector("img")).First()
	if !img.HasClass("lin-img-style-cover") {
		t.Fatalf("fit must not change before navigation, classes = %v", img.Classes())
	}

	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if img.HasClass("lin-img-style-cover") || !img.HasClass("lin-img-style-contain") {
		t.Errorf("classes after navigation = %v, want contain only", img.Classes())
	}
}

func TestMissingSourceIsAtomic(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, []slider.Image{{Src: "a.jpg"}, {Alt: "broken"}, {Src: "c.jpg"}})
	before := tester.HTML()

	err := s.Next()
	var ve *errors.ValidationError
	if !stderrors.As(err, &ve) {
		t.Fatalf("Next err = %v, want ValidationError", err)
	}
	if ve.Field != "src" || ve.Index != 1 {
		t.Errorf("ValidationError = %+v", ve)
	}
	var se *errors.SliderError
	if !stderrors.As(err, &se) || se.Kind != errors.KindValidation || se.Op != "slider.Next" {
		t.Errorf("SliderError = %+v", se)
	}

	if s.Current() != 0 {
		t.Errorf("Current() = %d, want the index restored to 0", s.Current())
	}
	if after := tester.HTML(); after != before {
		t.Errorf("document changed by a failed update:\nbefore: %s\nafter:  %s", before, after)
	}

	if err := s.Prev(); err != nil {
		t.Fatalf("Prev from the restored index: %v", err)
	}
	if got := counterText(tester); got != "3 / 3" {
		t.Errorf("counter = %q, want \"3 / 3\"", got)
	}
}

func TestInstancesAreIsolated(t *testing.T) {
	tester := slidertest.NewTester(t)
	a := mount(t, tester, images(3))
	b, _ := tester.NewSlider("1px", "1px", images(4))
	if err := b.Append("#other"); err != nil {
		t.Fatal(err)
	}

	if err := a.Next(); err != nil {
		t.Fatal(err)
	}

	counterIn := func(sel string) string {
		return tester.Find(slidertest.Within(slidertest.BySelector(sel), "."+slider.ClassCounter)).Text()
	}
	if got := counterIn("#root"); got != "2 / 3" {
		t.Errorf("first slider counter = %q, want \"2 / 3\"", got)
	}
	if got := counterIn("#other"); got != "1 / 4" {
		t.Errorf("second slider counter = %q, want \"1 / 4\"", got)
	}
	otherActive := tester.Find(slidertest.Within(slidertest.BySelector("#other"), ".lin-dot.active")).All()
	if len(otherActive) != 1 {
		t.Fatalf("second slider has %d active dots", len(otherActive))
	}
	if got, _ := otherActive[0].Data("count"); got != "0" {
		t.Errorf("second slider active dot = %s, want 0", got)
	}
	otherImg := tester.Find(slidertest.Within(slidertest.BySelector("#other"), "img")).First()
	if src, _ := otherImg.Attr("src"); src != "https://img.example/0.jpg" {
		t.Errorf("second slider src = %q", src)
	}
}

func TestAllCopiesUpdate(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))
	if err := s.Append("#other"); err != nil {
		t.Fatal(err)
	}
	if s.Mounted() != 2 {
		t.Fatalf("Mounted() = %d, want 2", s.Mounted())
	}

	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	counters := tester.Find(slidertest.BySelector("." + slider.ClassCounter)).All()
	if len(counters) != 2 {
		t.Fatalf("found %d counters, want 2", len(counters))
	}
	for i, c := range counters {
		if c.Text() != "2 / 3" {
			t.Errorf("copy %d counter = %q, want \"2 / 3\"", i, c.Text())
		}
	}
	if got := activeDots(tester); len(got) != 2 || got[0] != 1 || got[1] != 1 {
		t.Errorf("active dots = %v, want [1 1]", got)
	}
}

func TestFadeRunsOnTransition(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(2))
	img := tester.Find(slidertest.BySelector("img")).First()

	if img.Style("opacity") != "" {
		t.Fatalf("initial render must not fade, opacity = %q", img.Style("opacity"))
	}
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if got := img.Style("opacity"); got != "0.4" {
		t.Errorf("opacity at start of fade = %q, want 0.4", got)
	}
	if !tester.Animator().Running(img) {
		t.Error("fade should be running")
	}

	tester.Clock().Advance(250 * time.Millisecond)
	tester.Pump()
	if got := img.Style("opacity"); got != "0.7" {
		t.Errorf("opacity halfway = %q, want 0.7", got)
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if img.Style("opacity") != "" || tester.Animator().Running(img) {
		t.Errorf("fade should have finished, opacity = %q", img.Style("opacity"))
	}
}

func TestDefaultAnimatorFollowsScheduler(t *testing.T) {
	tests := []struct {
		name     string
		loop     bool
		starting string
	}{
		{name: "without scheduler", loop: false, starting: ""},
		{name: "with host loop", loop: true, starting: "0.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := slidertest.NewTester(t)
			opts := []slider.Option{slider.WithDocument(tester.Document())}
			if tt.loop {
				opts = append(opts, slider.WithScheduler(tester.Loop()))
			}
			s, err := slider.New("350px", "450px", images(2), opts...)
			if err != nil {
				t.Fatal(err)
			}
			if err := s.Append("#root"); err != nil {
				t.Fatal(err)
			}
			img := tester.Find(slidertest.BySelector("img")).First()

			if err := s.Next(); err != nil {
				t.Fatal(err)
			}
			if got := img.Style("opacity"); got != tt.starting {
				t.Errorf("opacity after Next = %q, want %q", got, tt.starting)
			}

			if err := tester.PumpAndSettle(time.Second); err != nil {
				t.Fatal(err)
			}
			if got := img.Style("opacity"); got != "" {
				t.Errorf("opacity after settling = %q, want none", got)
			}
		})
	}
}

func TestFadeUsesConfiguredDuration(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(2))
	s.UpdateConfig(slider.ConfigUpdate{AnimationDuration: slider.Int(100)})
	img := tester.Find(slidertest.BySelector("img")).First()

	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	tester.Clock().Advance(100 * time.Millisecond)
	tester.Pump()
	if tester.Animator().Running(img) {
		t.Error("a 100ms fade should be done after 100ms")
	}
}

func TestNoFadeWhenAnimationDisabled(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(2))
	s.UpdateConfig(slider.ConfigUpdate{Animation: slider.Bool(false)})
	img := tester.Find(slidertest.BySelector("img")).First()

	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if img.Style("opacity") != "" || tester.Animator().Running(img) {
		t.Error("no effect should run with animation disabled")
	}
	if got := imageSrc(t, tester); got != "https://img.example/1.jpg" {
		t.Errorf("src = %q", got)
	}
}

type failingAnimator struct{ calls int }

func (a *failingAnimator) Animate(dom.Element, []animation.Keyframe, animation.Options) error {
	a.calls++
	return stderrors.New("effects unavailable")
}

func TestAnimatorFailureDoesNotBlockSwap(t *testing.T) {
	tester := slidertest.NewTester(t)
	anim := &failingAnimator{}
	s := mount(t, tester, images(2), slider.WithAnimator(anim))

	if err := s.Next(); err != nil {
		t.Fatalf("Next must succeed when the effect fails: %v", err)
	}
	if anim.calls != 1 {
		t.Errorf("Animate called %d times, want 1", anim.calls)
	}
	if got := imageSrc(t, tester); got != "https://img.example/1.jpg" {
		t.Errorf("src = %q", got)
	}

	reported := tester.Reported()
	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	var se *errors.SliderError
	if !stderrors.As(reported[0], &se) || se.Kind != errors.KindAnimation || se.Slider != s.ID() {
		t.Errorf("reported %v, want an animation error for this slider", reported[0])
	}
}

type panickingAnimator struct{}

func (panickingAnimator) Animate(dom.Element, []animation.Keyframe, animation.Options) error {
	panic("boom")
}

func TestAnimatorPanicIsRecovered(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(2), slider.WithAnimator(panickingAnimator{}))

	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	if s.Current() != 1 {
		t.Errorf("Current() = %d, want 1", s.Current())
	}
	panics := tester.Panics()
	if len(panics) != 1 || panics[0].Op != "slider.fade" {
		t.Errorf("panics = %v, want one from slider.fade", panics)
	}
}
