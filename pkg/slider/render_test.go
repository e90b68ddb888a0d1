package slider_test

import (
	"testing"

	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/slider"
	"github.com/go-drift/slider/pkg/slidertest"
	"github.com/google/go-cmp/cmp"
)

func classesOf(els []dom.Element) [][]string {
	out := make([][]string, len(els))
	for i, el := range els {
		out[i] = el.Classes()
	}
	return out
}

func TestInitialRender(t *testing.T) {
	tester := slidertest.NewTester(t)
	s := mount(t, tester, images(3))
	id := s.ID()

	root := tester.Find(slidertest.Within(slidertest.BySelector("#root"), "."+slider.ClassRoot))
	if root.Count() != 1 {
		t.Fatalf("found %d slider roots in #root, want 1", root.Count())
	}
	if got, _ := root.First().Data("slider"); got != id {
		t.Errorf("data-slider = %q, want %q", got, id)
	}

	frame := tester.Find(slidertest.BySelector("." + slider.ClassSlider)).First()
	if frame.Style("height") != "350px" || frame.Style("width") != "450px" {
		t.Errorf("frame size = %q x %q, want 350px x 450px", frame.Style("height"), frame.Style("width"))
	}

	img := tester.Find(slidertest.BySelector("#" + id + "-limg")).First()
	if img.Tag() != "img" {
		t.Errorf("image tag = %q", img.Tag())
	}
	if diff := cmp.Diff([]string{slider.ClassImage, "lin-img-style-cover"}, img.Classes()); diff != "" {
		t.Errorf("image classes (-want +got):\n%s", diff)
	}
	if src, _ := img.Attr("src"); src != "https://img.example/0.jpg" {
		t.Errorf("src = %q", src)
	}
	if alt, _ := img.Attr("alt"); alt != "image 0" {
		t.Errorf("alt = %q", alt)
	}

	overlay := tester.Find(slidertest.BySelector("." + slider.ClassOverlay)).First()
	want := [][]string{{slider.ClassCounter}, {slider.ClassInteractions}}
	if diff := cmp.Diff(want, classesOf(overlay.Children())); diff != "" {
		t.Errorf("overlay children (-want +got):\n%s", diff)
	}

	counter := tester.Find(slidertest.BySelector("#" + id + "-lsc"))
	if counter.Text() != "1 / 3" {
		t.Errorf("counter = %q, want \"1 / 3\"", counter.Text())
	}
	if !tester.Find(slidertest.ByText("."+slider.ClassPrev, "❮")).Exists() {
		t.Error("missing previous control")
	}
	if !tester.Find(slidertest.ByText("."+slider.ClassNext, "❯")).Exists() {
		t.Error("missing next control")
	}

	tracker := tester.Find(slidertest.BySelector("#" + id + "-tracker")).First()
	if tracker.Style("width") != "450px" {
		t.Errorf("tracker width = %q", tracker.Style("width"))
	}
	dots := tester.Find(slidertest.BySelector("." + id + "-ld"))
	if dots.Count() != 3 {
		t.Fatalf("found %d dots, want 3", dots.Count())
	}
	for i, dot := range dots.All() {
		if !dot.HasClass(slider.ClassDot) {
			t.Errorf("dot %d classes = %v", i, dot.Classes())
		}
		if got, _ := dot.Data("count"); got != []string{"0", "1", "2"}[i] {
			t.Errorf("dot %d data-count = %q", i, got)
		}
	}
	if got := activeDots(tester); len(got) != 1 || got[0] != 0 {
		t.Errorf("active dots = %v, want [0]", got)
	}
}

func TestOverlayChain(t *testing.T) {
	tests := []struct {
		name     string
		counter  bool
		controls bool
		want     [][]string
	}{
		{"both", true, true, [][]string{{slider.ClassCounter}, {slider.ClassInteractions}}},
		{"controls only", false, true, [][]string{{slider.ClassInteractions}}},
		{"counter only", true, false, [][]string{{slider.ClassCounter}}},
		{"neither", false, false, [][]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := slidertest.NewTester(t)
			s, _ := tester.NewSlider("1px", "1px", images(2))
			s.UpdateConfig(slider.ConfigUpdate{
				ShowCounter:  slider.Bool(tt.counter),
				ShowControls: slider.Bool(tt.controls),
			})
			if err := s.Append("#root"); err != nil {
				t.Fatal(err)
			}

			overlay := tester.Find(slidertest.BySelector("." + slider.ClassOverlay))
			if overlay.Count() != 1 {
				t.Fatalf("found %d overlays, want 1", overlay.Count())
			}
			if diff := cmp.Diff(tt.want, classesOf(overlay.First().Children())); diff != "" {
				t.Errorf("overlay children (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNoDots(t *testing.T) {
	tester := slidertest.NewTester(t)
	s, _ := tester.NewSlider("1px", "1px", images(3))
	s.UpdateConfig(slider.ConfigUpdate{ShowDots: slider.Bool(false)})
	if err := s.Append("#root"); err != nil {
		t.Fatal(err)
	}

	if tester.Find(slidertest.BySelector("." + slider.ClassTracker)).Exists() {
		t.Error("tracker should not be built when dots are disabled")
	}
	if tester.Find(slidertest.BySelector("." + slider.ClassDot)).Exists() {
		t.Error("no dots should be built when dots are disabled")
	}
	root := tester.Find(slidertest.BySelector("." + slider.ClassRoot)).First()
	if n := len(root.Children()); n != 1 {
		t.Errorf("root has %d children, want only the slider frame", n)
	}
}

func TestImageFitAtBuild(t *testing.T) {
	for _, fit := range []slider.ImageFit{slider.FitCover, slider.FitNone, slider.FitFill, slider.FitContain, "scale-down"} {
		t.Run(string(fit), func(t *testing.T) {
			tester := slidertest.NewTester(t)
			s, _ := tester.NewSlider("1px", "1px", images(1))
			s.UpdateConfig(slider.ConfigUpdate{ImageFit: slider.Fit(fit)})
			if err := s.Append("#root"); err != nil {
				t.Fatal(err)
			}
			img := tester.Find(slidertest.BySelector("img")).First()
			if !img.HasClass("lin-img-style-" + string(fit)) {
				t.Errorf("image classes = %v, want fit class for %q", img.Classes(), fit)
			}
		})
	}
}

func TestMissingAltOmitted(t *testing.T) {
	tester := slidertest.NewTester(t)
	mount(t, tester, []slider.Image{{Src: "a.jpg"}, {Src: "b.jpg", Alt: "b"}})

	img := tester.Find(slidertest.BySelector("img")).First()
	if _, ok := img.Attr("alt"); ok {
		t.Error("alt attribute should be absent when the descriptor has none")
	}
}

func TestRenderedHTML(t *testing.T) {
	tester := slidertest.NewTester(t)
	s, _ := tester.NewSlider("10px", "20px", []slider.Image{{Src: "a.jpg", Alt: "A"}},
		slider.WithIDGenerator(func() string { return "dfixed" }))
	if err := s.Append("#root"); err != nil {
		t.Fatal(err)
	}

	root := tester.Find(slidertest.BySelector("#root")).First()
	want := `<div id="root">` +
		`<div class="lin-slider-container" data-slider="dfixed">` +
		`<div class="lin-image-slider" style="height: 10px; width: 20px;">` +
		`<img id="dfixed-limg" class="lin-img lin-img-style-cover" src="a.jpg" alt="A"/>` +
		`<div class="lin-overlay">` +
		`<div class="lin-slider-counter" id="dfixed-lsc">1 / 1</div>` +
		`<div class="lin-interactions"><div class="lin-prev">❮</div><div class="lin-next">❯</div></div>` +
		`</div></div>` +
		`<div class="lin-tracker" id="dfixed-tracker" style="width: 20px;">` +
		`<div class="lin-dot dfixed-ld active" data-count="0"></div>` +
		`</div></div></div>`
	if diff := cmp.Diff(want, dom.OuterHTML(root)); diff != "" {
		t.Errorf("rendered HTML (-want +got):\n%s", diff)
	}
}
