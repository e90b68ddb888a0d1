// Package slidertest provides a harness for testing sliders without a browser.
//
// # Quick Start
//
//	func TestMySlider(t *testing.T) {
//	    tester := slidertest.NewTester(t)
//	    s, err := tester.NewSlider("350px", "350px", images)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    if err := s.Append("#root"); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    tester.Tap(slidertest.BySelector(".lin-next"))
//	    if got := tester.Find(slidertest.BySelector(".lin-slider-counter")).Text(); got != "2 / 3" {
//	        t.Errorf("counter = %q", got)
//	    }
//	}
//
// # Time
//
// The tester installs a clockz.FakeClock as the animation clock and as the
// clock of its host loop. Advance it and pump frames to drive fades and
// auto-advance deterministically:
//
//	tester.Clock().Advance(time.Second)
//	tester.Pump()
//
// # Reported errors
//
// Errors that click handlers and auto ticks report to the global errors
// handler are captured and available from Reported.
package slidertest
