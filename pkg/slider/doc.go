// Package slider renders a rotating image carousel into a host document.
//
// A page author constructs a Slider with its size and images, appends it to a
// container, and optionally adjusts its configuration:
//
//	s, err := slider.New("350px", "350px", []slider.Image{
//	    {Src: "/img/one.jpg", Alt: "first"},
//	    {Src: "/img/two.jpg"},
//	})
//	if err != nil {
//	    return err
//	}
//	s.UpdateConfig(slider.ConfigUpdate{ShowControls: slider.Bool(false)})
//	if err := s.Append("#root"); err != nil {
//	    return err
//	}
//	handle := s.Auto(2 * time.Second)
//	defer handle.Stop()
//
// # State and rendering
//
// The current index is the only source of truth for what is displayed. Every
// transition (Next, Prev, JumpTo, a click on a control or dot, an auto tick)
// is immediately followed by an incremental update that touches only the
// image, the counter text and the active dot of every mounted copy. The
// descriptor about to be shown is validated before any element changes, and
// a failed update restores the previous index.
//
// # Configuration
//
// UpdateConfig merges a partial configuration and does not touch the DOM.
// ShowCounter, ShowDots, ImageFit, Animation and AnimationDuration are
// honored by the next incremental update; ShowControls only by the next
// Append, because the incremental path never rebuilds the controls.
//
// # Threading
//
// A Slider is not safe for concurrent use. All calls, including the ones
// made by click listeners and auto-advance ticks, are expected on the host's
// UI goroutine; see package host.
package slider
