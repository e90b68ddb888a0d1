package slider

import (
	"fmt"
	"strconv"

	"github.com/go-drift/slider/pkg/animation"
	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/errors"
)

// parts are the elements of one mounted copy that an update touches.
type parts struct {
	image   dom.Element
	counter dom.Element
	dots    []dom.Element
}

// update projects the current index onto every mounted copy. All lookups
// and validation happen before the first mutation, so a failure leaves the
// previous rendering intact.
func (s *Slider) update() error {
	img, err := s.resolve(s.current)
	if err != nil {
		return err
	}

	cfg := s.config
	targets := make([]parts, 0, len(s.roots))
	for _, root := range s.roots {
		p, err := s.lookup(root, cfg)
		if err != nil {
			return err
		}
		targets = append(targets, p)
	}

	for _, p := range targets {
		s.applyImage(p.image, img)
		if cfg.Animation {
			s.fade(p.image, cfg)
		}
		if cfg.ShowCounter && p.counter != nil {
			p.counter.SetText(s.counterText())
		}
		if cfg.ShowDots {
			s.markActive(p.dots)
		}
	}
	return nil
}

// lookup finds the parts of one copy with queries scoped to its root.
// Counter and dots are only looked up when the config asks for them.
func (s *Slider) lookup(root dom.Element, cfg Config) (parts, error) {
	var p parts

	image, err := root.QuerySelector("#" + s.imageID())
	if err != nil {
		return p, err
	}
	if image == nil {
		return p, fmt.Errorf("image element #%s missing from mounted slider", s.imageID())
	}
	p.image = image

	if cfg.ShowCounter {
		if p.counter, err = root.QuerySelector("#" + s.counterID()); err != nil {
			return p, err
		}
	}
	if cfg.ShowDots {
		if p.dots, err = root.QuerySelectorAll("." + s.dotClass()); err != nil {
			return p, err
		}
	}
	return p, nil
}

// markActive clears the active marker from every dot, then sets it on the
// dot bound to the current index.
func (s *Slider) markActive(dots []dom.Element) {
	for _, dot := range dots {
		dot.RemoveClass(ClassActive)
	}
	want := strconv.Itoa(s.current)
	for _, dot := range dots {
		if count, _ := dot.Data("count"); count == want {
			dot.AddClass(ClassActive)
		}
	}
}

// fade asks the animator for the image-change effect. It is best effort:
// failures are reported and never undo the swap.
func (s *Slider) fade(el dom.Element, cfg Config) {
	defer errors.Recover("slider.fade")
	err := s.animator.Animate(el, animation.FadeFrames(), animation.Options{Duration: cfg.Duration()})
	if err != nil {
		errors.ReportError("slider.fade", errors.KindAnimation, s.id, err)
	}
}
