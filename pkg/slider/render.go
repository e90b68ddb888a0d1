package slider

import (
	"fmt"
	"strconv"

	"github.com/go-drift/slider/pkg/dom"
	"github.com/go-drift/slider/pkg/errors"
)

// Class names the stylesheet depends on.
const (
	ClassRoot         = "lin-slider-container"
	ClassSlider       = "lin-image-slider"
	ClassImage        = "lin-img"
	ClassImageStyle   = "lin-img-style-"
	ClassOverlay      = "lin-overlay"
	ClassCounter      = "lin-slider-counter"
	ClassInteractions = "lin-interactions"
	ClassPrev         = "lin-prev"
	ClassNext         = "lin-next"
	ClassTracker      = "lin-tracker"
	ClassDot          = "lin-dot"
	ClassActive       = "active"
)

const (
	prevGlyph = "❮"
	nextGlyph = "❯"
)

// Instance-scoped identifiers. Element ids are suffixed; dots carry a class
// because there are many of them.

func (s *Slider) imageID() string   { return s.id + "-limg" }
func (s *Slider) counterID() string { return s.id + "-lsc" }
func (s *Slider) trackerID() string { return s.id + "-tracker" }
func (s *Slider) dotClass() string  { return s.id + "-ld" }

// resolve returns the descriptor at index, or a ValidationError if it cannot
// be rendered.
func (s *Slider) resolve(index int) (Image, error) {
	if index < 0 || index >= len(s.images) {
		return Image{}, &errors.ValidationError{
			Field:  "index",
			Index:  index,
			Reason: fmt.Sprintf("must be in [0, %d)", len(s.images)),
		}
	}
	img := s.images[index]
	if err := img.validate(index); err != nil {
		return Image{}, err
	}
	return img, nil
}

// build creates a full subtree for the current state and configuration.
func (s *Slider) build(doc dom.Document, img Image) dom.Element {
	root := doc.CreateElement("div")
	root.SetClass(ClassRoot)
	root.SetData("slider", s.id)

	root.Append(s.buildSlider(doc, img))
	if s.config.ShowDots {
		root.Append(s.buildTracker(doc))
	}
	return root
}

func (s *Slider) buildSlider(doc dom.Document, img Image) dom.Element {
	frame := doc.CreateElement("div")
	frame.SetClass(ClassSlider)
	frame.SetStyle("height", s.height)
	frame.SetStyle("width", s.width)

	frame.Append(s.buildImage(doc, img), s.buildOverlay(doc))
	return frame
}

func (s *Slider) buildImage(doc dom.Document, img Image) dom.Element {
	el := doc.CreateElement("img")
	el.SetID(s.imageID())
	s.applyImage(el, img)
	return el
}

// applyImage writes the descriptor and the current fit onto an image element.
func (s *Slider) applyImage(el dom.Element, img Image) {
	el.SetClass(ClassImage, ClassImageStyle+string(s.config.ImageFit))
	el.SetAttr("src", img.Src)
	if img.Alt != "" {
		el.SetAttr("alt", img.Alt)
	} else {
		el.RemoveAttr("alt")
	}
}

// buildOverlay follows a strict chain: counter and controls, else controls
// alone, else the counter alone, else nothing.
func (s *Slider) buildOverlay(doc dom.Document) dom.Element {
	overlay := doc.CreateElement("div")
	overlay.SetClass(ClassOverlay)

	switch {
	case s.config.ShowCounter && s.config.ShowControls:
		overlay.Append(s.buildCounter(doc), s.buildInteractions(doc))
	case s.config.ShowControls:
		overlay.Append(s.buildInteractions(doc))
	case s.config.ShowCounter:
		overlay.Append(s.buildCounter(doc))
	}
	return overlay
}

func (s *Slider) buildCounter(doc dom.Document) dom.Element {
	counter := doc.CreateElement("div")
	counter.SetClass(ClassCounter)
	counter.SetID(s.counterID())
	counter.SetText(s.counterText())
	return counter
}

func (s *Slider) counterText() string {
	return fmt.Sprintf("%d / %d", s.current+1, len(s.images))
}

func (s *Slider) buildInteractions(doc dom.Document) dom.Element {
	interactions := doc.CreateElement("div")
	interactions.SetClass(ClassInteractions)

	prev := doc.CreateElement("div")
	prev.SetClass(ClassPrev)
	prev.SetText(prevGlyph)
	prev.AddEventListener("click", s.listener("slider.prev", s.Prev))

	next := doc.CreateElement("div")
	next.SetClass(ClassNext)
	next.SetText(nextGlyph)
	next.AddEventListener("click", s.listener("slider.next", s.Next))

	interactions.Append(prev, next)
	return interactions
}

func (s *Slider) buildTracker(doc dom.Document) dom.Element {
	tracker := doc.CreateElement("div")
	tracker.SetClass(ClassTracker)
	tracker.SetID(s.trackerID())
	tracker.SetStyle("width", s.width)

	for i := range s.images {
		tracker.Append(s.buildDot(doc, i))
	}
	return tracker
}

func (s *Slider) buildDot(doc dom.Document, index int) dom.Element {
	dot := doc.CreateElement("div")
	dot.SetClass(ClassDot, s.dotClass())
	dot.SetData("count", strconv.Itoa(index))
	if index == s.current {
		dot.AddClass(ClassActive)
	}
	dot.AddEventListener("click", s.listener("slider.dot", func() error {
		return s.JumpTo(index)
	}))
	return dot
}

// listener adapts a transition to a click handler. Errors and panics have
// no caller to return to, so they go to the global errors handler.
func (s *Slider) listener(op string, transition func() error) dom.Listener {
	return func(dom.Event) {
		defer errors.Recover(op)
		if err := transition(); err != nil {
			errors.ReportError(op, errors.KindRender, s.id, err)
		}
	}
}
