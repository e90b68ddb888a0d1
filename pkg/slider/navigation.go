package slider

import (
	"context"

	"github.com/go-drift/slider/pkg/errors"
	"github.com/zoobzio/capitan"
	"go.uber.org/zap"
)

// Next advances to the following image, wrapping from the last to the first.
func (s *Slider) Next() error {
	return s.transition("slider.Next", (s.current+1)%len(s.images))
}

// Prev moves to the preceding image, wrapping from the first to the last.
func (s *Slider) Prev() error {
	prev := s.current - 1
	if s.current == 0 {
		prev = len(s.images) - 1
	}
	return s.transition("slider.Prev", prev)
}

// JumpTo shows the image at index. An index outside the image set is a
// ValidationError and changes nothing.
func (s *Slider) JumpTo(index int) error {
	const op = "slider.JumpTo"
	if index < 0 || index >= len(s.images) {
		_, err := s.resolve(index)
		return s.fail(op, errors.KindValidation, err)
	}
	return s.transition(op, index)
}

// transition moves to next and renders it. The index and the DOM change
// together or not at all: a failed update restores the previous index.
func (s *Slider) transition(op string, next int) error {
	prev := s.current
	s.current = next

	if err := s.update(); err != nil {
		s.current = prev
		kind := errors.KindRender
		if _, ok := err.(*errors.ValidationError); ok {
			kind = errors.KindValidation
		}

		s.logger.Warn("update failed", zap.String("op", op), zap.Int("index", next), zap.Error(err))
		capitan.Emit(context.Background(), SliderUpdateFailed,
			KeySlider.Field(s.id),
			KeyIndex.Field(prev),
			KeyError.Field(err.Error()),
		)
		return s.fail(op, kind, err)
	}

	s.logger.Debug("transitioned", zap.String("op", op), zap.Int("from", prev), zap.Int("to", next))
	capitan.Emit(context.Background(), SliderTransitioned,
		KeySlider.Field(s.id),
		KeyIndex.Field(next),
		KeyTotal.Field(len(s.images)),
	)
	return nil
}
