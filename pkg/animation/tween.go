package animation

// Tween maps progress in [0, 1] to a value.
type Tween[T any] struct {
	// Begin and End are the values at progress 0 and 1.
	Begin, End T
	// Lerp interpolates; nil makes every progress evaluate to End.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the value at progress t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates at the controller's current progress.
func (tw *Tween[T]) Transform(c *Controller) T {
	return tw.Evaluate(c.Value())
}

// LerpFloat64 interpolates linearly between a and b.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// TweenKeyframes walks evenly spaced keyframe opacities, so with three
// frames the middle one sits at t = 0.5. frames must not be empty.
func TweenKeyframes(frames []Keyframe) *Tween[float64] {
	stops := make([]float64, len(frames))
	for i, f := range frames {
		stops[i] = f.Opacity
	}
	last := len(stops) - 1
	return &Tween[float64]{
		Begin: stops[0],
		End:   stops[last],
		Lerp: func(_, _, t float64) float64 {
			switch {
			case last == 0 || t <= 0:
				return stops[0]
			case t >= 1:
				return stops[last]
			}
			pos := t * float64(last)
			i := int(pos)
			return LerpFloat64(stops[i], stops[i+1], pos-float64(i))
		},
	}
}
