package animation

// LinearCurve is the identity easing. It is the default, as it is for
// element.animate.
func LinearCurve(t float64) float64 { return t }

// CubicBezier returns the easing defined by CSS cubic-bezier(x1, y1, x2, y2).
// x1 and x2 must lie in [0, 1] so that x is monotonic in the curve parameter.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	// bezier evaluates one coordinate of a curve from (0,0) to (1,1).
	bezier := func(p1, p2, s float64) float64 {
		r := 1 - s
		return 3*r*r*s*p1 + 3*r*s*s*p2 + s*s*s
	}
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		// Solve x(s) = t by bisection; 30 halvings reach float32 precision.
		lo, hi := 0.0, 1.0
		for range 30 {
			mid := (lo + hi) / 2
			if bezier(x1, x2, mid) < t {
				lo = mid
			} else {
				hi = mid
			}
		}
		return bezier(y1, y2, (lo+hi)/2)
	}
}
