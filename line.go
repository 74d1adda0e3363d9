package curvereduce

// Line represents a line segment, such as the chord between the first and
// last points of a curve.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Eval returns the point at parameter t, with t ∈ [0, 1] spanning the line.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest finds the point on the line that is nearest to pt. It returns the
// squared distance to that point and its parameter t ∈ [0, 1].
//
// Projections falling before P0 or after P1 are clamped to that endpoint.
// A degenerate line is treated as the single point P0.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dSquared := d.Hypot2()
	if dSquared == 0 {
		return pt.DistanceSquared(l.P0), 0.0
	}
	t = pt.Sub(l.P0).Dot(d) / dSquared
	if t < 0.0 {
		return pt.DistanceSquared(l.P0), 0.0
	} else if t > 1.0 {
		return pt.DistanceSquared(l.P1), 1.0
	} else {
		return pt.DistanceSquared(l.Eval(t)), t
	}
}
