package curvereduce

import "math"

// DistanceFunc measures how far the point p lies from the reference line
// through a and b. Implementations must be pure and return non-negative
// values.
type DistanceFunc func(p, a, b Point) float64

// DefaultDistance is the metric used when a nil DistanceFunc is passed.
var DefaultDistance DistanceFunc = ShortestDistance

// PerpendicularDistance returns the distance between p and the infinite line
// through a and b.
//
// If a and b are the same point, the line is treated as vertical and the
// horizontal distance between p and a is returned.
func PerpendicularDistance(p, a, b Point) float64 {
	switch {
	case a.X == b.X:
		// vertical
		return math.Abs(p.X - a.X)
	case a.Y == b.Y:
		// horizontal
		return math.Abs(p.Y - a.Y)
	default:
		slope := (b.Y - a.Y) / (b.X - a.X)
		intercept := a.Y - slope*a.X
		return math.Abs(slope*p.X-p.Y+intercept) / math.Sqrt(slope*slope+1)
	}
}

// PointDistanceSquared returns the squared euclidean distance between i and j.
func PointDistanceSquared(i, j Point) float64 {
	return i.DistanceSquared(j)
}

// ShortestDistance returns the distance between p and the line segment from a
// to b. If a and b are the same point, this is the distance between p and a.
func ShortestDistance(p, a, b Point) float64 {
	distSq, _ := Line{a, b}.Nearest(p)
	return math.Sqrt(distSq)
}

func distanceOrDefault(dist DistanceFunc) DistanceFunc {
	if dist == nil {
		return DefaultDistance
	}
	return dist
}
