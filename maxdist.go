package curvereduce

// DistanceIndex is the deviation of a curve's farthest interior point from
// the curve's chord, along with that point's index.
type DistanceIndex struct {
	Distance float64
	Index    int
}

// MaxDistance finds the interior point of points that lies farthest from the
// chord between the first and last points, as measured by dist. A nil dist
// uses [DefaultDistance].
//
// Curves with fewer than three points have no interior and yield the zero
// DistanceIndex. Ties are resolved in favor of the earliest point.
func MaxDistance(points []Point, dist DistanceFunc) DistanceIndex {
	return maxDistance(points, distanceOrDefault(dist))
}

func maxDistance(points []Point, dist DistanceFunc) DistanceIndex {
	if len(points) < 3 {
		return DistanceIndex{}
	}
	first, last := points[0], points[len(points)-1]
	best := DistanceIndex{Distance: dist(points[1], first, last), Index: 1}
	for i := 2; i < len(points)-1; i++ {
		if d := dist(points[i], first, last); d > best.Distance {
			best = DistanceIndex{Distance: d, Index: i}
		}
	}
	return best
}
