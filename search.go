package curvereduce

import (
	"fmt"
	"math/bits"
	"slices"

	"go.uber.org/zap"
)

const (
	// defaultResolution matches the precision of a float64's significand.
	defaultResolution = 52
	maxResolution     = bits.UintSize - 2
)

// ToleranceSearchOptions configures [SimplifyCurveToOpt].
type ToleranceSearchOptions struct {
	// Distance is the metric used for simplification. If nil,
	// [DefaultDistance] is used.
	Distance DistanceFunc
	// Resolution is the number of bits used to discretize tolerances. The
	// range from zero to the curve's maximum deviation is divided into
	// 2^Resolution steps, and the search probes at most Resolution+1 of them.
	// Zero selects the default of 52. Larger values are capped so that the
	// number of steps fits in an int.
	Resolution uint
	// Logger receives a debug entry for every probed tolerance. If nil,
	// nothing is logged.
	Logger *zap.Logger
}

// DefaultToleranceSearchOptions are the options used by [SimplifyCurveTo].
var DefaultToleranceSearchOptions = ToleranceSearchOptions{Resolution: defaultResolution}

// BinarySearch searches the inclusive range [minimum, maximum] for an integer
// n with test(n) == 0. test reports how far n is from the target: a negative
// value means the target lies below n, a positive one that it lies above.
//
// If no exact match is found, the integer where the search converged is
// returned as the closest approximation. If test keeps reporting a target
// below the range, this can be minimum-1. When minimum equals maximum, that
// value is returned without calling test at all. If minimum is greater than
// maximum, an error wrapping [ErrInvalidArgument] is returned.
//
// The width of the range, maximum-minimum, must fit in an int.
func BinarySearch(test func(int) float64, minimum, maximum int) (int, error) {
	if minimum > maximum {
		return 0, fmt.Errorf("%w: minimum %d is greater than maximum %d", ErrInvalidArgument, minimum, maximum)
	}

	l, r := minimum, maximum
	m := midpoint(l, r)
	for l < r {
		t := test(m)
		if t == 0 {
			break
		}
		if t < 0 {
			r = m - 1
		} else {
			l = m + 1
		}
		m = midpoint(l, r)
	}
	return m, nil
}

// midpoint returns ⌊(l+r)/2⌋.
func midpoint(l, r int) int {
	return l + (r-l)>>1
}

// SimplifyCurveTo simplifies a curve to approximately count points using the
// Ramer–Douglas–Peucker algorithm. It is equivalent to [SimplifyCurveToOpt]
// with [DefaultToleranceSearchOptions] and the provided metric.
func SimplifyCurveTo(points []Point, count int, dist DistanceFunc) []Point {
	opts := DefaultToleranceSearchOptions
	opts.Distance = dist
	out, _ := SimplifyCurveToOpt(points, count, opts)
	return out
}

// SimplifyCurveToOpt simplifies a curve to approximately count points. It
// searches for the tolerance whose [SimplifyCurve] result has a length closest
// to count and returns that result along with the tolerance.
//
// A count below three always yields the curve's first and last points, and a
// count of at least len(points) yields a copy of the curve. In both cases no
// search takes place and the returned tolerance is zero.
//
// The search assumes that raising the tolerance never increases the number of
// points. That holds for most curves but not all of them, so the result may
// miss count even when a tolerance producing exactly count points exists.
func SimplifyCurveToOpt(points []Point, count int, opts ToleranceSearchOptions) ([]Point, float64) {
	switch {
	case len(points) == 0:
		return []Point{}, 0
	case count < 3:
		return []Point{points[0], points[len(points)-1]}, 0
	case count >= len(points):
		return slices.Clone(points), 0
	}

	dist := distanceOrDefault(opts.Distance)
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	res := opts.Resolution
	if res == 0 {
		res = defaultResolution
	}
	res = min(res, maxResolution)

	// The zero multiplier keeps every point and so always probes above
	// count; the search can't leave [0, steps].
	steps := 1 << res
	step := maxDistance(points, dist).Distance / float64(steps)
	n, err := BinarySearch(func(n int) float64 {
		epsilon := step * float64(n)
		_, found := simplify(points, epsilon, dist)
		log.Debug("probed tolerance",
			zap.Int("multiplier", n),
			zap.Float64("epsilon", epsilon),
			zap.Int("points", found),
			zap.Int("target", count))
		return float64(found - count)
	}, 0, steps)
	if err != nil {
		panic("unreachable")
	}

	epsilon := step * float64(n)
	out := simplifyCurve(points, epsilon, dist)
	log.Debug("selected tolerance",
		zap.Float64("epsilon", epsilon),
		zap.Int("points", len(out)),
		zap.Int("target", count))
	return out, epsilon
}
