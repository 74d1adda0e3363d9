package curvereduce

import (
	"fmt"
	"math"
)

// SimplifyCurve simplifies a curve using the Ramer–Douglas–Peucker algorithm.
// Interior points deviating from the simplified curve by no more than epsilon,
// as measured by dist, are removed. A nil dist uses [DefaultDistance].
//
// The result is a new slice holding a subsequence of points that always
// includes the first and last point. An epsilon of zero, or a curve of fewer
// than three points, returns a copy of the input. A negative or NaN epsilon
// returns an error wrapping [ErrInvalidArgument].
//
// Simplification is idempotent: simplifying the result again with the same
// epsilon and metric returns the same curve.
func SimplifyCurve(points []Point, epsilon float64, dist DistanceFunc) ([]Point, error) {
	if err := validateEpsilon(epsilon); err != nil {
		return nil, err
	}
	return simplifyCurve(points, epsilon, distanceOrDefault(dist)), nil
}

// SimplifyIndices is like [SimplifyCurve] but returns the indices of the
// points that were kept, in ascending order. This is useful for carrying
// per-point data, such as timestamps, over to the simplified curve.
func SimplifyIndices(points []Point, epsilon float64, dist DistanceFunc) ([]int, error) {
	if err := validateEpsilon(epsilon); err != nil {
		return nil, err
	}
	keep, n := simplify(points, epsilon, distanceOrDefault(dist))
	out := make([]int, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, i)
		}
	}
	return out, nil
}

func validateEpsilon(epsilon float64) error {
	if epsilon < 0 || math.IsNaN(epsilon) {
		return fmt.Errorf("%w: epsilon must be a non-negative number, got %g", ErrInvalidArgument, epsilon)
	}
	return nil
}

func simplifyCurve(points []Point, epsilon float64, dist DistanceFunc) []Point {
	keep, n := simplify(points, epsilon, dist)
	out := make([]Point, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// simplify marks the points to keep and returns the mask along with the
// number of marked points.
//
// Rather than recursing on both halves of a split, pending index ranges are
// kept on an explicit stack. Each range shares its endpoints with its
// neighbors, so marking the split point is all that's needed to reproduce the
// recursive formulation's output, and pathological curves can't exhaust the
// call stack.
func simplify(points []Point, epsilon float64, dist DistanceFunc) ([]bool, int) {
	keep := make([]bool, len(points))
	if epsilon == 0 || len(points) < 3 {
		for i := range keep {
			keep[i] = true
		}
		return keep, len(points)
	}

	last := len(points) - 1
	keep[0] = true
	keep[last] = true
	found := 2

	stack := [][2]int{{0, last}}
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		start, end := r[0], r[1]
		if end-start < 2 {
			continue
		}

		far := maxDistance(points[start:end+1], dist)
		if far.Distance > epsilon {
			split := start + far.Index
			keep[split] = true
			found++
			stack = append(stack, [2]int{split, end}, [2]int{start, split})
		}
	}
	return keep, found
}
