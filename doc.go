// Package curvereduce reduces the number of points in 2D polylines while
// preserving their shape, using the Ramer–Douglas–Peucker algorithm. It is
// meant for compressing dense curve data such as GPS tracks, sensor time
// series, or sampled functions.
//
// # Tolerance and point count
//
// [SimplifyCurve] removes every point that deviates from the simplified curve
// by no more than a tolerance, commonly called epsilon. The result is always a
// subsequence of the input that keeps the first and last points.
//
// [SimplifyCurveTo] instead targets an approximate number of output points. It
// searches the range of tolerances with [BinarySearch] and returns the
// simplification whose length is closest to the target. The relation between
// tolerance and output length isn't strictly monotonic for every curve, so an
// exact count is not guaranteed. [SimplifyCurveToOpt] exposes the search's
// knobs and reports the tolerance it settled on.
//
// # Distance metrics
//
// How far a point deviates from a chord is decided by a [DistanceFunc]. Two
// metrics are provided: [ShortestDistance], the distance to the chord as a
// segment, and [PerpendicularDistance], the distance to the infinite line
// through the chord's endpoints. Passing nil selects [DefaultDistance], which
// is ShortestDistance. Any other function with the same signature may be used.
//
// # Slices
//
// The algorithm needs random access to the curve, so all functions accept and
// return slices. Inputs are never modified and outputs are always freshly
// allocated.
//
// # Literature
//
//   - [Ramer–Douglas–Peucker algorithm]
//
// [Ramer–Douglas–Peucker algorithm]: https://en.wikipedia.org/wiki/Ramer%E2%80%93Douglas%E2%80%93Peucker_algorithm
package curvereduce
