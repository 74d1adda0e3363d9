package curvereduce_test

import (
	"fmt"
	"math"

	"honnef.co/go/curvereduce"
)

var skyline = []curvereduce.Point{
	curvereduce.Pt(0, 0), curvereduce.Pt(1, 1), curvereduce.Pt(2, 0),
	curvereduce.Pt(3, 1), curvereduce.Pt(4, 5), curvereduce.Pt(5, 6),
	curvereduce.Pt(6, 5), curvereduce.Pt(7, 0), curvereduce.Pt(8, 1),
	curvereduce.Pt(9, 0), curvereduce.Pt(10, 0),
}

func ExampleSimplifyCurve() {
	simplified, err := curvereduce.SimplifyCurve(skyline, 1.5, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(simplified)
	// Output:
	// [(0, 0) (3, 1) (5, 6) (7, 0) (10, 0)]
}

func ExampleSimplifyCurve_perpendicular() {
	points := []curvereduce.Point{
		curvereduce.Pt(-2, 4), curvereduce.Pt(0, 2), curvereduce.Pt(0, 0), curvereduce.Pt(2, 0),
	}
	simplified, err := curvereduce.SimplifyCurve(points, 1, curvereduce.PerpendicularDistance)
	if err != nil {
		panic(err)
	}
	fmt.Println(simplified)
	// Output:
	// [(-2, 4) (0, 0) (2, 0)]
}

func ExampleSimplifyIndices() {
	// Timestamps travel along with the points they belong to.
	times := []string{"09:00", "09:01", "09:02", "09:03", "09:04", "09:05", "09:06", "09:07", "09:08", "09:09", "09:10"}
	indices, err := curvereduce.SimplifyIndices(skyline, 1.5, nil)
	if err != nil {
		panic(err)
	}
	for _, i := range indices {
		fmt.Println(times[i], skyline[i])
	}
	// Output:
	// 09:00 (0, 0)
	// 09:03 (3, 1)
	// 09:05 (5, 6)
	// 09:07 (7, 0)
	// 09:10 (10, 0)
}

func ExampleSimplifyCurveTo() {
	fmt.Println(curvereduce.SimplifyCurveTo(skyline, 4, nil))
	// Output:
	// [(0, 0) (5, 6) (7, 0) (10, 0)]
}

func ExampleSimplifyCurveToOpt() {
	simplified, epsilon := curvereduce.SimplifyCurveToOpt(skyline, 5, curvereduce.DefaultToleranceSearchOptions)
	fmt.Printf("%d points at tolerance %.3f\n", len(simplified), epsilon)
	// Output:
	// 5 points at tolerance 1.500
}

func ExampleMaxDistance() {
	far := curvereduce.MaxDistance(skyline, nil)
	fmt.Println(far.Index, skyline[far.Index], far.Distance)
	// Output:
	// 5 (5, 6) 6
}

func ExampleBinarySearch() {
	// Approximate the square root of 1000 with an integer.
	root, err := curvereduce.BinarySearch(func(n int) float64 {
		return 1000 - float64(n*n)
	}, 0, 1000)
	if err != nil {
		panic(err)
	}
	fmt.Println(root, math.Sqrt(1000))
	// Output:
	// 32 31.622776601683793
}
