// Package orbreduce simplifies [orb] geometries with the Ramer–Douglas–Peucker
// implementation of package curvereduce.
//
// Like orb's own simplifiers, a [Simplifier] modifies the geometries it is
// given in place and returns them resliced.
//
// [orb]: https://github.com/paulmach/orb
package orbreduce

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"honnef.co/go/curvereduce"
)

var _ orb.Simplifier = &Simplifier{}

// Simplifier runs curve simplification over every line of a geometry.
type Simplifier struct {
	// Threshold is the tolerance passed to [curvereduce.SimplifyCurve].
	Threshold float64
	// Count, if positive, makes the simplifier target approximately Count
	// points per line using [curvereduce.SimplifyCurveTo]. Threshold is then
	// ignored.
	Count int
	// Distance is the metric. If nil, [curvereduce.DefaultDistance] is used.
	Distance curvereduce.DistanceFunc
}

// New returns a simplifier with the given tolerance. A negative or NaN
// threshold returns an error wrapping [curvereduce.ErrInvalidArgument].
func New(threshold float64, dist curvereduce.DistanceFunc) (*Simplifier, error) {
	if threshold < 0 || math.IsNaN(threshold) {
		return nil, fmt.Errorf("%w: threshold must be a non-negative number, got %g", curvereduce.ErrInvalidArgument, threshold)
	}
	return &Simplifier{Threshold: threshold, Distance: dist}, nil
}

// ToCount returns a simplifier that reduces every line to approximately
// count points.
func ToCount(count int, dist curvereduce.DistanceFunc) *Simplifier {
	return &Simplifier{Count: count, Distance: dist}
}

// Simplify will run the simplification for any geometry type.
func (s *Simplifier) Simplify(geom orb.Geometry) orb.Geometry {
	if geom == nil {
		return nil
	}

	switch g := geom.(type) {
	case orb.Point, orb.MultiPoint, orb.Bound:
		return g
	case orb.LineString:
		return s.LineString(g)
	case orb.MultiLineString:
		return s.MultiLineString(g)
	case orb.Ring:
		return s.Ring(g)
	case orb.Polygon:
		return s.Polygon(g)
	case orb.MultiPolygon:
		return s.MultiPolygon(g)
	case orb.Collection:
		return s.Collection(g)
	}

	panic(fmt.Sprintf("unsupported geometry type %T", geom))
}

// LineString simplifies a single line. Lines of two points or fewer are
// returned as is.
func (s *Simplifier) LineString(ls orb.LineString) orb.LineString {
	if len(ls) <= 2 {
		return ls
	}

	points := make([]curvereduce.Point, len(ls))
	for i, p := range ls {
		points[i] = curvereduce.Pt(p.X(), p.Y())
	}

	var out []curvereduce.Point
	if s.Count > 0 {
		out = curvereduce.SimplifyCurveTo(points, s.Count, s.Distance)
	} else {
		var err error
		out, err = curvereduce.SimplifyCurve(points, s.Threshold, s.Distance)
		if err != nil {
			panic(err)
		}
	}

	for i, p := range out {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls[:len(out)]
}

// MultiLineString simplifies every line of mls.
func (s *Simplifier) MultiLineString(mls orb.MultiLineString) orb.MultiLineString {
	for i := range mls {
		mls[i] = s.LineString(mls[i])
	}
	return mls
}

// Ring simplifies a ring. Its first and last points are kept, so closed rings
// stay closed.
func (s *Simplifier) Ring(r orb.Ring) orb.Ring {
	return orb.Ring(s.LineString(orb.LineString(r)))
}

// Polygon simplifies all rings of a polygon. Inner rings that collapse to two
// points or fewer are removed.
func (s *Simplifier) Polygon(p orb.Polygon) orb.Polygon {
	count := 0
	for i := range p {
		r := s.Ring(p[i])
		if i != 0 && len(r) <= 2 {
			continue
		}

		p[count] = r
		count++
	}
	return p[:count]
}

// MultiPolygon simplifies all polygons. Polygons whose outer ring collapses to
// two points or fewer are removed.
func (s *Simplifier) MultiPolygon(mp orb.MultiPolygon) orb.MultiPolygon {
	count := 0
	for i := range mp {
		p := s.Polygon(mp[i])
		if len(p) == 0 || len(p[0]) <= 2 {
			continue
		}

		mp[count] = p
		count++
	}
	return mp[:count]
}

// Collection simplifies every geometry of c.
func (s *Simplifier) Collection(c orb.Collection) orb.Collection {
	for i := range c {
		c[i] = s.Simplify(c[i])
	}
	return c
}
