package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

type Coord = orb.Point
type CoordArray = orb.LineString

// cutoff below which orientation values and squared segment
// lengths are treated as zero
const EPSILON = 1e-10

// positional tolerance for deciding whether a point lies on a segment
const POSITION_TOLERANCE = 0.001

//*******************************************
// geometry primitives
//*******************************************

func Distance(a, b Coord) float64 {
	return planar.Distance(a, b)
}

// Returns the point on the segment [a,b] closest to p.
// Degenerate segments (squared length below EPSILON) yield a.
func ProjectOntoSegment(p, a, b Coord) Coord {
	t, ok := ProjectionParam(p, a, b)
	if !ok {
		return a
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Coord{a[0] + t*(b[0]-a[0]), a[1] + t*(b[1]-a[1])}
}

// Unclamped parameter of the orthogonal projection of p onto the
// line through a and b. ok is false for degenerate segments.
func ProjectionParam(p, a, b Coord) (float64, bool) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	len_sq := dx*dx + dy*dy
	if len_sq < EPSILON {
		return 0, false
	}
	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / len_sq
	return t, true
}

func cross_orientation(p, q, r Coord) float64 {
	return (q[0]-p[0])*(r[1]-p[1]) - (q[1]-p[1])*(r[0]-p[0])
}

func on_bbox(p, q, r Coord) bool {
	return q[0] >= math.Min(p[0], r[0]) && q[0] <= math.Max(p[0], r[0]) &&
		q[1] >= math.Min(p[1], r[1]) && q[1] <= math.Max(p[1], r[1])
}

// Tests whether the segments [p1,p2] and [p3,p4] intersect,
// including collinear and touching-endpoint configurations.
func SegmentsIntersect(p1, p2, p3, p4 Coord) bool {
	o1 := cross_orientation(p1, p2, p3)
	o2 := cross_orientation(p1, p2, p4)
	o3 := cross_orientation(p3, p4, p1)
	o4 := cross_orientation(p3, p4, p2)

	if ((o1 > 0 && o2 < 0) || (o1 < 0 && o2 > 0)) &&
		((o3 > 0 && o4 < 0) || (o3 < 0 && o4 > 0)) {
		return true
	}

	if math.Abs(o1) < EPSILON && on_bbox(p1, p3, p2) {
		return true
	}
	if math.Abs(o2) < EPSILON && on_bbox(p1, p4, p2) {
		return true
	}
	if math.Abs(o3) < EPSILON && on_bbox(p3, p1, p4) {
		return true
	}
	if math.Abs(o4) < EPSILON && on_bbox(p3, p2, p4) {
		return true
	}
	return false
}

// Computes the intersection point of the segments [p1,p2] and [p3,p4].
// Parallel segments yield no point even when they overlap.
func IntersectionPoint(p1, p2, p3, p4 Coord) (Coord, bool) {
	d1x := p2[0] - p1[0]
	d1y := p2[1] - p1[1]
	d2x := p4[0] - p3[0]
	d2y := p4[1] - p3[1]

	cross := d1x*d2y - d1y*d2x
	if math.Abs(cross) < EPSILON {
		return Coord{}, false
	}

	t := ((p3[0]-p1[0])*d2y - (p3[1]-p1[1])*d2x) / cross
	u := ((p3[0]-p1[0])*d1y - (p3[1]-p1[1])*d1x) / cross
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Coord{}, false
	}
	return Coord{p1[0] + t*d1x, p1[1] + t*d1y}, true
}

// Arithmetic mean of the ring vertices, skipping the closing vertex
// (first == last convention). This is an approximation and not the
// area-weighted centroid, acceptable for roughly convex footprints.
func Centroid(vertices CoordArray) Coord {
	if len(vertices) == 0 {
		return Coord{}
	}
	count := len(vertices) - 1
	if count < 1 {
		return vertices[0]
	}
	sx := 0.0
	sy := 0.0
	for i := 0; i < count; i++ {
		sx += vertices[i][0]
		sy += vertices[i][1]
	}
	return Coord{sx / float64(count), sy / float64(count)}
}

// Fixed-precision key used to deduplicate coincident points. Points
// whose coordinates quantize to the same 6 decimal digits share an id.
func CanonicalID(p Coord) string {
	x := p[0]
	y := p[1]
	// avoid "-0.000000"
	if x == 0 {
		x = 0
	}
	if y == 0 {
		y = 0
	}
	return fmt.Sprintf("%.6f,%.6f", x, y)
}

// Per-axis absolute tolerance check, not a euclidean threshold.
func PointsEqual(a, b Coord, tolerance float64) bool {
	return math.Abs(a[0]-b[0]) <= tolerance && math.Abs(a[1]-b[1]) <= tolerance
}
