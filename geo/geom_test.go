package geo

import (
	"fmt"
	"math"
	"testing"
)

func TestProjectOntoSegment(t *testing.T) {
	a := Coord{0, 0}
	b := Coord{10, 0}

	p := ProjectOntoSegment(Coord{5, 3}, a, b)
	if p[0] != 5 || p[1] != 0 {
		t.Errorf("projection = %v; want (5,0)", p)
	}

	// clamped to the segment ends
	p = ProjectOntoSegment(Coord{-4, 2}, a, b)
	if p[0] != 0 || p[1] != 0 {
		t.Errorf("projection = %v; want (0,0)", p)
	}
	p = ProjectOntoSegment(Coord{15, -2}, a, b)
	if p[0] != 10 || p[1] != 0 {
		t.Errorf("projection = %v; want (10,0)", p)
	}

	// degenerate segment falls back to the start point
	p = ProjectOntoSegment(Coord{3, 3}, a, a)
	if p[0] != 0 || p[1] != 0 {
		t.Errorf("projection = %v; want (0,0)", p)
	}
}

func TestProjectionIsClosestPoint(t *testing.T) {
	points := []Coord{{2, 7}, {-3, -1}, {11, 0.5}, {5, -20}}
	a := Coord{1, 1}
	b := Coord{9, 4}
	for _, p := range points {
		proj := ProjectOntoSegment(p, a, b)
		d := Distance(p, proj)
		if d > Distance(p, a)+1e-12 || d > Distance(p, b)+1e-12 {
			t.Errorf("projection of %v is farther than an endpoint", p)
		}
	}
}

func TestSegmentsIntersect(t *testing.T) {
	if !SegmentsIntersect(Coord{0, 0}, Coord{10, 0}, Coord{5, -5}, Coord{5, 5}) {
		t.Errorf("crossing segments should intersect")
	}
	if SegmentsIntersect(Coord{0, 0}, Coord{10, 0}, Coord{0, 5}, Coord{10, 5}) {
		t.Errorf("parallel segments should not intersect")
	}
	// touching endpoint
	if !SegmentsIntersect(Coord{0, 0}, Coord{5, 0}, Coord{5, 0}, Coord{5, 5}) {
		t.Errorf("touching segments should intersect")
	}
	// collinear overlap
	if !SegmentsIntersect(Coord{0, 0}, Coord{10, 0}, Coord{5, 0}, Coord{15, 0}) {
		t.Errorf("collinear overlapping segments should intersect")
	}
}

func TestIntersectionPoint(t *testing.T) {
	p, ok := IntersectionPoint(Coord{0, 0}, Coord{10, 0}, Coord{5, -5}, Coord{5, 5})
	if !ok {
		t.Fatalf("intersection not found")
	}
	if p[0] != 5 || p[1] != 0 {
		t.Errorf("intersection = %v; want (5,0)", p)
	}

	// parallel segments yield no point
	if _, ok := IntersectionPoint(Coord{0, 0}, Coord{10, 0}, Coord{0, 1}, Coord{10, 1}); ok {
		t.Errorf("parallel segments should not yield a point")
	}

	// crossing lines but outside the segment bounds
	if _, ok := IntersectionPoint(Coord{0, 0}, Coord{10, 0}, Coord{20, -5}, Coord{20, 5}); ok {
		t.Errorf("intersection outside the segments should not yield a point")
	}
}

func TestCentroid(t *testing.T) {
	// closed square ring
	ring := CoordArray{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	c := Centroid(ring)
	if c[0] != 2 || c[1] != 2 {
		t.Errorf("centroid = %v; want (2,2)", c)
	}

	c = Centroid(CoordArray{})
	if c[0] != 0 || c[1] != 0 {
		t.Errorf("centroid of empty ring = %v; want (0,0)", c)
	}
}

func TestCanonicalID(t *testing.T) {
	if CanonicalID(Coord{1.5, -2.25}) != "1.500000,-2.250000" {
		t.Errorf("id = %v", CanonicalID(Coord{1.5, -2.25}))
	}
	// equal quantized coordinates yield equal ids
	if CanonicalID(Coord{1.0000001, 2}) != CanonicalID(Coord{1.0000004, 2}) {
		t.Errorf("quantized ids should match")
	}
	// negative zero never leaks into the key
	if CanonicalID(Coord{math.Copysign(0, -1), 0}) != "0.000000,0.000000" {
		t.Errorf("id = %v; want 0.000000,0.000000", CanonicalID(Coord{math.Copysign(0, -1), 0}))
	}
}

func TestCanonicalIDRoundtrip(t *testing.T) {
	p := Coord{12.3456789, -0.0000004}
	var x, y float64
	if _, err := fmt.Sscanf(CanonicalID(p), "%f,%f", &x, &y); err != nil {
		t.Fatalf("id not parseable: %v", err)
	}
	if math.Abs(x-p[0]) > 5e-7 || math.Abs(y-p[1]) > 5e-7 {
		t.Errorf("roundtrip lost precision: (%v,%v)", x, y)
	}
}

func TestPointsEqual(t *testing.T) {
	if !PointsEqual(Coord{1, 1}, Coord{1.0005, 0.9995}, 0.001) {
		t.Errorf("points within tolerance should be equal")
	}
	// per-axis check, not euclidean
	if PointsEqual(Coord{1, 1}, Coord{1.002, 1}, 0.001) {
		t.Errorf("points outside tolerance should not be equal")
	}
}
