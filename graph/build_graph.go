package graph

import (
	"github.com/mwaldhoff/go-sceneroute/geo"
	. "github.com/mwaldhoff/go-sceneroute/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// edges shorter than this are dropped to avoid self-loops between
// coincident nodes
const MIN_EDGE_WEIGHT = 0.001

//*******************************************
// build graph
//*******************************************

// Builds the connectivity graph of a segment set. Nodes are the
// segment endpoints plus every pairwise intersection point; every
// segment is subdivided at the nodes lying on it (within the
// positional tolerance) and consecutive pairs become weighted edges.
//
// The pairwise intersection pass is O(n²) in the segment count,
// fine for networks of a few hundred segments.
func BuildGraph(segments List[geo.Segment]) *Graph {
	g := NewGraph()

	for _, seg := range segments {
		g.addNode(seg.Start)
		g.addNode(seg.End)
	}

	for i := 0; i < segments.Length(); i++ {
		for j := i + 1; j < segments.Length(); j++ {
			a := segments[i]
			b := segments[j]
			if point, ok := geo.IntersectionPoint(a.Start, a.End, b.Start, b.End); ok {
				g.addNode(point)
			}
		}
	}

	for _, seg := range segments {
		subdivide_segment(g, seg)
	}

	slog.Debug("graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g
}

// Collects the nodes lying on the segment, orders them along it and
// connects each consecutive pair.
func subdivide_segment(g *Graph, seg geo.Segment) {
	if _, ok := geo.ProjectionParam(seg.Start, seg.Start, seg.End); !ok {
		// zero-length segments contribute no geometry
		return
	}
	on_segment := NewList[Tuple[float64, string]](8)
	for id, node := range g.nodes {
		t, _ := geo.ProjectionParam(node.Point, seg.Start, seg.End)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		closest := geo.Coord{
			seg.Start[0] + t*(seg.End[0]-seg.Start[0]),
			seg.Start[1] + t*(seg.End[1]-seg.Start[1]),
		}
		if !geo.PointsEqual(closest, node.Point, geo.POSITION_TOLERANCE) {
			continue
		}
		on_segment.Add(MakeTuple(t, id))
	}

	slices.SortFunc(on_segment, func(a, b Tuple[float64, string]) int {
		if a.A < b.A {
			return -1
		}
		if a.A > b.A {
			return 1
		}
		// equal parameters are ordered by id to keep builds deterministic
		if a.B < b.B {
			return -1
		}
		if a.B > b.B {
			return 1
		}
		return 0
	})

	for k := 1; k < on_segment.Length(); k++ {
		node_a := g.nodes[on_segment[k-1].B]
		node_b := g.nodes[on_segment[k].B]
		weight := geo.Distance(node_a.Point, node_b.Point)
		if weight < MIN_EDGE_WEIGHT {
			continue
		}
		g.addEdge(node_a.ID, node_b.ID, weight)
	}
}
