package graph

import (
	"testing"

	"github.com/mwaldhoff/go-sceneroute/geo"
	. "github.com/mwaldhoff/go-sceneroute/util"
)

func TestInsertPoint(t *testing.T) {
	segments := List[geo.Segment]{
		{Start: geo.Coord{0, 0}, End: geo.Coord{10, 0}, SourceID: "a"},
	}
	g := BuildGraph(segments)

	id, ok := g.InsertPoint(geo.Coord{5, 0}, segments)
	if !ok {
		t.Fatalf("insertion failed")
	}
	if id != geo.CanonicalID(geo.Coord{5, 0}) {
		t.Errorf("id = %v", id)
	}

	// connected to both endpoints, weight 5 each
	weights := NewDict[string, float64](2)
	g.ForAdjacentEdges(id, func(n Neighbor) {
		weights[n.Node] = n.Weight
	})
	start_id := geo.CanonicalID(geo.Coord{0, 0})
	end_id := geo.CanonicalID(geo.Coord{10, 0})
	if weights.Length() != 2 {
		t.Fatalf("neighbor count = %v; want 2", weights.Length())
	}
	if weights[start_id] != 5 || weights[end_id] != 5 {
		t.Errorf("weights = %v; want 5 and 5", weights)
	}
}

func TestInsertPointExisting(t *testing.T) {
	segments := List[geo.Segment]{
		{Start: geo.Coord{0, 0}, End: geo.Coord{10, 0}, SourceID: "a"},
	}
	g := BuildGraph(segments)
	nodes_before := g.NodeCount()
	edges_before := g.EdgeCount()

	id, ok := g.InsertPoint(geo.Coord{0, 0}, segments)
	if !ok {
		t.Fatalf("insertion failed")
	}
	if id != geo.CanonicalID(geo.Coord{0, 0}) {
		t.Errorf("id = %v", id)
	}
	if g.NodeCount() != nodes_before || g.EdgeCount() != edges_before {
		t.Errorf("existing node insertion must not mutate the graph")
	}
}

func TestInsertPointOffNetwork(t *testing.T) {
	segments := List[geo.Segment]{
		{Start: geo.Coord{0, 0}, End: geo.Coord{10, 0}, SourceID: "a"},
	}
	g := BuildGraph(segments)
	nodes_before := g.NodeCount()
	edges_before := g.EdgeCount()

	// projects beyond the segment end
	if _, ok := g.InsertPoint(geo.Coord{20, 0}, segments); ok {
		t.Errorf("insertion should fail for a point off the network")
	}
	if g.NodeCount() != nodes_before || g.EdgeCount() != edges_before {
		t.Errorf("failed insertion must not mutate the graph")
	}
}

func TestInsertPointFirstSegmentWins(t *testing.T) {
	// the point projects onto both, the earlier segment is taken
	segments := List[geo.Segment]{
		{Start: geo.Coord{0, 1}, End: geo.Coord{10, 1}, SourceID: "upper"},
		{Start: geo.Coord{0, -1}, End: geo.Coord{10, -1}, SourceID: "lower"},
	}
	g := BuildGraph(segments)

	id, ok := g.InsertPoint(geo.Coord{5, 0}, segments)
	if !ok {
		t.Fatalf("insertion failed")
	}
	neighbors := NewList[string](2)
	g.ForAdjacentEdges(id, func(n Neighbor) {
		neighbors.Add(n.Node)
	})
	upper_a := geo.CanonicalID(geo.Coord{0, 1})
	upper_b := geo.CanonicalID(geo.Coord{10, 1})
	if neighbors.Length() != 2 {
		t.Fatalf("neighbor count = %v; want 2", neighbors.Length())
	}
	for _, n := range neighbors {
		if n != upper_a && n != upper_b {
			t.Errorf("connected to %v; want endpoints of the first segment", n)
		}
	}
}
