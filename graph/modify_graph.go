package graph

import (
	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/structs"
	. "github.com/mwaldhoff/go-sceneroute/util"
)

//*******************************************
// modify graph
//*******************************************

// Attaches an arbitrary point to the graph. An existing node with the
// same canonical id is reused without touching the graph. Otherwise the
// segments are scanned in order and the first one whose projection
// parameter brackets the point is accepted; the new node is connected
// to that segment's two endpoint nodes only.
//
// Connecting to the endpoints rather than splicing into the bracketing
// sub-edge can shortcut past intermediate nodes on the same segment.
// Callers are expected to pass points that were snapped onto the
// network beforehand, which keeps the shortcut short.
//
// ok is false when the point projects onto no segment; the graph is
// left unmodified in that case.
func (self *Graph) InsertPoint(point geo.Coord, segments List[geo.Segment]) (string, bool) {
	id := geo.CanonicalID(point)
	if self.nodes.ContainsKey(id) {
		return id, true
	}

	for _, seg := range segments {
		t, ok := geo.ProjectionParam(point, seg.Start, seg.End)
		if !ok || t < 0 || t > 1 {
			continue
		}
		self.nodes[id] = structs.Node{ID: id, Point: point}
		for _, end := range [2]geo.Coord{seg.Start, seg.End} {
			end_id := geo.CanonicalID(end)
			end_node, exists := self.nodes[end_id]
			if !exists {
				continue
			}
			self.addEdge(id, end_id, geo.Distance(point, end_node.Point))
		}
		return id, true
	}
	return "", false
}
