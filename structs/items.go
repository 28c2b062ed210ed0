package structs

import (
	"github.com/mwaldhoff/go-sceneroute/geo"
)

//*******************************************
// graph structs
//*******************************************

// A graph vertex at a canonicalized location. Two nodes with the
// same id are the same physical location.
type Node struct {
	ID    string
	Point geo.Coord
}

type Edge struct {
	NodeA  string
	NodeB  string
	Weight float64
}

func NewEdge(node_a, node_b string, weight float64) Edge {
	return Edge{
		NodeA:  node_a,
		NodeB:  node_b,
		Weight: weight,
	}
}
