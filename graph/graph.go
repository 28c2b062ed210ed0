package graph

import (
	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/structs"
	. "github.com/mwaldhoff/go-sceneroute/util"
)

//*******************************************
// road graph
//*******************************************

type Neighbor struct {
	Node   string
	Weight float64
}

// Weighted undirected graph over canonicalized node locations.
// Nodes and adjacency entries are only ever added, never removed.
type Graph struct {
	nodes     Dict[string, structs.Node]
	edges     List[structs.Edge]
	adjacency Dict[string, List[Neighbor]]
}

func NewGraph() *Graph {
	return &Graph{
		nodes:     NewDict[string, structs.Node](100),
		edges:     NewList[structs.Edge](100),
		adjacency: NewDict[string, List[Neighbor]](100),
	}
}

func (self *Graph) NodeCount() int {
	return self.nodes.Length()
}

func (self *Graph) EdgeCount() int {
	return self.edges.Length()
}

func (self *Graph) IsNode(id string) bool {
	return self.nodes.ContainsKey(id)
}

func (self *Graph) GetNode(id string) (structs.Node, bool) {
	node, ok := self.nodes[id]
	return node, ok
}

func (self *Graph) NodeIDs() List[string] {
	ids := NewList[string](self.nodes.Length())
	for id := range self.nodes {
		ids.Add(id)
	}
	return ids
}

// Iterates the adjacency of a node calling the callback for every
// outgoing connection.
func (self *Graph) ForAdjacentEdges(id string, callback func(Neighbor)) {
	for _, neighbor := range self.adjacency[id] {
		callback(neighbor)
	}
}

// Inserts the point as a node unless its canonical id is taken.
// Returns the node id either way.
func (self *Graph) addNode(point geo.Coord) string {
	id := geo.CanonicalID(point)
	if !self.nodes.ContainsKey(id) {
		self.nodes[id] = structs.Node{ID: id, Point: point}
	}
	return id
}

func (self *Graph) addEdge(node_a, node_b string, weight float64) {
	self.edges.Add(structs.NewEdge(node_a, node_b, weight))
	self.connect(node_a, node_b, weight)
	self.connect(node_b, node_a, weight)
}

func (self *Graph) connect(from, to string, weight float64) {
	neighbors := self.adjacency[from]
	neighbors.Add(Neighbor{Node: to, Weight: weight})
	self.adjacency[from] = neighbors
}
