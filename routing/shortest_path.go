package routing

import (
	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/graph"
	. "github.com/mwaldhoff/go-sceneroute/util"
	"golang.org/x/exp/slog"
)

type PathResult struct {
	Success  bool
	Path     geo.CoordArray
	Distance float64
	Error    string
}

type sp_item struct {
	node string
	dist float64
}

//*******************************************
// shortest path
//*******************************************

// Computes the shortest path between two points over the graph. Both
// points are first inserted into the graph (mutating it in place);
// insertion failures and unreachable targets are reported as result
// values, never as panics.
func ShortestPath(start, end geo.Coord, g *graph.Graph, segments List[geo.Segment]) PathResult {
	start_id, ok := g.InsertPoint(start, segments)
	if !ok {
		return PathResult{Error: "start point is not on any road"}
	}
	end_id, ok := g.InsertPoint(end, segments)
	if !ok {
		return PathResult{Error: "end point is not on any road"}
	}

	dist := NewDict[string, float64](g.NodeCount())
	prev := NewDict[string, string](g.NodeCount())
	visited := NewDict[string, bool](g.NodeCount())

	heap := NewPriorityQueue[sp_item, float64](100)
	dist[start_id] = 0
	heap.Enqueue(sp_item{start_id, 0}, 0)

	found := false
	for {
		curr, ok := heap.Dequeue()
		if !ok {
			break
		}
		if visited.ContainsKey(curr.node) {
			continue
		}
		visited[curr.node] = true
		if curr.node == end_id {
			found = true
			break
		}
		curr_dist := dist[curr.node]
		g.ForAdjacentEdges(curr.node, func(n graph.Neighbor) {
			if visited.ContainsKey(n.Node) {
				return
			}
			new_dist := curr_dist + n.Weight
			old_dist, seen := dist[n.Node]
			if !seen || new_dist < old_dist {
				dist[n.Node] = new_dist
				prev[n.Node] = curr.node
				heap.Enqueue(sp_item{n.Node, new_dist}, new_dist)
			}
		})
	}

	if !found {
		slog.Debug("no path found", "start", start_id, "end", end_id)
		return PathResult{Error: "no path found between the two points"}
	}

	ids := NewList[string](10)
	for id := end_id; ; {
		ids.Add(id)
		if id == start_id {
			break
		}
		id = prev[id]
	}
	path := make(geo.CoordArray, 0, ids.Length())
	for i := ids.Length() - 1; i >= 0; i-- {
		node, _ := g.GetNode(ids[i])
		path = append(path, node.Point)
	}

	return PathResult{
		Success:  true,
		Path:     path,
		Distance: dist[end_id],
	}
}
