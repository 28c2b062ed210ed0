package routing

import (
	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/graph"
	. "github.com/mwaldhoff/go-sceneroute/util"
	"golang.org/x/exp/slog"
)

type RouteResult struct {
	Success  bool
	Path     geo.CoordArray
	Distance float64
	Error    string
	// straight legs from each query point to its snapped network
	// point, kept for diagnostic rendering
	Connectors []geo.CoordArray
}

//*******************************************
// route orchestration
//*******************************************

// Computes the navigable route between two query points over the
// segment network. Both points are snapped onto their closest network
// point first; the returned path runs query point -> snapped point ->
// road path -> snapped point -> query point.
//
// The reported distance covers the road path between the two snapped
// points only; the connector legs are part of the rendered geometry
// but excluded from the number. Callers rely on this.
func CalcRoute(from, to geo.Coord, segments List[geo.Segment]) RouteResult {
	if segments.Length() == 0 {
		return RouteResult{Error: "no roads found"}
	}

	closest_from, ok_from := geo.FindClosestPointOnNetwork(from, segments)
	closest_to, ok_to := geo.FindClosestPointOnNetwork(to, segments)

	connectors := make([]geo.CoordArray, 0, 2)
	if ok_from {
		connectors = append(connectors, geo.CoordArray{from, closest_from.Point})
	}
	if ok_to {
		connectors = append(connectors, geo.CoordArray{to, closest_to.Point})
	}

	if !ok_from || !ok_to {
		return RouteResult{
			Error:      "could not find roads near buildings",
			Connectors: connectors,
		}
	}
	slog.Debug("query points snapped",
		"from", closest_from.SourceID, "to", closest_to.SourceID)

	g := graph.BuildGraph(segments)
	result := ShortestPath(closest_from.Point, closest_to.Point, g, segments)
	if !result.Success {
		return RouteResult{
			Error:      result.Error,
			Connectors: connectors,
		}
	}

	path := make(geo.CoordArray, 0, len(result.Path)+2)
	path = append(path, from)
	path = append(path, result.Path...)
	path = append(path, to)

	return RouteResult{
		Success:    true,
		Path:       path,
		Distance:   result.Distance,
		Connectors: connectors,
	}
}
