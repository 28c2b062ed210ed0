package main

import (
	"fmt"

	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/routing"
	"github.com/mwaldhoff/go-sceneroute/scene"
	"golang.org/x/exp/slog"
)

//**********************************************************
// routing handlers
//**********************************************************

func HandleRouteRequest(req RouteRequest) Result {
	start, end, err := resolve_endpoints(req)
	if err != "" {
		return BadRequest(err)
	}
	segments := MANAGER.RoadSegments()

	slog.Debug(fmt.Sprintf("calculating route between %v and %v", start, end))
	result := routing.CalcRoute(start, end, segments)
	if !result.Success {
		slog.Info("routing failed: " + result.Error)
	} else {
		slog.Debug(fmt.Sprintf("route found, distance %v", result.Distance))
	}
	// failures still answer with a feature collection so the caller
	// can draw the diagnostic connector legs
	return OK(NewRouteResponse(result))
}

func resolve_endpoints(req RouteRequest) (geo.Coord, geo.Coord, string) {
	if len(req.Buildings) == 2 {
		start, ok := MANAGER.Scene().BuildingCentroid(req.Buildings[0])
		if !ok {
			return geo.Coord{}, geo.Coord{}, "building has no footprint geometry: " + req.Buildings[0]
		}
		end, ok := MANAGER.Scene().BuildingCentroid(req.Buildings[1])
		if !ok {
			return geo.Coord{}, geo.Coord{}, "building has no footprint geometry: " + req.Buildings[1]
		}
		return start, end, ""
	}
	if len(req.Start) == 2 && len(req.End) == 2 {
		return geo.Coord{req.Start[0], req.Start[1]}, geo.Coord{req.End[0], req.End[1]}, ""
	}
	return geo.Coord{}, geo.Coord{}, "request needs two buildings or start and end coordinates"
}

//**********************************************************
// selection handlers
//**********************************************************

func HandleSelectionRequest(req SelectionRequest) Result {
	MANAGER.SetSelection(req.Selected)
	status := scene.SelectionStatus(req.Selected)
	slog.Debug("selection changed: " + status)
	return OK(SelectionResponse{
		Status: status,
		Count:  len(req.Selected),
	})
}

func HandleStatusRequest() Result {
	selected := MANAGER.Selection()
	return OK(SelectionResponse{
		Status: scene.SelectionStatus(selected),
		Count:  len(selected),
	})
}
