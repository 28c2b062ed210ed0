package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/routing"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

//**********************************************************
// route response
//**********************************************************

type RouteResponse struct {
	Type     string             `json:"type"`
	Features []*geojson.Feature `json:"features"`
	Success  bool               `json:"success"`
	Distance float64            `json:"distance"`
	Error    string             `json:"error,omitempty"`
}

// Renders a route result as a FeatureCollection: one "route" line on
// success, otherwise the connector legs as "connector" lines so the
// caller can show why routing failed.
func NewRouteResponse(result routing.RouteResult) RouteResponse {
	resp := RouteResponse{}
	resp.Type = "FeatureCollection"
	resp.Success = result.Success
	resp.Distance = result.Distance
	resp.Error = result.Error
	resp.Features = make([]*geojson.Feature, 0, 2)
	if result.Success {
		resp.Features = append(resp.Features, line_feature(result.Path, "route"))
	} else {
		for _, connector := range result.Connectors {
			resp.Features = append(resp.Features, line_feature(connector, "connector"))
		}
	}
	return resp
}

func line_feature(line geo.CoordArray, style string) *geojson.Feature {
	feature := geojson.NewFeature(orb.LineString(line))
	feature.Properties["style"] = style
	return feature
}

//**********************************************************
// selection response
//**********************************************************

type SelectionResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
