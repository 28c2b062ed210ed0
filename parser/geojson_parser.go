package parser

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/scene"
	"golang.org/x/exp/slog"
)

//*******************************************
// geojson scene parser
//*******************************************

// Loads a scene from a geojson FeatureCollection. Features carry an
// "id" and a "category" property ("road" or "building"); polygons
// contribute their outer ring, linestrings are taken as open road
// polylines. Features without a usable category are skipped.
func ParseGeojsonScene(file string) (*scene.Scene, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	s := scene.NewScene()
	for index, feature := range collection.Features {
		id := feature_id(feature, index)
		category, ok := feature_category(feature)
		if !ok {
			slog.Debug("skipping feature without category", "id", id)
			continue
		}
		ring, ok := feature_ring(feature)
		if !ok {
			slog.Debug("skipping feature without usable geometry", "id", id)
			continue
		}
		s.AddFootprint(scene.Footprint{
			ID:       id,
			Category: category,
			Ring:     ring,
		})
	}
	slog.Info("scene loaded", "file", file, "footprints", s.FootprintCount())
	return s, nil
}

func feature_id(feature *geojson.Feature, index int) string {
	if value, ok := feature.Properties["id"].(string); ok {
		return value
	}
	return fmt.Sprintf("feature-%v", index)
}

func feature_category(feature *geojson.Feature) (scene.Category, bool) {
	value, ok := feature.Properties["category"].(string)
	if !ok {
		return scene.ROAD, false
	}
	category, err := scene.CategoryFromString(value)
	if err != nil {
		return scene.ROAD, false
	}
	return category, true
}

func feature_ring(feature *geojson.Feature) (geo.CoordArray, bool) {
	switch geom := feature.Geometry.(type) {
	case orb.Polygon:
		if len(geom) == 0 || len(geom[0]) == 0 {
			return nil, false
		}
		return geo.CoordArray(geom[0]), true
	case orb.LineString:
		if len(geom) == 0 {
			return nil, false
		}
		return geo.CoordArray(geom), true
	default:
		return nil, false
	}
}
