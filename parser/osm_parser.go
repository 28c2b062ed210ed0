package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/mwaldhoff/go-sceneroute/geo"
	"github.com/mwaldhoff/go-sceneroute/scene"
	. "github.com/mwaldhoff/go-sceneroute/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm scene parser
//*******************************************

type osm_way struct {
	id       string
	category scene.Category
	nodes    []int64
}

// Loads a scene from an OSM pbf extract. Ways tagged "highway" become
// road polylines, closed ways tagged "building" become building
// footprints. Coordinates are taken as planar (lon, lat).
func ParseOsmScene(pbf_file string) (*scene.Scene, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ways := NewList[osm_way](1000)
	needed := NewDict[int64, bool](10000)
	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		category, ok := way_category(way)
		if !ok {
			continue
		}
		refs := make([]int64, 0, len(way.Nodes))
		for _, node := range way.Nodes {
			refs = append(refs, int64(node.ID))
			needed[int64(node.ID)] = true
		}
		ways.Add(osm_way{
			id:       fmt.Sprintf("way/%v", way.ID),
			category: category,
			nodes:    refs,
		})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, err
	}
	scanner.Close()

	file.Seek(0, 0)
	coords := NewDict[int64, geo.Coord](needed.Length())
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if !needed.ContainsKey(int64(node.ID)) {
			continue
		}
		coords[int64(node.ID)] = geo.Coord{node.Lon, node.Lat}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, err
	}
	scanner.Close()

	s := scene.NewScene()
	for _, way := range ways {
		ring := make(geo.CoordArray, 0, len(way.nodes))
		complete := true
		for _, ref := range way.nodes {
			coord, ok := coords[ref]
			if !ok {
				complete = false
				break
			}
			ring = append(ring, coord)
		}
		if !complete || len(ring) < 2 {
			slog.Debug("skipping incomplete way", "id", way.id)
			continue
		}
		if way.category == scene.BUILDING && ring[0] != ring[len(ring)-1] {
			// buildings have to be closed rings
			continue
		}
		s.AddFootprint(scene.Footprint{
			ID:       way.id,
			Category: way.category,
			Ring:     ring,
		})
	}
	slog.Info("scene loaded", "file", pbf_file, "footprints", s.FootprintCount())
	return s, nil
}

func way_category(way *osm.Way) (scene.Category, bool) {
	if way.Tags.Find("highway") != "" {
		return scene.ROAD, true
	}
	if way.Tags.Find("building") != "" {
		return scene.BUILDING, true
	}
	return scene.ROAD, false
}
