package parser

import (
	"testing"

	"github.com/mwaldhoff/go-sceneroute/scene"
)

func TestParseGeojsonScene(t *testing.T) {
	s, err := ParseGeojsonScene("./testdata/scene.geojson")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	// the point feature without a category is skipped
	if s.FootprintCount() != 2 {
		t.Fatalf("footprint count = %v; want 2", s.FootprintCount())
	}

	road, ok := s.GetFootprint("main-street")
	if !ok {
		t.Fatalf("road footprint missing")
	}
	if road.Category != scene.ROAD {
		t.Errorf("category = %v; want road", road.Category)
	}
	if len(road.Ring) != 3 {
		t.Errorf("ring length = %v; want 3", len(road.Ring))
	}

	building, ok := s.GetFootprint("town-hall")
	if !ok {
		t.Fatalf("building footprint missing")
	}
	if building.Category != scene.BUILDING {
		t.Errorf("category = %v; want building", building.Category)
	}
	if len(building.Ring) != 5 {
		t.Errorf("ring length = %v; want 5", len(building.Ring))
	}

	segments := s.RoadSegments()
	if segments.Length() != 2 {
		t.Errorf("segment count = %v; want 2", segments.Length())
	}
}

func TestParseGeojsonSceneMissingFile(t *testing.T) {
	if _, err := ParseGeojsonScene("./testdata/nope.geojson"); err == nil {
		t.Errorf("missing file should fail")
	}
}
