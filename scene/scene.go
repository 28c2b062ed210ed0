package scene

import (
	"encoding/json"
	"errors"

	"github.com/mwaldhoff/go-sceneroute/geo"
	. "github.com/mwaldhoff/go-sceneroute/util"
)

//*******************************************
// scene model
//*******************************************

type Category byte

const (
	ROAD     Category = 0
	BUILDING Category = 1
)

func (self Category) String() string {
	switch self {
	case ROAD:
		return "road"
	case BUILDING:
		return "building"
	default:
		panic("unknown category")
	}
}
func (self Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Category) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	cat, err := CategoryFromString(typ)
	*self = cat
	return err
}

func CategoryFromString(s string) (Category, error) {
	switch s {
	case "road":
		return ROAD, nil
	case "building":
		return BUILDING, nil
	default:
		return ROAD, errors.New("unknown category")
	}
}

// A path object of the hosting scene: a ring of coordinates owned by
// an opaque id. Building rings are closed (first == last); road
// geometry may be an open polyline.
type Footprint struct {
	ID       string
	Category Category
	Ring     geo.CoordArray
}

type Scene struct {
	footprints List[Footprint]
	by_id      Dict[string, int]
}

func NewScene() *Scene {
	return &Scene{
		footprints: NewList[Footprint](100),
		by_id:      NewDict[string, int](100),
	}
}

// Footprints keep their insertion order; downstream segment order
// depends on it.
func (self *Scene) AddFootprint(footprint Footprint) {
	self.by_id[footprint.ID] = self.footprints.Length()
	self.footprints.Add(footprint)
}

func (self *Scene) GetFootprint(id string) (Footprint, bool) {
	index, ok := self.by_id[id]
	if !ok {
		return Footprint{}, false
	}
	return self.footprints[index], true
}

func (self *Scene) FootprintCount() int {
	return self.footprints.Length()
}

// Extracts the edge segments of every road footprint: consecutive
// coordinate pairs become segments tagged with the owning id.
func (self *Scene) RoadSegments() List[geo.Segment] {
	segments := NewList[geo.Segment](self.footprints.Length() * 4)
	for _, footprint := range self.footprints {
		if footprint.Category != ROAD {
			continue
		}
		for i := 1; i < len(footprint.Ring); i++ {
			segments.Add(geo.Segment{
				Start:    footprint.Ring[i-1],
				End:      footprint.Ring[i],
				SourceID: footprint.ID,
			})
		}
	}
	return segments
}

// Centroid of a building footprint, used as the routing query point.
// ok is false when the footprint is missing or has no geometry.
func (self *Scene) BuildingCentroid(id string) (geo.Coord, bool) {
	footprint, ok := self.GetFootprint(id)
	if !ok || len(footprint.Ring) == 0 {
		return geo.Coord{}, false
	}
	return geo.Centroid(footprint.Ring), true
}
