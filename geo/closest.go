package geo

//*******************************************
// network snapping
//*******************************************

// A finite straight line between two points, tagged with the id of
// the path object it was extracted from.
type Segment struct {
	Start    Coord
	End      Coord
	SourceID string
}

type ClosestRoadPoint struct {
	Point        Coord
	SourceID     string
	Distance     float64
	SegmentIndex int
}

// Projects point onto every segment and keeps the closest projection.
// Exact ties keep the first-seen segment. ok is false only when
// segments is empty.
func FindClosestPointOnNetwork(point Coord, segments []Segment) (ClosestRoadPoint, bool) {
	found := false
	var closest ClosestRoadPoint
	for i, seg := range segments {
		proj := ProjectOntoSegment(point, seg.Start, seg.End)
		dist := Distance(point, proj)
		if !found || dist < closest.Distance {
			closest = ClosestRoadPoint{
				Point:        proj,
				SourceID:     seg.SourceID,
				Distance:     dist,
				SegmentIndex: i,
			}
			found = true
		}
	}
	return closest, found
}
