package osm2ch

// RoadClassification describes the importance and capacity of a road,
// reusing the teacher's highway/link vocabulary (LinkType) instead of
// inventing a parallel one.
type RoadClassification struct {
	LinkType LinkType
	// Priority ranks importance; smaller values are more important.
	// Derived mechanically from LinkType's declaration order.
	Priority int32
	NumLanes uint8
	// IsLink marks a connector carriageway (motorway_link, trunk_link, ...)
	// as opposed to the through road sharing its LinkType. Ramps carry the
	// same LinkType as their parent road, so this is the only signal that
	// distinguishes them.
	IsLink bool
}

func newRoadClassification(lt LinkType, numLanes uint8) RoadClassification {
	return RoadClassification{
		LinkType: lt,
		Priority: int32(lt),
		NumLanes: numLanes,
	}
}

func newRoadClassificationWithLink(lt LinkType, numLanes uint8, isLink bool) RoadClassification {
	c := newRoadClassification(lt, numLanes)
	c.IsLink = isLink
	return c
}

// lowPriorityLinkTypes are link types treated as IsLowPriority when
// building EdgeData: minor roads an intersection should not weigh as
// heavily as a through road when several candidates tie on angle.
var lowPriorityLinkTypes = map[LinkType]struct{}{
	LINK_SERVICE:       {},
	LINK_TRACK:         {},
	LINK_FOOTWAY:       {},
	LINK_CYCLEWAY:      {},
	LINK_LIVING_STREET: {},
}

func (c RoadClassification) isLowPriority() bool {
	if c.IsLink {
		return true
	}
	_, ok := lowPriorityLinkTypes[c.LinkType]
	return ok
}

// EdgeData is the per-edge metadata consumed (not owned) by the
// intersection analyzer.
type EdgeData struct {
	Reversed       bool
	Classification RoadClassification
	IsLowPriority  bool
}

// IsCompatibleTo decides whether two consecutive compressed edges belong to
// the same logical road, for the purposes of the dead-end skip walker.
// Not pinned by the analyzer's external
// contract; this repository's reading is: same link type, equal one-way
// direction, and a lane count differing by at most one (digitization noise
// routinely drops or adds a single lane across way splits).
func (d EdgeData) IsCompatibleTo(other EdgeData) bool {
	if d.Classification.LinkType != other.Classification.LinkType {
		return false
	}
	if d.Reversed != other.Reversed {
		return false
	}
	laneDiff := int(d.Classification.NumLanes) - int(other.Classification.NumLanes)
	if laneDiff < 0 {
		laneDiff = -laneDiff
	}
	return laneDiff <= 1
}
