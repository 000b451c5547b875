package osm2ch

// LaneDataID references a LaneConnection record held by a LaneConnector.
type LaneDataID int32

// InvalidLaneDataID marks a road with no assigned lane connection (for
// example, a disallowed turn).
const InvalidLaneDataID = LaneDataID(-1)

// LaneConnection records which incoming lanes feed which outgoing lanes
// of a single connected road at a junction.
type LaneConnection struct {
	Road          EdgeID
	IncomingFirst int
	IncomingLast  int
	OutgoingFirst int
	OutgoingLast  int
}

// LaneConnector turns an IntersectionView into a driver-facing
// Intersection by attaching a TurnInstruction (derived mechanically from
// each road's angle) and a lane connection to every allowed road other
// than a U-turn.
//
// Grounded on getIntersectionsConnections: the same left-biased lane
// splitting (one lane reserved on the left for the left-most turn, one on
// the right for the right-most, remaining lanes distributed across
// through roads) is reused here, adapted from a (incoming link, sorted
// outgoing links) pair to an IntersectionView.
type LaneConnector struct {
	graph Graph
}

// NewLaneConnector builds a LaneConnector over graph.
func NewLaneConnector(graph Graph) *LaneConnector {
	return &LaneConnector{graph: graph}
}

// Finish attaches turn instructions and lane connections to view, given
// the EdgeID the vehicle entered the junction on.
func (lc *LaneConnector) Finish(view IntersectionView, enteringVia EdgeID) (Intersection, []LaneConnection) {
	intersection := make(Intersection, len(view))
	incomingLanes := int(lc.graph.GetEdgeData(enteringVia).Classification.NumLanes)
	if incomingLanes < 1 {
		incomingLanes = 1
	}

	allowed := make([]int, 0, len(view))
	for i, entry := range view {
		intersection[i] = ConnectedRoad{
			IntersectionViewData: entry,
			Instruction:          turnInstructionFromAngle(entry.Angle),
			Lane:                 InvalidLaneDataID,
		}
		if entry.EntryAllowed {
			allowed = append(allowed, i)
		}
	}

	connections := lc.assignLanes(lc.graph, intersection, allowed, incomingLanes)
	for id, conn := range connections {
		for i := range intersection {
			if intersection[i].Edge == conn.Road {
				intersection[i].Lane = LaneDataID(id)
				break
			}
		}
	}
	return intersection, connections
}

const (
	defaultLeftMostLanes  = 1
	defaultRightMostLanes = 1
)

// assignLanes splits incomingLanes among the allowed roads, sorted by
// angle ascending (left-to-right as seen by the driver once the U-turn
// slot is excluded), following the same left/middle/right split the
// teacher's own lane-connection algorithm performs.
func (lc *LaneConnector) assignLanes(g Graph, intersection Intersection, allowed []int, incomingLanes int) []LaneConnection {
	roads := make([]int, 0, len(allowed))
	for _, idx := range allowed {
		if intersection[idx].Instruction.Type != UTurnType {
			roads = append(roads, idx)
		}
	}
	if len(roads) == 0 {
		return nil
	}

	connections := make([]LaneConnection, 0, len(roads))
	outgoingLanesOf := func(idx int) int {
		n := int(g.GetEdgeData(intersection[idx].Edge).Classification.NumLanes)
		if n < 1 {
			return 1
		}
		return n
	}

	if len(roads) == 1 {
		n := minInt(incomingLanes, outgoingLanesOf(roads[0]))
		connections = append(connections, LaneConnection{Road: intersection[roads[0]].Edge, IncomingFirst: 0, IncomingLast: n - 1, OutgoingFirst: 0, OutgoingLast: n - 1})
		return connections
	}

	leftIdx, rightIdx := roads[0], roads[len(roads)-1]
	middle := roads[1 : len(roads)-1]

	leftN := minInt(incomingLanes-defaultLeftMostLanes, outgoingLanesOf(leftIdx))
	if leftN < 1 {
		leftN = 1
	}
	connections = append(connections, LaneConnection{Road: intersection[leftIdx].Edge, IncomingFirst: 0, IncomingLast: leftN - 1, OutgoingFirst: 0, OutgoingLast: leftN - 1})

	start := leftN
	for _, idx := range middle {
		n := outgoingLanesOf(idx)
		connections = append(connections, LaneConnection{Road: intersection[idx].Edge, IncomingFirst: start, IncomingLast: start, OutgoingFirst: n - 1, OutgoingLast: n - 1})
		start++
	}

	rightN := outgoingLanesOf(rightIdx)
	connections = append(connections, LaneConnection{Road: intersection[rightIdx].Edge, IncomingFirst: incomingLanes - defaultRightMostLanes, IncomingLast: incomingLanes - 1, OutgoingFirst: rightN - defaultRightMostLanes, OutgoingLast: rightN - 1})

	return connections
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
