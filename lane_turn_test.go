package osm2ch

import "testing"

// buildFourWayView hand-builds an already-angle-sorted IntersectionView (no
// coordinates needed) mimicking a four-way cross entered from the south:
// U-turn at 0, west at 90, straight-through north at 180, east at 270.
func buildFourWayView(graph *NodeBasedGraph, uturn, west, north, east EdgeID) IntersectionView {
	return IntersectionView{
		{IntersectionShapeData: IntersectionShapeData{Edge: uturn}, EntryAllowed: false, Angle: 0},
		{IntersectionShapeData: IntersectionShapeData{Edge: west}, EntryAllowed: true, Angle: 90},
		{IntersectionShapeData: IntersectionShapeData{Edge: north}, EntryAllowed: true, Angle: 180},
		{IntersectionShapeData: IntersectionShapeData{Edge: east}, EntryAllowed: true, Angle: 270},
	}
}

func TestLaneConnectorFinishAssignsInstructionsAndLanes(t *testing.T) {
	graph := NewNodeBasedGraph(5)
	lt := LINK_RESIDENTIAL
	enteringVia := graph.AddEdge(1, 0, EdgeData{Classification: newRoadClassification(lt, 2)}, nil)
	uturn := graph.AddEdge(0, 1, EdgeData{Classification: newRoadClassification(lt, 2)}, nil)
	west := graph.AddEdge(0, 2, EdgeData{Classification: newRoadClassification(lt, 1)}, nil)
	north := graph.AddEdge(0, 3, EdgeData{Classification: newRoadClassification(lt, 1)}, nil)
	east := graph.AddEdge(0, 4, EdgeData{Classification: newRoadClassification(lt, 1)}, nil)
	graph.Finalize()

	view := buildFourWayView(graph, uturn, west, north, east)
	connector := NewLaneConnector(graph)
	intersection, connections := connector.Finish(view, enteringVia)

	if len(intersection) != 4 {
		t.Fatalf("expected 4 connected roads, got %d", len(intersection))
	}
	if intersection[0].Instruction.Type != UTurnType {
		t.Errorf("leading entry must be classified as a U-turn, got %+v", intersection[0].Instruction)
	}
	if intersection[2].Instruction.Type != Continue {
		t.Errorf("the 180-degree entry must be classified as Continue, got %+v", intersection[2].Instruction)
	}
	if intersection[0].Lane != InvalidLaneDataID {
		t.Errorf("the disallowed U-turn must carry no lane assignment, got %v", intersection[0].Lane)
	}

	if len(connections) != 3 {
		t.Fatalf("expected 3 lane connections (one per allowed, non-U-turn road), got %d", len(connections))
	}
	for _, c := range connections {
		if c.IncomingFirst > c.IncomingLast || c.OutgoingFirst > c.OutgoingLast {
			t.Errorf("lane connection has an inverted range: %+v", c)
		}
	}
}

func TestLaneConnectorFinishSingleAllowedRoad(t *testing.T) {
	graph := NewNodeBasedGraph(3)
	lt := LINK_SERVICE
	enteringVia := graph.AddEdge(1, 0, EdgeData{Classification: newRoadClassification(lt, 1)}, nil)
	uturn := graph.AddEdge(0, 1, EdgeData{Classification: newRoadClassification(lt, 1)}, nil)
	graph.Finalize()

	view := IntersectionView{
		{IntersectionShapeData: IntersectionShapeData{Edge: uturn}, EntryAllowed: true, Angle: 0},
	}
	connector := NewLaneConnector(graph)
	intersection, connections := connector.Finish(view, enteringVia)

	if len(intersection) != 1 || intersection[0].Instruction.Type != UTurnType {
		t.Fatalf("expected a single U-turn-classified entry, got %+v", intersection)
	}
	if connections != nil {
		t.Errorf("a dead end's only allowed road is the U-turn itself, which never gets a lane connection; got %+v", connections)
	}
}
