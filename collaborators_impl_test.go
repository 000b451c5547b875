package osm2ch

import "testing"

func TestCoordinateFixedPointRoundTrip(t *testing.T) {
	c := NewCoordinateFromFloating(37.6173, 55.7558)
	g := c.ToFloating()
	if !approxEqual(g.Lon, 37.6173, 1e-6) || !approxEqual(g.Lat, 55.7558, 1e-6) {
		t.Errorf("round trip drifted: got %+v", g)
	}
}

func TestNodeAndEdgeIDValidity(t *testing.T) {
	if InvalidNodeID.IsValid() {
		t.Errorf("InvalidNodeID must not be valid")
	}
	if !NodeID(0).IsValid() {
		t.Errorf("NodeID(0) must be valid")
	}
	if InvalidEdgeID.IsValid() {
		t.Errorf("InvalidEdgeID must not be valid")
	}
	if !EdgeID(0).IsValid() {
		t.Errorf("EdgeID(0) must be valid")
	}
}

func TestRoadClassificationIsCompatibleTo(t *testing.T) {
	a := EdgeData{Classification: newRoadClassification(LINK_RESIDENTIAL, 2)}
	b := EdgeData{Classification: newRoadClassification(LINK_RESIDENTIAL, 3)}
	if !a.IsCompatibleTo(b) {
		t.Errorf("same link type, one lane apart, must be compatible")
	}

	c := EdgeData{Classification: newRoadClassification(LINK_RESIDENTIAL, 5)}
	if a.IsCompatibleTo(c) {
		t.Errorf("lane counts 2 and 5 differ by more than one, must not be compatible")
	}

	d := EdgeData{Classification: newRoadClassification(LINK_SERVICE, 2)}
	if a.IsCompatibleTo(d) {
		t.Errorf("different link types must not be compatible")
	}

	e := EdgeData{Classification: newRoadClassification(LINK_RESIDENTIAL, 2), Reversed: true}
	if a.IsCompatibleTo(e) {
		t.Errorf("differing Reversed flags must not be compatible")
	}
}

func TestRoadClassificationIsLowPriority(t *testing.T) {
	if !newRoadClassification(LINK_SERVICE, 1).isLowPriority() {
		t.Errorf("LINK_SERVICE must be low priority")
	}
	if newRoadClassification(LINK_PRIMARY, 1).isLowPriority() {
		t.Errorf("LINK_PRIMARY must not be low priority")
	}
	if !newRoadClassificationWithLink(LINK_PRIMARY, 3, true).isLowPriority() {
		t.Errorf("a link/ramp carriageway must be low priority even sharing LINK_PRIMARY with its parent road")
	}
	if newRoadClassificationWithLink(LINK_PRIMARY, 3, false).isLowPriority() {
		t.Errorf("a non-link LINK_PRIMARY road must not be low priority")
	}
}

func TestBarrierSet(t *testing.T) {
	b := NewBarrierSet()
	if b.IsBarrier(NodeID(1)) {
		t.Errorf("unregistered node must not be a barrier")
	}
	b.Add(NodeID(1))
	if !b.IsBarrier(NodeID(1)) {
		t.Errorf("node 1 must be a barrier after Add")
	}
	if b.IsBarrier(NodeID(2)) {
		t.Errorf("node 2 must not be a barrier")
	}
}

func TestRestrictionIndexNoTurnAndOnlyTurn(t *testing.T) {
	r := NewRestrictionIndex()
	from, via, to := NodeID(1), NodeID(2), NodeID(3)
	if r.CheckIfTurnIsRestricted(from, via, to) {
		t.Errorf("empty index must not restrict anything")
	}
	r.AddRestriction(from, via, to)
	if !r.CheckIfTurnIsRestricted(from, via, to) {
		t.Errorf("the turn just added must be restricted")
	}
	if r.CheckIfTurnIsRestricted(from, via, NodeID(4)) {
		t.Errorf("a different target must not be restricted")
	}

	if _, ok := r.CheckForEmanatingIsOnlyTurn(from, via); ok {
		t.Errorf("no only-turn registered yet")
	}
	r.AddOnlyTurn(from, via, to)
	got, ok := r.CheckForEmanatingIsOnlyTurn(from, via)
	if !ok || got != to {
		t.Errorf("CheckForEmanatingIsOnlyTurn = (%v, %v), want (%v, true)", got, ok, to)
	}
}

func TestNodeBasedGraphAdjacencyAndFindEdge(t *testing.T) {
	g := NewNodeBasedGraph(3)
	e0 := g.AddEdge(0, 1, EdgeData{}, nil)
	e1 := g.AddEdge(0, 2, EdgeData{}, nil)
	g.Finalize()

	if g.GetOutDegree(0) != 2 {
		t.Errorf("node 0 must have out-degree 2, got %d", g.GetOutDegree(0))
	}
	if g.BeginEdges(0) != e0 {
		t.Errorf("BeginEdges must return the lowest EdgeID, got %v want %v", g.BeginEdges(0), e0)
	}
	if g.BeginEdges(1) != InvalidEdgeID {
		t.Errorf("node 1 has no outgoing edges, BeginEdges must be invalid")
	}
	if g.FindEdge(0, 2) != e1 {
		t.Errorf("FindEdge(0,2) must return %v, got %v", e1, g.FindEdge(0, 2))
	}
	if g.FindEdge(0, 1) != e0 {
		t.Errorf("FindEdge(0,1) must return %v, got %v", e0, g.FindEdge(0, 1))
	}
	if g.FindEdge(1, 0) != InvalidEdgeID {
		t.Errorf("no edge from 1 to 0 exists, FindEdge must return InvalidEdgeID")
	}
	if g.GetTarget(e1) != 2 {
		t.Errorf("GetTarget(e1) must be node 2, got %v", g.GetTarget(e1))
	}
	if g.NumNodes() != 3 {
		t.Errorf("NumNodes must be 3, got %d", g.NumNodes())
	}
}

func TestCoordinateExtractorCloseToTurnAndRepresentative(t *testing.T) {
	graph := NewNodeBasedGraph(2)
	// a straight, 100m-ish north-south polyline with three vertices.
	polyline := []Coordinate{
		NewCoordinateFromFloating(0, 0),
		NewCoordinateFromFloating(0, 0.0003),
		NewCoordinateFromFloating(0, 0.0009),
	}
	e := graph.AddEdge(0, 1, EdgeData{Classification: newRoadClassification(LINK_RESIDENTIAL, 1)}, polyline)
	graph.Finalize()

	ex := NewCoordinateExtractor(graph)
	closeToTurn := ex.GetCoordinateCloseToTurn(0, e, false, 1)
	g := closeToTurn.ToFloating()
	if !approxEqual(g.Lon, 0, 1e-6) {
		t.Errorf("close-to-turn sample must stay on the polyline's longitude, got %v", g.Lon)
	}
	if g.Lat <= 0 {
		t.Errorf("close-to-turn sample must be beyond the junction, got lat=%v", g.Lat)
	}

	representative := ex.ExtractRepresentativeCoordinate(0, e, false, 1, 2, polyline)
	rg := representative.ToFloating()
	if !approxEqual(rg.Lon, 0, 1e-6) {
		t.Errorf("representative sample must stay on the (longitude-degenerate) regression axis, got %v", rg.Lon)
	}
}

func TestCoordinateExtractorCloseToTurnShortRoad(t *testing.T) {
	graph := NewNodeBasedGraph(2)
	// a road shorter than closeToTurnDistance: must fall back to the last point.
	polyline := []Coordinate{
		NewCoordinateFromFloating(0, 0),
		NewCoordinateFromFloating(0, 0.00001),
	}
	e := graph.AddEdge(0, 1, EdgeData{Classification: newRoadClassification(LINK_RESIDENTIAL, 1)}, polyline)
	graph.Finalize()

	ex := NewCoordinateExtractor(graph)
	got := ex.GetCoordinateCloseToTurn(0, e, false, 1)
	if got != polyline[len(polyline)-1] {
		t.Errorf("short road must fall back to its last point, got %v want %v", got, polyline[len(polyline)-1])
	}
}
