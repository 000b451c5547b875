package osm2ch

// IntersectionViewData extends a shape entry with legality and the angle
// measured clockwise from the reverse of the entry edge: a U-turn reads
// approximately 0, a straight-through continuation approximately 180.
type IntersectionViewData struct {
	IntersectionShapeData
	EntryAllowed bool
	Angle        float64
}

// IntersectionView is the angle-sorted, entry-annotated result of the
// connected-roads view builder. Invariant: ascending by Angle, with
// view[0].Angle within angleEpsilon of 0 (the U-turn slot always leads).
type IntersectionView []IntersectionViewData

// ConnectedRoad extends a view entry with the turn instruction and lane
// reference a driver-facing turn-handler pipeline needs.
type ConnectedRoad struct {
	IntersectionViewData
	Instruction TurnInstruction
	Lane        LaneDataID
}

// Intersection is a fully finished, driver-facing sequence of connected
// roads, with the same ordering invariants as IntersectionView.
type Intersection []ConnectedRoad

// TransformIntersectionShapeIntoView applies restriction, barrier,
// one-way, merge, and dead-end logic to turn a raw shape (possibly already
// adjusted by external parallel-edge merging) into an IntersectionView.
//
// previousNode is where the vehicle entered the junction from;
// enteringVia is the edge it arrived on; normalized is the shape after any
// external merging; original is the pre-merge shape; merges records which
// original edges were folded into which survivor.
//
// Grounded on IntersectionGenerator::TransformIntersectionShapeIntoView
// (intersection_generator.cpp).
func (gen *IntersectionGenerator) TransformIntersectionShapeIntoView(
	previousNode NodeID,
	enteringVia EdgeID,
	normalized IntersectionShape,
	original IntersectionShape,
	merges []EdgeMerge,
) IntersectionView {
	nodeAtIntersection := gen.graph.GetTarget(enteringVia)

	onlyValid, hasOnlyValid := gen.restrictions.CheckForEmanatingIsOnlyTurn(previousNode, nodeAtIntersection)
	if hasOnlyValid {
		found := false
		for _, entry := range normalized {
			if gen.graph.GetTarget(entry.Edge) == onlyValid {
				found = true
				break
			}
		}
		if !found {
			hasOnlyValid = false
		}
	}

	uturnEdge := findUTurnEdge(gen.graph, original, previousNode)
	if !uturnEdge.IsValid() {
		panic("TransformIntersectionShapeIntoView: no U-turn edge in intersection")
	}

	isBarrier := gen.barriers.IsBarrier(nodeAtIntersection)

	view := make(IntersectionView, 0, len(normalized))
	for _, entry := range normalized {
		edgeData := gen.graph.GetEdgeData(entry.Edge)
		target := gen.graph.GetTarget(entry.Edge)

		allowed := true
		switch {
		case edgeData.Reversed:
			allowed = false
		case isBarrier && target != previousNode:
			allowed = false
		case hasOnlyValid && target != onlyValid:
			allowed = false
		case gen.restrictions.CheckIfTurnIsRestricted(previousNode, nodeAtIntersection, target):
			allowed = false
		}

		view = append(view, IntersectionViewData{
			IntersectionShapeData: entry,
			EntryAllowed:          allowed,
		})
	}

	uturnBearing := uturnBearingOnNormalized(gen.graph, normalized, merges, uturnEdge, previousNode)
	for i := range view {
		view[i].Angle = angleBetweenBearings(uturnBearing, view[i].Bearing)
	}

	applyDeadEndUTurnPolicy(gen.graph, view, isBarrier, previousNode, nodeAtIntersection, gen.restrictions)

	sortViewByAngle(view)
	return view
}

// GetConnectedRoads is the high-precision public entry point: builds the
// shape at the junction reached by via and immediately transforms it into
// a view, with no external merging (normalized == original, no merges).
func (gen *IntersectionGenerator) GetConnectedRoads(from NodeID, via EdgeID) IntersectionView {
	return gen.getConnectedRoads(from, via, false)
}

// GetConnectedRoadsLowPrecision mirrors GetConnectedRoads but forces
// low-precision bearing sampling at the junction.
func (gen *IntersectionGenerator) GetConnectedRoadsLowPrecision(from NodeID, via EdgeID) IntersectionView {
	return gen.getConnectedRoads(from, via, true)
}

func (gen *IntersectionGenerator) getConnectedRoads(from NodeID, via EdgeID, lowPrecision bool) IntersectionView {
	center := gen.graph.GetTarget(via)
	shape := gen.ComputeIntersectionShape(center, InvalidNodeID, lowPrecision)
	return gen.TransformIntersectionShapeIntoView(from, via, shape, shape, nil)
}

// findUTurnEdge returns the minimal-EdgeID entry in shape whose target is
// previousNode: when several parallel edges lead back to previousNode, the
// lowest EdgeID wins (this repository's reading of the open question on
// parallel-edge U-turn selection, see DESIGN.md).
func findUTurnEdge(g Graph, shape IntersectionShape, previousNode NodeID) EdgeID {
	found := InvalidEdgeID
	for _, entry := range shape {
		if g.GetTarget(entry.Edge) != previousNode {
			continue
		}
		if !found.IsValid() || entry.Edge < found {
			found = entry.Edge
		}
	}
	return found
}

// uturnBearingOnNormalized finds the bearing to use as the U-turn
// reference on the (possibly merged) normalized shape: either the
// survivor the original U-turn edge was merged into, or the normalized
// entry that still targets previousNode directly.
func uturnBearingOnNormalized(g Graph, normalized IntersectionShape, merges []EdgeMerge, uturnEdge EdgeID, previousNode NodeID) float64 {
	survivor := uturnEdge
	for _, m := range merges {
		if m.OriginalEdge == uturnEdge {
			survivor = m.MergedInto
			break
		}
	}
	for _, entry := range normalized {
		if entry.Edge == survivor || g.GetTarget(entry.Edge) == previousNode {
			return reverseBearing(entry.Bearing)
		}
	}
	panic("uturnBearingOnNormalized: U-turn edge not present in normalized shape")
}

// applyDeadEndUTurnPolicy re-decides the U-turn slot's legality when the
// junction would otherwise be a dead end: disallowed if the edge itself is
// reversed or the turn back is explicitly restricted, otherwise allowed
// iff at most one adjacent edge is bidirectional (a true dead end).
func applyDeadEndUTurnPolicy(g Graph, view IntersectionView, isBarrier bool, previousNode, nodeAtIntersection NodeID, restrictions RestrictionIndex) {
	uturnIdx := -1
	for i, entry := range view {
		if g.GetTarget(entry.Edge) == previousNode {
			uturnIdx = i
			break
		}
	}
	if uturnIdx < 0 {
		return
	}

	allowedExits := 0
	for _, entry := range view {
		if entry.EntryAllowed {
			allowedExits++
		}
	}

	currentlyAllowed := view[uturnIdx].EntryAllowed
	shouldReconsider := (currentlyAllowed && !isBarrier && allowedExits != 1) || allowedExits == 0
	if !shouldReconsider {
		return
	}

	uturnEdgeData := g.GetEdgeData(view[uturnIdx].Edge)
	if uturnEdgeData.Reversed {
		view[uturnIdx].EntryAllowed = false
		return
	}
	if restrictions.CheckIfTurnIsRestricted(previousNode, nodeAtIntersection, previousNode) {
		view[uturnIdx].EntryAllowed = false
		return
	}

	bidirectional := 0
	for _, entry := range view {
		target := g.GetTarget(entry.Edge)
		reverse := g.FindEdge(target, nodeAtIntersection)
		if reverse.IsValid() && !g.GetEdgeData(reverse).Reversed {
			bidirectional++
		}
	}
	view[uturnIdx].EntryAllowed = bidirectional <= 1
}

func sortViewByAngle(view IntersectionView) {
	for i := 1; i < len(view); i++ {
		for j := i; j > 0 && view[j].Angle < view[j-1].Angle; j-- {
			view[j], view[j-1] = view[j-1], view[j]
		}
	}
}

// ClosestTurn scans view for the entry minimizing angularDeviation from
// targetAngle, respecting wrap-around at 0/360 and breaking ties by first
// occurrence.
func ClosestTurn(view IntersectionView, targetAngle float64) (IntersectionViewData, bool) {
	if len(view) == 0 {
		return IntersectionViewData{}, false
	}
	best := 0
	bestDeviation := angularDeviation(view[0].Angle, targetAngle)
	for i := 1; i < len(view); i++ {
		d := angularDeviation(view[i].Angle, targetAngle)
		if d < bestDeviation {
			best = i
			bestDeviation = d
		}
	}
	return view[best], true
}

// IsValid reports whether view satisfies the analyzer's core invariant:
// non-empty, sorted ascending by angle, first entry's angle within
// angleEpsilon of 0.
func (view IntersectionView) IsValid() bool {
	if len(view) == 0 {
		return false
	}
	if view[0].Angle >= angleEpsilon {
		return false
	}
	for i := 1; i < len(view); i++ {
		if view[i].Angle < view[i-1].Angle {
			return false
		}
	}
	return true
}

// Mirror reflects view across the entry axis: every angle becomes
// (360-angle) mod 360, except the leading U-turn slot, which is left
// untouched to preserve the leading-U-turn invariant.
func (view IntersectionView) Mirror() IntersectionView {
	mirrored := make(IntersectionView, len(view))
	for i, entry := range view {
		if entry.Angle < angleEpsilon {
			mirrored[i] = entry
			continue
		}
		reflected := entry
		reflected.Angle = mod360(360.0 - entry.Angle)
		mirrored[i] = reflected
	}
	sortViewByAngle(mirrored)
	return mirrored
}

// Mirror reflects an Intersection across the entry axis, additionally
// remapping each road's direction modifier through the left/right
// involution.
func (intersection Intersection) Mirror() Intersection {
	mirrored := make(Intersection, len(intersection))
	for i, road := range intersection {
		reflected := road
		if road.Angle >= angleEpsilon {
			reflected.Angle = mod360(360.0 - road.Angle)
			reflected.Instruction.Modifier = mirrorModifier[road.Instruction.Modifier]
		}
		mirrored[i] = reflected
	}
	for i := 1; i < len(mirrored); i++ {
		for j := i; j > 0 && mirrored[j].Angle < mirrored[j-1].Angle; j-- {
			mirrored[j], mirrored[j-1] = mirrored[j-1], mirrored[j]
		}
	}
	return mirrored
}

func mod360(v float64) float64 {
	for v < 0 {
		v += 360.0
	}
	for v >= 360.0 {
		v -= 360.0
	}
	return v
}
