package osm2ch

import "math"

// IntersectionShapeData is one adjacent edge of a junction, described by
// its outgoing bearing and the haversine length of its polyline.
type IntersectionShapeData struct {
	Edge          EdgeID
	Bearing       float64
	SegmentLength float64
}

// IntersectionShape is an intersection-shape-builder result: every edge
// adjacent to a junction, sorted clockwise from a base bearing.
type IntersectionShape []IntersectionShapeData

// closeToTurnDistance is the distance, in meters, along a road from the
// junction center at which the "close to turn" sampling strategy takes its
// point; the representative-coordinate strategy walks this far plus a
// per-lane allowance. Reused from the teacher's own indentation threshold
// for movement geometry.
const closeToTurnDistance = 8.0

// ComputeIntersectionShape builds the unsorted-then-sorted list of
// (edge, bearing, length) triples for every edge leaving center, sampling
// each edge's bearing with either the close-to-turn or the representative
// coordinate depending on useLowPrecision and the junction's out-degree.
//
// Grounded on IntersectionGenerator::ComputeIntersectionShape
// (intersection_generator.cpp).
func (gen *IntersectionGenerator) ComputeIntersectionShape(center NodeID, sortingBase NodeID, useLowPrecision bool) IntersectionShape {
	edges := gen.graph.GetAdjacentEdgeRange(center)
	shape := make(IntersectionShape, 0, len(edges))

	var lanesMax uint8
	for _, e := range edges {
		if n := gen.graph.GetEdgeData(e).Classification.NumLanes; n > lanesMax {
			lanesMax = n
		}
	}

	outDegree := gen.graph.GetOutDegree(center)
	centerCoordinate := gen.nodes.GetCoordinate(center)

	for _, e := range edges {
		target := gen.graph.GetTarget(e)
		edgeData := gen.graph.GetEdgeData(e)
		polyline := gen.coordinates.GetCoordinatesAlongRoad(center, e, edgeData.Reversed, target)
		length := haversineLength(polyline)

		var sampled Coordinate
		if useLowPrecision || outDegree <= 2 {
			sampled = gen.coordinates.GetCoordinateCloseToTurn(center, e, edgeData.Reversed, target)
		} else {
			sampled = gen.coordinates.ExtractRepresentativeCoordinate(center, e, edgeData.Reversed, target, lanesMax, polyline)
		}

		shape = append(shape, IntersectionShapeData{
			Edge:          e,
			Bearing:       bearing(centerCoordinate.ToFloating(), sampled.ToFloating()),
			SegmentLength: length,
		})
	}

	if len(shape) == 0 {
		return shape
	}

	base := reverseBearing(shape[0].Bearing)
	if sortingBase.IsValid() {
		for _, entry := range shape {
			if gen.graph.GetTarget(entry.Edge) == sortingBase {
				base = reverseBearing(entry.Bearing)
				break
			}
		}
	}

	sortShapeClockwiseFrom(shape, base)
	return shape
}

// sortShapeClockwiseFrom orders shape so that the entry with bearing
// closest (clockwise) to base comes first, i.e. by (bearing-base) mod 360
// ascending.
func sortShapeClockwiseFrom(shape IntersectionShape, base float64) {
	clockwiseOffset := func(b float64) float64 {
		return math.Mod(b-base+360.0, 360.0)
	}
	insertionSortBy(shape, func(a, b IntersectionShapeData) bool {
		return clockwiseOffset(a.Bearing) < clockwiseOffset(b.Bearing)
	})
}

// insertionSortBy is a small stable sort helper; junction out-degree is
// always tiny so an O(n^2) sort with explicit stability is simpler to
// reason about than reaching for sort.SliceStable on every call site.
func insertionSortBy(shape IntersectionShape, less func(a, b IntersectionShapeData) bool) {
	for i := 1; i < len(shape); i++ {
		for j := i; j > 0 && less(shape[j], shape[j-1]); j-- {
			shape[j], shape[j-1] = shape[j-1], shape[j]
		}
	}
}
