package osm2ch

// IntersectionGenerator is the intersection analysis core. It borrows its
// collaborators for its lifetime and produces shape/view values by value;
// it holds no other state and is safe to share across goroutines once
// constructed, per the synchronous, side-effect-free call contract.
type IntersectionGenerator struct {
	graph        Graph
	coordinates  CoordinateExtractor
	restrictions RestrictionIndex
	barriers     BarrierSet
	nodes        NodeTable
}

// NewIntersectionGenerator wires the analyzer to its five external
// collaborators (§6 of the design: Graph, CoordinateExtractor,
// RestrictionIndex, BarrierSet, NodeTable).
func NewIntersectionGenerator(graph Graph, coordinates CoordinateExtractor, restrictions RestrictionIndex, barriers BarrierSet, nodes NodeTable) *IntersectionGenerator {
	return &IntersectionGenerator{
		graph:        graph,
		coordinates:  coordinates,
		restrictions: restrictions,
		barriers:     barriers,
		nodes:        nodes,
	}
}

// GetActualNextIntersection follows a chain of degree-two nodes starting
// at startingNode along via, stopping at the first non-trivial junction,
// and returns the view there together with the (from, via) pair that was
// actually resolved to.
//
// Grounded on IntersectionGenerator::GetActualNextIntersection
// (intersection_generator.cpp).
func (gen *IntersectionGenerator) GetActualNextIntersection(startingNode NodeID, via EdgeID) (IntersectionView, NodeID, EdgeID) {
	visited := map[NodeID]struct{}{}
	queryNode := startingNode
	queryEdge := via

	for {
		visited[queryNode] = struct{}{}
		nextNode := gen.graph.GetTarget(queryEdge)

		if gen.graph.GetOutDegree(nextNode) != 2 {
			break
		}
		if _, seen := visited[nextNode]; seen {
			break
		}

		continuation := findContinuationEdge(gen.graph, nextNode, queryNode)
		if !continuation.IsValid() {
			break
		}
		if !gen.graph.GetEdgeData(continuation).IsCompatibleTo(gen.graph.GetEdgeData(queryEdge)) {
			break
		}

		queryNode, queryEdge = nextNode, continuation
		if gen.graph.GetTarget(continuation) == startingNode {
			break
		}
	}

	view := gen.GetConnectedRoads(queryNode, queryEdge)
	return view, queryNode, queryEdge
}

// findContinuationEdge returns the unique outgoing edge of a degree-2 node
// that does not lead back to arrivedFrom.
func findContinuationEdge(g Graph, node, arrivedFrom NodeID) EdgeID {
	for _, e := range g.GetAdjacentEdgeRange(node) {
		if g.GetTarget(e) != arrivedFrom {
			return e
		}
	}
	return InvalidEdgeID
}
