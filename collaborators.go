package osm2ch

// Graph is the node-based, dense-index road graph the analyzer queries.
// It is an external collaborator: the analyzer only ever borrows it.
type Graph interface {
	GetTarget(e EdgeID) NodeID
	GetOutDegree(n NodeID) uint32
	// GetAdjacentEdgeRange returns every EdgeID leaving n, in a stable,
	// implementation-defined order. The analyzer relies on that order
	// being deterministic across calls but never assumes it is sorted by
	// anything other than EdgeID (see BeginEdges).
	GetAdjacentEdgeRange(n NodeID) []EdgeID
	// BeginEdges returns the smallest EdgeID adjacent to n, or
	// InvalidEdgeID if n has no outgoing edges.
	BeginEdges(n NodeID) EdgeID
	FindEdge(u, v NodeID) EdgeID
	GetEdgeData(e EdgeID) EdgeData
}

// CoordinateExtractor supplies the coordinate sequence along a compressed
// edge and the two sampling strategies the shape builder needs.
type CoordinateExtractor interface {
	GetCoordinatesAlongRoad(from NodeID, via EdgeID, reversed bool, to NodeID) []Coordinate
	GetCoordinateCloseToTurn(from NodeID, via EdgeID, reversed bool, to NodeID) Coordinate
	ExtractRepresentativeCoordinate(from NodeID, via EdgeID, reversed bool, to NodeID, lanes uint8, polyline []Coordinate) Coordinate
}

// RestrictionIndex answers turn-restriction queries for a (from, via, to)
// triple of nodes.
type RestrictionIndex interface {
	CheckIfTurnIsRestricted(from, via, to NodeID) bool
	// CheckForEmanatingIsOnlyTurn returns the sole permitted continuation
	// node and true, or (InvalidNodeID, false) if no only-turn restriction
	// applies to entering via from from.
	CheckForEmanatingIsOnlyTurn(from, via NodeID) (NodeID, bool)
}

// BarrierSet reports whether a node carries a physical barrier (gate,
// bollard, ...).
type BarrierSet interface {
	IsBarrier(n NodeID) bool
}

// NodeTable maps a NodeID to its Coordinate.
type NodeTable interface {
	GetCoordinate(n NodeID) Coordinate
}

// EdgeMerge records that originalEdge's shape entry was folded into
// mergedInto by an external parallel-edge merging pass, prior to view
// transformation.
type EdgeMerge struct {
	OriginalEdge EdgeID
	MergedInto   EdgeID
}
