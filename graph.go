package osm2ch

import "sort"

// concreteEdge is one compressed edge of the node-based graph: the full
// polyline between two intersection nodes, collapsed from every
// intermediate OSM node along the source way.
type concreteEdge struct {
	source NodeID
	target NodeID
	data   EdgeData
	geom   []Coordinate
}

// NodeBasedGraph is a dense, adjacency-range node-based graph over
// intersection nodes, grounded on the teacher's NetworkNode
// incoming/outgoing link bookkeeping but flattened into the single
// adjacency array the Graph contract expects.
type NodeBasedGraph struct {
	edges     []concreteEdge
	adjacency [][]EdgeID // adjacency[n] lists outgoing EdgeIDs, ascending
}

// NewNodeBasedGraph builds an empty graph over numNodes dense node ids.
func NewNodeBasedGraph(numNodes int) *NodeBasedGraph {
	return &NodeBasedGraph{
		adjacency: make([][]EdgeID, numNodes),
	}
}

// AddEdge appends a directed compressed edge from source to target and
// returns its EdgeID.
func (g *NodeBasedGraph) AddEdge(source, target NodeID, data EdgeData, geom []Coordinate) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, concreteEdge{source: source, target: target, data: data, geom: geom})
	g.adjacency[source] = append(g.adjacency[source], id)
	return id
}

// Finalize sorts every node's adjacency list by EdgeID ascending, so
// BeginEdges and the analyzer's "minimal id among parallels" rule are
// well defined. Call once after every AddEdge.
func (g *NodeBasedGraph) Finalize() {
	for _, adj := range g.adjacency {
		sort.Slice(adj, func(i, j int) bool { return adj[i] < adj[j] })
	}
}

func (g *NodeBasedGraph) GetTarget(e EdgeID) NodeID {
	return g.edges[e].target
}

func (g *NodeBasedGraph) GetOutDegree(n NodeID) uint32 {
	return uint32(len(g.adjacency[n]))
}

func (g *NodeBasedGraph) GetAdjacentEdgeRange(n NodeID) []EdgeID {
	return g.adjacency[n]
}

func (g *NodeBasedGraph) BeginEdges(n NodeID) EdgeID {
	if len(g.adjacency[n]) == 0 {
		return InvalidEdgeID
	}
	return g.adjacency[n][0]
}

func (g *NodeBasedGraph) FindEdge(u, v NodeID) EdgeID {
	for _, e := range g.adjacency[u] {
		if g.edges[e].target == v {
			return e
		}
	}
	return InvalidEdgeID
}

func (g *NodeBasedGraph) GetEdgeData(e EdgeID) EdgeData {
	return g.edges[e].data
}

// GetGeometry returns the raw polyline stored for e, junction-center to
// target, in entry order.
func (g *NodeBasedGraph) GetGeometry(e EdgeID) []Coordinate {
	return g.edges[e].geom
}

// NumNodes returns the number of dense node ids the graph was built with.
func (g *NodeBasedGraph) NumNodes() int {
	return len(g.adjacency)
}
