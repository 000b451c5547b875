package osm2ch

// concreteBarrierSet is a BarrierSet built from OSM barrier=* node tags.
type concreteBarrierSet struct {
	barriers map[NodeID]struct{}
}

// NewBarrierSet builds an empty set; callers populate it with Add while
// ingesting OSM nodes.
func NewBarrierSet() *concreteBarrierSet {
	return &concreteBarrierSet{barriers: make(map[NodeID]struct{})}
}

// Add marks n as carrying a physical barrier.
func (b *concreteBarrierSet) Add(n NodeID) {
	b.barriers[n] = struct{}{}
}

func (b *concreteBarrierSet) IsBarrier(n NodeID) bool {
	_, ok := b.barriers[n]
	return ok
}

// barrierTags mirrors the teacher's allow-list style for tag filtering
// (see defaultHighwayTags in ingest.go): a closed set of barrier=* values
// that block all but the U-turn at a node.
var barrierTags = map[string]struct{}{
	"gate":          {},
	"bollard":       {},
	"lift_gate":     {},
	"cycle_barrier": {},
	"block":         {},
	"swing_gate":    {},
	"chain":         {},
}
