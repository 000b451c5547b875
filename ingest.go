package osm2ch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// defaultHighwayTags is the allow-list BuildGraph uses when the Parser was
// not given an explicit one, reused from the teacher's own CLI default.
var defaultHighwayTags = []string{
	"motorway", "motorway_link", "trunk", "trunk_link",
	"primary", "primary_link", "secondary", "secondary_link",
	"tertiary", "tertiary_link", "residential", "unclassified",
}

// OSMScanner is satisfied by both osmxml and osmpbf's streaming scanners,
// letting BuildGraph pick one by file extension and otherwise treat them
// identically.
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

func newScanner(filename string, file *os.File) (OSMScanner, error) {
	switch filepath.Ext(filename) {
	case ".osm", ".xml":
		return osmxml.New(context.Background(), file), nil
	case ".pbf":
		return osmpbf.New(context.Background(), file, 4), nil
	default:
		return nil, fmt.Errorf("file extension '%s' for file '%s' is not handled", filepath.Ext(filename), filename)
	}
}

type rawWay struct {
	id          osm.WayID
	nodes       []osm.NodeID
	oneway      bool
	isReversed  bool
	lanes       uint8
	linkType    LinkType
	isLink      bool
	highwayText string
}

type rawNode struct {
	id        osm.NodeID
	lon, lat  float64
	useCount  int
	isSignal  bool
	isBarrier bool
}

// restrictionMember identifies a relation member by osm id and type; via
// members that reference a way rather than a node are not supported and
// are skipped.
type restrictionMember struct {
	ref osm.NodeID
	typ osm.Type
}

type rawRestriction struct {
	only          bool
	from, via, to restrictionMember
}

// BuildGraph runs the full OSM ingestion pipeline: scans ways, then
// nodes, then relations (three forward passes over the file, exactly like
// the teacher's readOSM), filters by highway tag, determines which nodes
// are real intersections, and assembles a NodeBasedGraph, NodeTable,
// RestrictionIndex and BarrierSet wired into an IntersectionGenerator.
func (parser *Parser) BuildGraph() (*IntersectionGenerator, *NodeBasedGraph, error) {
	file, err := os.Open(parser.filename)
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't open OSM file")
	}
	defer file.Close()

	tags := parser.highwayTags
	if len(tags) == 0 {
		tags = defaultHighwayTags
	}
	allowed := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		allowed[t] = struct{}{}
	}

	ways, nodeRefCount, err := scanWays(parser, file, allowed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't scan ways")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, nil, errors.Wrap(err, "can't rewind file before node scan")
	}

	nodes, err := scanNodes(parser, file, nodeRefCount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't scan nodes")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, nil, errors.Wrap(err, "can't rewind file before relation scan")
	}

	restrictions, err := scanRestrictions(parser, file)
	if err != nil {
		return nil, nil, errors.Wrap(err, "can't scan relations")
	}

	return assembleGraph(parser, ways, nodes, restrictions)
}

func scanWays(parser *Parser, file *os.File, allowed map[string]struct{}) ([]*rawWay, map[osm.NodeID]int, error) {
	if parser.verbose {
		fmt.Print("Processing ways... ")
	}
	st := time.Now()

	scanner, err := newScanner(parser.filename, file)
	if err != nil {
		return nil, nil, err
	}
	defer scanner.Close()

	ways := []*rawWay{}
	refCount := make(map[osm.NodeID]int)
	for scanner.Scan() {
		obj := scanner.Object()
		if obj.ObjectID().Type() != "way" {
			continue
		}
		way := obj.(*osm.Way)
		highwayText := way.Tags.Find("highway")
		if highwayText == "" {
			continue
		}
		if _, negligible := negligibleHighwayTags[highwayText]; negligible {
			continue
		}
		if _, poi := poiHighwayTags[highwayText]; poi {
			continue
		}
		if _, ok := allowed[highwayText]; !ok {
			continue
		}
		if len(way.Nodes) < 2 {
			continue
		}

		linkInfo, ok := linkTypeByHighway[getHighwayType(highwayText)]
		if !ok {
			continue
		}
		if isAccessDenied(way.Tags, linkInfo.linkType) {
			continue
		}

		oneway, isReversed := parseOneway(way.Tags, linkInfo.linkType)
		lanes := parseLanes(way.Tags, linkInfo.linkType)

		ids := make([]osm.NodeID, len(way.Nodes))
		for i, n := range way.Nodes {
			ids[i] = n.ID
			refCount[n.ID]++
		}

		ways = append(ways, &rawWay{
			id:          way.ID,
			nodes:       ids,
			oneway:      oneway,
			isReversed:  isReversed,
			lanes:       lanes,
			linkType:    linkInfo.linkType,
			isLink:      linkInfo.linkConnectionType == IS_LINK,
			highwayText: highwayText,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if parser.verbose {
		fmt.Printf("done in %v, %d ways\n", time.Since(st), len(ways))
	}
	return ways, refCount, nil
}

func parseOneway(tags osm.Tags, lt LinkType) (oneway, isReversed bool) {
	text := tags.Find("oneway")
	switch text {
	case "yes", "1":
		return true, false
	case "-1":
		return true, true
	case "no", "0", "":
		if text == "" {
			junctionText := tags.Find("junction")
			if _, ok := junctionTypes[junctionText]; ok {
				return true, false
			}
			return onewayDefaultByLink[lt], false
		}
		return false, false
	default:
		if _, ok := onewayReversible[text]; ok {
			return false, false
		}
		return false, false
	}
}

func parseLanes(tags osm.Tags, lt LinkType) uint8 {
	if text := tags.Find("lanes"); text != "" {
		if n, err := strconv.Atoi(text); err == nil && n > 0 && n < 256 {
			return uint8(n)
		}
	}
	if n, ok := defaultLanesByLinkType[lt]; ok {
		return uint8(n)
	}
	return 1
}

func scanNodes(parser *Parser, file *os.File, refCount map[osm.NodeID]int) (map[osm.NodeID]*rawNode, error) {
	if parser.verbose {
		fmt.Print("Processing nodes... ")
	}
	st := time.Now()

	scanner, err := newScanner(parser.filename, file)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	nodes := make(map[osm.NodeID]*rawNode, len(refCount))
	for scanner.Scan() {
		obj := scanner.Object()
		if obj.ObjectID().Type() != "node" {
			continue
		}
		node := obj.(*osm.Node)
		count, referenced := refCount[node.ID]
		if !referenced {
			continue
		}
		highwayText := node.Tags.Find("highway")
		barrierText := node.Tags.Find("barrier")
		_, isBarrier := barrierTags[barrierText]
		nodes[node.ID] = &rawNode{
			id:        node.ID,
			lon:       node.Lon,
			lat:       node.Lat,
			useCount:  count,
			isSignal:  highwayText == "traffic_signals",
			isBarrier: isBarrier,
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if parser.verbose {
		fmt.Printf("done in %v, %d nodes\n", time.Since(st), len(nodes))
	}
	return nodes, nil
}

func scanRestrictions(parser *Parser, file *os.File) ([]rawRestriction, error) {
	if parser.verbose {
		fmt.Print("Processing maneuvers... ")
	}
	st := time.Now()

	scanner, err := newScanner(parser.filename, file)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	var restrictions []rawRestriction
	for scanner.Scan() {
		obj := scanner.Object()
		if obj.ObjectID().Type() != "relation" {
			continue
		}
		relation := obj.(*osm.Relation)
		restrictionTag := relation.Tags.Find("restriction")
		if restrictionTag == "" || len(relation.Members) != 3 {
			continue
		}

		var from, via, to restrictionMember
		ok := true
		for _, m := range relation.Members {
			member := restrictionMember{ref: osm.NodeID(m.Ref), typ: m.Type}
			switch m.Role {
			case "from":
				from = member
			case "via":
				via = member
			case "to":
				to = member
			default:
				ok = false
			}
		}
		if !ok || via.typ != "node" {
			// Via-way restrictions are a rarer OSM pattern this
			// ingestion does not support; ignore rather than guess.
			continue
		}

		restrictions = append(restrictions, rawRestriction{
			only: len(restrictionTag) >= 4 && restrictionTag[:4] == "only",
			from: from,
			via:  via,
			to:   to,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if parser.verbose {
		fmt.Printf("done in %v, %d restrictions\n", time.Since(st), len(restrictions))
	}
	return restrictions, nil
}

// assembleGraph decides which referenced nodes are real intersections
// (used by >=2 ways, or signal-controlled), assigns them dense NodeIDs,
// and walks every way splitting it into compressed edges at intersection
// boundaries.
func assembleGraph(parser *Parser, ways []*rawWay, nodes map[osm.NodeID]*rawNode, restrictions []rawRestriction) (*IntersectionGenerator, *NodeBasedGraph, error) {
	denseID := make(map[osm.NodeID]NodeID)
	assign := func(id osm.NodeID) NodeID {
		if dense, ok := denseID[id]; ok {
			return dense
		}
		dense := NodeID(len(denseID))
		denseID[id] = dense
		return dense
	}

	for _, n := range nodes {
		if n.useCount >= 2 || n.isSignal {
			assign(n.id)
		}
	}

	graph := NewNodeBasedGraph(len(denseID))
	nodeTable := NewNodeTable(len(denseID))
	barriers := NewBarrierSet()
	for osmID, dense := range denseID {
		n := nodes[osmID]
		nodeTable.Set(dense, NewCoordinateFromFloating(n.lon, n.lat))
		if n.isBarrier {
			barriers.Add(dense)
		}
	}

	for _, way := range ways {
		if err := splitWayIntoEdges(graph, nodes, denseID, way, parser.strictMode); err != nil {
			return nil, nil, err
		}
	}
	graph.Finalize()

	restrictionIndex := NewRestrictionIndex()
	for _, r := range restrictions {
		fromDense, fromOK := denseID[r.from.ref]
		viaDense, viaOK := denseID[r.via.ref]
		toDense, toOK := denseID[r.to.ref]
		if !fromOK || !viaOK || !toOK {
			continue
		}
		if r.only {
			restrictionIndex.AddOnlyTurn(fromDense, viaDense, toDense)
		} else {
			restrictionIndex.AddRestriction(fromDense, viaDense, toDense)
		}
	}

	extractor := NewCoordinateExtractor(graph)
	gen := NewIntersectionGenerator(graph, extractor, restrictionIndex, barriers, nodeTable)
	return gen, graph, nil
}

// splitWayIntoEdges walks way's node sequence and, for every maximal run
// between two intersection nodes, adds one compressed edge carrying the
// full intermediate polyline.
func splitWayIntoEdges(graph *NodeBasedGraph, nodes map[osm.NodeID]*rawNode, denseID map[osm.NodeID]NodeID, way *rawWay, strict bool) error {
	var pending []Coordinate
	var segmentStart NodeID = InvalidNodeID

	flush := func(end NodeID) {
		if !segmentStart.IsValid() || len(pending) < 2 {
			pending = pending[:0]
			return
		}
		classification := newRoadClassificationWithLink(way.linkType, way.lanes, way.isLink)
		lowPriority := classification.isLowPriority()
		geom := append([]Coordinate(nil), pending...)
		reversedGeom := make([]Coordinate, len(pending))
		for i, c := range pending {
			reversedGeom[len(pending)-1-i] = c
		}

		switch {
		case !way.oneway:
			graph.AddEdge(segmentStart, end, EdgeData{Classification: classification, IsLowPriority: lowPriority}, geom)
			graph.AddEdge(end, segmentStart, EdgeData{Classification: classification, IsLowPriority: lowPriority}, reversedGeom)
		case way.isReversed:
			// Traffic flows end->segmentStart; the opposite direction
			// is stored too, flagged Reversed, so the analyzer still
			// sees an edge it must reject as an entry.
			graph.AddEdge(end, segmentStart, EdgeData{Classification: classification, IsLowPriority: lowPriority}, reversedGeom)
			graph.AddEdge(segmentStart, end, EdgeData{Classification: classification, IsLowPriority: lowPriority, Reversed: true}, geom)
		default:
			graph.AddEdge(segmentStart, end, EdgeData{Classification: classification, IsLowPriority: lowPriority}, geom)
			graph.AddEdge(end, segmentStart, EdgeData{Classification: classification, IsLowPriority: lowPriority, Reversed: true}, reversedGeom)
		}
		pending = pending[:0]
	}

	for _, osmID := range way.nodes {
		n, ok := nodes[osmID]
		if !ok {
			if strict {
				return fmt.Errorf("way %d references missing node %d", way.id, osmID)
			}
			continue
		}
		coord := NewCoordinateFromFloating(n.lon, n.lat)
		dense, isIntersection := denseID[osmID]

		if !segmentStart.IsValid() {
			if !isIntersection {
				continue
			}
			segmentStart = dense
			pending = append(pending, coord)
			continue
		}

		pending = append(pending, coord)
		if isIntersection {
			flush(dense)
			segmentStart = dense
			pending = append(pending, coord)
		}
	}
	return nil
}
