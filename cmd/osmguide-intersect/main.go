package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/routewise/guidance"
)

var (
	osmFileName  = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm or *.osm.pbf file")
	tagStr       = flag.String("tags", "", "Comma-separated highway tags to keep (empty keeps the built-in default set)")
	strictMode   = flag.Bool("strict", false, "Fail on a way referencing a missing node instead of skipping it")
	verbose      = flag.Bool("verbose", true, "Print progress while scanning the file")
	lowPrecision = flag.Bool("low-precision", false, "Sample bearings with the close-to-turn heuristic instead of the representative one")
	fromNode     = flag.Int("from", -1, "Dense NodeID the vehicle is arriving from")
	viaEdge      = flag.Int("via", -1, "Dense EdgeID the vehicle is arriving on")
	geomFormat   = flag.String("geomf", "wkt", "Format of the dumped entry-edge geometry. Expected values: wkt / geojson")
)

func main() {
	flag.Parse()

	if *fromNode < 0 || *viaEdge < 0 {
		fmt.Println("both -from and -via are required")
		return
	}

	opts := []func(*osm2ch.Parser){
		osm2ch.WithStrictMode(*strictMode),
		osm2ch.WithVerbose(*verbose),
		osm2ch.WithLowPrecisionAngles(*lowPrecision),
	}
	if *tagStr != "" {
		opts = append(opts, osm2ch.WithHighwayTags(strings.Split(*tagStr, ",")))
	}

	parser := osm2ch.NewParser(*osmFileName, opts...)
	generator, graph, err := parser.BuildGraph()
	if err != nil {
		fmt.Println(errors.Wrap(err, "can't build graph"))
		return
	}

	from := osm2ch.NodeID(*fromNode)
	via := osm2ch.EdgeID(*viaEdge)

	var view osm2ch.IntersectionView
	if *lowPrecision {
		view = generator.GetConnectedRoadsLowPrecision(from, via)
	} else {
		view = generator.GetConnectedRoads(from, via)
	}

	if !view.IsValid() {
		fmt.Println("warning: resulting view does not satisfy the leading-U-turn invariant")
	}

	fmt.Printf("%-8s %-8s %-10s %-10s %-8s %-10s\n", "edge", "target", "bearing", "angle", "allowed", "length_m")
	for _, entry := range view {
		fmt.Printf("%-8d %-8d %-10.3f %-10.3f %-8t %-10.1f\n",
			entry.Edge, graph.GetTarget(entry.Edge), entry.Bearing, entry.Angle, entry.EntryAllowed, entry.SegmentLength)
	}

	connector := osm2ch.NewLaneConnector(graph)
	intersection, _ := connector.Finish(view, via)
	for _, road := range intersection {
		fmt.Printf("edge %d -> target %d: %s (%s)\n", road.Edge, graph.GetTarget(road.Edge), road.Instruction.Type, road.Instruction.Modifier)
	}

	geom := graph.GetGeometry(via)
	points := make([]osm2ch.GeoPoint, len(geom))
	for i, c := range geom {
		points[i] = c.ToFloating()
	}
	if strings.ToLower(*geomFormat) == "geojson" {
		fmt.Println(osm2ch.PrepareGeoJSONLinestring(points))
	} else {
		fmt.Println(osm2ch.PrepareWKTLinestring(points))
	}
}
