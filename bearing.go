package osm2ch

import "math"

// angleEpsilon is the tolerance used for every "approximately zero" / "is
// sorted" comparison the intersection analyzer performs.
const angleEpsilon = 1e-6

// bearing returns the initial bearing (degrees, [0, 360)) from a to b,
// measured clockwise from north.
func bearing(a, b GeoPoint) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	diffLon := degreesToRadians(b.Lon - a.Lon)

	y := math.Sin(diffLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(diffLon)
	theta := math.Atan2(y, x)
	return math.Mod(radiansTodegrees(theta)+360.0, 360.0)
}

// reverseBearing returns the opposite heading of b, normalized to [0, 360).
func reverseBearing(b float64) float64 {
	return math.Mod(b+180.0, 360.0)
}

// angleBetweenBearings returns the degrees, clockwise, from the opposite of
// entryReverse to exit, normalized to [0, 360). A straight-through continuation returns
// approximately 180; a U-turn returns approximately 0.
//
// entryReverse is, by convention, reverseBearing of the U-turn edge's own
// bearing (the edge targeting previousNode) rather than of the entering
// edge directly — on an ordinary two-way road the two coincide, which is
// what makes angleBetweenBearings(b, b) come out to 180 (property: a road
// whose bearing equals the entry bearing is a straight-through move), and
// what makes the U-turn edge itself land at angle 0 (the +180 below
// cancels the one baked into entryReverse).
func angleBetweenBearings(entryReverse, exit float64) float64 {
	return math.Mod(exit-entryReverse+180.0+360.0, 360.0)
}

// angularDeviation returns the smallest angle between two bearings, always
// in [0, 180].
func angularDeviation(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff > 180.0 {
		diff = 360.0 - diff
	}
	return diff
}

// haversineLength returns the length, in meters, of a coordinate polyline.
func haversineLength(polyline []Coordinate) float64 {
	if len(polyline) < 2 {
		return 0
	}
	points := make([]GeoPoint, len(polyline))
	for i, c := range polyline {
		points[i] = c.ToFloating()
	}
	return getSphericalLength(points) * 1000.0
}
