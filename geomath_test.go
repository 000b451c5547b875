package osm2ch

import "testing"

func TestGreatCircleDistance(t *testing.T) {
	p1 := GeoPoint{Lon: 37.6417350769043, Lat: 55.751849391735284}
	p2 := GeoPoint{Lon: 37.668514251708984, Lat: 55.73261980350401}
	res := 2.71693096539 // kilometers
	gcd := greatCircleDistance(p1, p2)
	if round(gcd, 0.0005) != round(res, 0.0005) {
		t.Errorf("great circle distance must be %f, but got %f", res, gcd)
	}
}

func round(x, unit float64) float64 {
	if x > 0 {
		return float64(int64(x/unit+0.5)) * unit
	}
	return float64(int64(x/unit-0.5)) * unit
}

func TestGetSphericalLength(t *testing.T) {
	line := []GeoPoint{
		{Lon: 37.6417350769043, Lat: 55.751849391735284},
		{Lon: 37.668514251708984, Lat: 55.73261980350401},
	}
	if got := getSphericalLength(line); round(got, 0.0005) != round(2.71693096539, 0.0005) {
		t.Errorf("spherical length must be ~2.717km, got %f", got)
	}
	if got := getSphericalLength(line[:1]); got != 0 {
		t.Errorf("single-point line must have zero length, got %f", got)
	}
}

func TestPointOnSegmentByFraction(t *testing.T) {
	p := GeoPoint{Lon: 0, Lat: 0}
	q := GeoPoint{Lon: 10, Lat: 0}
	mid := pointOnSegmentByFraction(p, q, 0.5, 0)
	if mid.Lon != 5 || mid.Lat != 0 {
		t.Errorf("midpoint must be (5,0), got %v", mid)
	}
	start := pointOnSegmentByFraction(p, q, 0, 0)
	if start != p {
		t.Errorf("fraction 0 must return p, got %v", start)
	}
	end := pointOnSegmentByFraction(p, q, 1, 0)
	if end != q {
		t.Errorf("fraction 1 must return q, got %v", end)
	}
}
