package osm2ch

import "testing"

func TestLeastSquareRegressionFitsLine(t *testing.T) {
	// lat = 2*lon + 1, sampled exactly: the regression must recover it.
	coords := []Coordinate{
		NewCoordinateFromFloating(0, 1),
		NewCoordinateFromFloating(1, 3),
		NewCoordinateFromFloating(2, 5),
		NewCoordinateFromFloating(3, 7),
	}
	a, b := leastSquareRegression(coords)
	af, bf := a.ToFloating(), b.ToFloating()
	if !approxEqual(af.Lon, -1, 1e-6) {
		t.Errorf("first endpoint lon = %v, want -1 (min_lon - 1)", af.Lon)
	}
	if !approxEqual(af.Lat, 2*af.Lon+1, 1e-6) {
		t.Errorf("first endpoint not on regression line: lat=%v lon=%v", af.Lat, af.Lon)
	}
	if !approxEqual(bf.Lon, 4, 1e-6) {
		t.Errorf("second endpoint lon = %v, want 4 (max_lon + 1)", bf.Lon)
	}
	if !approxEqual(bf.Lat, 2*bf.Lon+1, 1e-6) {
		t.Errorf("second endpoint not on regression line: lat=%v lon=%v", bf.Lat, bf.Lon)
	}
}

func TestLeastSquareRegressionDegenerateLongitude(t *testing.T) {
	// Every point shares the same longitude: the denominator underflows and
	// the first/last input coordinates must be returned verbatim.
	coords := []Coordinate{
		NewCoordinateFromFloating(5, 1),
		NewCoordinateFromFloating(5, 2),
		NewCoordinateFromFloating(5, 3),
	}
	a, b := leastSquareRegression(coords)
	if a != coords[0] {
		t.Errorf("first endpoint = %v, want %v (verbatim first input)", a, coords[0])
	}
	if b != coords[len(coords)-1] {
		t.Errorf("second endpoint = %v, want %v (verbatim last input)", b, coords[len(coords)-1])
	}
}

func TestLeastSquareRegressionTooFewPoints(t *testing.T) {
	single := []Coordinate{NewCoordinateFromFloating(1, 1)}
	a, b := leastSquareRegression(single)
	if a != single[0] || b != single[0] {
		t.Errorf("single-point regression must echo the point, got %v/%v", a, b)
	}
	a, b = leastSquareRegression(nil)
	if a != (Coordinate{}) || b != (Coordinate{}) {
		t.Errorf("empty regression must return zero coordinates, got %v/%v", a, b)
	}
}
