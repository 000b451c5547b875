package osm2ch

// leastSquareRegression fits a line lat = m*lon + c through coordinates and
// returns two synthetic endpoints on that line, one degree of longitude
// beyond the input's min and max longitude. When the input is degenerate
// in longitude (all points share essentially the same longitude, so the
// regression denominator underflows), the first and last input coordinate
// are returned verbatim instead.
//
// Grounded on the OSRM guidance toolkit's leastSquareRegression: the
// regression characterizes the axis of a noisy-digitized road so the
// analyzer can compare a sampled point against it.
func leastSquareRegression(coordinates []Coordinate) (Coordinate, Coordinate) {
	if len(coordinates) < 2 {
		if len(coordinates) == 1 {
			return coordinates[0], coordinates[0]
		}
		return Coordinate{}, Coordinate{}
	}

	first := coordinates[0].ToFloating()
	minLon, maxLon := first.Lon, first.Lon
	var sumLon, sumLat, sumLonLon, sumLonLat float64
	n := float64(len(coordinates))
	for _, c := range coordinates {
		p := c.ToFloating()
		sumLon += p.Lon
		sumLat += p.Lat
		sumLonLon += p.Lon * p.Lon
		sumLonLat += p.Lon * p.Lat
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
	}

	denominator := n*sumLonLon - sumLon*sumLon
	if denominator < angleEpsilon && denominator > -angleEpsilon {
		return coordinates[0], coordinates[len(coordinates)-1]
	}

	m := (n*sumLonLat - sumLon*sumLat) / denominator
	c := (-sumLon*sumLonLat + sumLonLon*sumLat) / denominator

	lonFirst := minLon - 1.0
	lonSecond := maxLon + 1.0
	return NewCoordinateFromFloating(lonFirst, m*lonFirst+c),
		NewCoordinateFromFloating(lonSecond, m*lonSecond+c)
}
