package geo

// DefaultCircleSegments is the number of segments used to approximate a circle
const DefaultCircleSegments = 64

// CircleRing approximates a circle on the earth's surface with a closed ring of points.
// The first point (bearing 0) is repeated at the end.
func CircleRing(center Coordinate, radius float64, segments int) []Coordinate {
	if segments < 3 {
		segments = DefaultCircleSegments
	}
	if radius <= 0 {
		return []Coordinate{center}
	}

	points := make([]Coordinate, 0, segments+1)
	for i := 0; i < segments; i++ {
		bearing := float64(i) * 360.0 / float64(segments)
		points = append(points, Offset(center, radius, bearing))
	}
	return append(points, points[0])
}
