package geo

import (
	"errors"
	"math"

	"github.com/paulmach/orb/geo"
)

var (
	// ErrInsufficientVertices is returned when a shape has too few vertices to be measured
	ErrInsufficientVertices = errors.New("insufficient vertices")

	// ErrInvalidRadius is returned for negative radii
	ErrInvalidRadius = errors.New("invalid radius")
)

// Distance returns the great-circle distance between two coordinates in meters
func Distance(a, b Coordinate) float64 {
	if a == b {
		return 0
	}
	return geo.DistanceHaversine(a.Point(), b.Point())
}

// PathLength returns the sum of the distances between consecutive points in meters
func PathLength(points []Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// SegmentLengths returns the length of every segment of the path
func SegmentLengths(points []Coordinate) []float64 {
	if len(points) < 2 {
		return nil
	}
	lengths := make([]float64, len(points)-1)
	for i := 1; i < len(points); i++ {
		lengths[i-1] = Distance(points[i-1], points[i])
	}
	return lengths
}

// PolygonArea returns the spherical area enclosed by the points in square meters.
// The ring is closed implicitly.
func PolygonArea(points []Coordinate) (float64, error) {
	if len(points) < 3 {
		return 0, ErrInsufficientVertices
	}
	return math.Abs(geo.Area(Ring(points))), nil
}

// PolygonPerimeter returns the length of the closed ring through the points in meters
func PolygonPerimeter(points []Coordinate) (float64, error) {
	if len(points) < 2 {
		return 0, ErrInsufficientVertices
	}
	return PathLength(points) + Distance(points[len(points)-1], points[0]), nil
}

// ValidateRadius rejects negative and non-finite radii
func ValidateRadius(r float64) error {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return ErrInvalidRadius
	}
	return nil
}

// CircleArea returns π·r²
func CircleArea(r float64) float64 {
	return math.Pi * r * r
}

// CirclePerimeter returns 2π·r
func CirclePerimeter(r float64) float64 {
	return 2 * math.Pi * r
}

// Midpoint returns the point halfway along the great circle between a and b
func Midpoint(a, b Coordinate) Coordinate {
	if a == b {
		return a
	}
	return FromPoint(geo.Midpoint(a.Point(), b.Point()))
}

// Offset returns the point reached by travelling distance meters from a coordinate
// along the given bearing (degrees clockwise from north)
func Offset(from Coordinate, distance, bearing float64) Coordinate {
	return FromPoint(geo.PointAtBearingAndDistance(from.Point(), bearing, distance))
}
