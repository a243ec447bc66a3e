package export

import (
	"fmt"

	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/pkg/geo"
	"github.com/twpayne/go-polyline"
)

// EncodePolyline encodes the shape's vertices in the Google encoded polyline format.
// A closed polygon repeats its first vertex; a circle is encoded as its ring.
func EncodePolyline(shape measurement.Shape) (string, error) {
	if shape.Empty() {
		return "", ErrEmptyShape
	}

	var vertices []geo.Coordinate
	switch shape.Kind {
	case measurement.KindPolygon:
		vertices = shape.Polygon.Vertices
		if shape.Polygon.Closed && len(vertices) >= 3 {
			vertices = append(append([]geo.Coordinate(nil), vertices...), vertices[0])
		}
	case measurement.KindCircle:
		vertices = geo.CircleRing(*shape.Circle.Center, shape.Circle.Radius, geo.DefaultCircleSegments)
	case measurement.KindPolyline:
		vertices = shape.Polyline.Vertices
	}

	coords := make([][]float64, len(vertices))
	for i, v := range vertices {
		coords[i] = []float64{v.Latitude, v.Longitude}
	}
	return string(polyline.EncodeCoords(coords)), nil
}

// DecodePolyline decodes a Google encoded polyline into coordinates
func DecodePolyline(encoded string) ([]geo.Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}

	vertices := make([]geo.Coordinate, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		vertices = append(vertices, geo.NewCoordinate(c[0], c[1]))
	}
	return vertices, nil
}
