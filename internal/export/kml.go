package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/pkg/geo"
	"github.com/twpayne/go-kml"
)

// KML writes the shape as a KML document with one placemark whose description holds the
// presented measurement
func KML(w io.Writer, name string, shape measurement.Shape, m measurement.Measurement) error {
	geometry, err := kmlGeometry(shape)
	if err != nil {
		return err
	}

	lines := measurement.Present(m)
	description := make([]string, len(lines))
	for i, l := range lines {
		description[i] = l.String()
	}

	doc := kml.KML(
		kml.Document(
			kml.Name(name),
			kml.Placemark(
				kml.Name(shape.Kind.String()),
				kml.Description(strings.Join(description, "\n")),
				geometry,
			),
		),
	)
	if err := doc.WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("failed to write kml: %w", err)
	}
	return nil
}

func kmlGeometry(shape measurement.Shape) (kml.Element, error) {
	if shape.Empty() {
		return nil, ErrEmptyShape
	}

	switch shape.Kind {
	case measurement.KindPolygon:
		if shape.Polygon.Closed && len(shape.Polygon.Vertices) >= 3 {
			return polygonElement(shape.Polygon.Vertices), nil
		}
		return kml.LineString(kml.Coordinates(kmlCoordinates(shape.Polygon.Vertices)...)), nil
	case measurement.KindCircle:
		if shape.Circle.Radius <= 0 {
			return kml.Point(kml.Coordinates(kmlCoordinates([]geo.Coordinate{*shape.Circle.Center})...)), nil
		}
		return polygonElement(geo.CircleRing(*shape.Circle.Center, shape.Circle.Radius, geo.DefaultCircleSegments)), nil
	case measurement.KindPolyline:
		return kml.LineString(kml.Coordinates(kmlCoordinates(shape.Polyline.Vertices)...)), nil
	}
	return nil, ErrEmptyShape
}

func polygonElement(vertices []geo.Coordinate) kml.Element {
	ring := geo.Ring(vertices)
	coordinates := make([]kml.Coordinate, len(ring))
	for i, p := range ring {
		coordinates[i] = kml.Coordinate{Lon: p.Lon(), Lat: p.Lat()}
	}
	return kml.Polygon(
		kml.OuterBoundaryIs(
			kml.LinearRing(kml.Coordinates(coordinates...)),
		),
	)
}

func kmlCoordinates(vertices []geo.Coordinate) []kml.Coordinate {
	coordinates := make([]kml.Coordinate, len(vertices))
	for i, v := range vertices {
		coordinates[i] = kml.Coordinate{Lon: v.Longitude, Lat: v.Latitude}
	}
	return coordinates
}
