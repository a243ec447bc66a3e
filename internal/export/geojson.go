package export

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// GeoJSON encodes the shape as a GeoJSON feature with its measurements as properties.
// Circles become 64-segment polygons with the center and radius kept as properties.
func GeoJSON(shape measurement.Shape, m measurement.Measurement) ([]byte, error) {
	geometry, err := orbGeometry(shape)
	if err != nil {
		return nil, err
	}

	feature := geojson.NewFeature(geometry)
	feature.Properties["kind"] = shape.Kind.String()
	if shape.Kind == measurement.KindCircle {
		center := shape.Circle.Center
		feature.Properties["center"] = []float64{center.Longitude, center.Latitude}
	}
	setProperty(feature, "area_m2", m.Area)
	setProperty(feature, "perimeter_m", m.Perimeter)
	setProperty(feature, "radius_m", m.Radius)
	setProperty(feature, "total_distance_m", m.TotalDistance)

	data, err := feature.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode geojson: %w", err)
	}
	return data, nil
}

func orbGeometry(shape measurement.Shape) (orb.Geometry, error) {
	if shape.Empty() {
		return nil, ErrEmptyShape
	}

	switch shape.Kind {
	case measurement.KindPolygon:
		if shape.Polygon.Closed && len(shape.Polygon.Vertices) >= 3 {
			return orb.Polygon{geo.Ring(shape.Polygon.Vertices)}, nil
		}
		return geo.LineString(shape.Polygon.Vertices), nil
	case measurement.KindCircle:
		if shape.Circle.Radius <= 0 {
			return shape.Circle.Center.Point(), nil
		}
		ring := geo.CircleRing(*shape.Circle.Center, shape.Circle.Radius, geo.DefaultCircleSegments)
		return orb.Polygon{geo.Ring(ring)}, nil
	case measurement.KindPolyline:
		return geo.LineString(shape.Polyline.Vertices), nil
	}
	return nil, ErrEmptyShape
}

func setProperty(f *geojson.Feature, key string, v *float64) {
	if v != nil {
		f.Properties[key] = *v
	}
}
