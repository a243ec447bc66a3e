package measurement

import (
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// Compute derives the measurement of a shape. Incomplete shapes yield absent values.
func Compute(s Shape) Measurement {
	var m Measurement

	switch s.Kind {
	case KindPolygon:
		if s.Polygon == nil {
			return m
		}
		vertices := s.Polygon.Vertices
		if s.Polygon.Measurable() {
			if area, err := geo.PolygonArea(vertices); err == nil {
				m.Area = value(area)
			}
			if perimeter, err := geo.PolygonPerimeter(vertices); err == nil {
				m.Perimeter = value(perimeter)
			}
		} else if len(vertices) >= 2 {
			// Open ring while drawing: report the path drawn so far
			m.TotalDistance = value(geo.PathLength(vertices))
		}

	case KindCircle:
		if s.Circle.Measurable() {
			r := s.Circle.Radius
			m.Radius = value(r)
			m.Area = value(geo.CircleArea(r))
			m.Perimeter = value(geo.CirclePerimeter(r))
		}

	case KindPolyline:
		if s.Polyline.Measurable() {
			m.TotalDistance = value(geo.PathLength(s.Polyline.Vertices))
		}
	}

	return m
}

// EnclosedArea returns the area of a polyline closed back onto its first vertex
func EnclosedArea(p *Polyline) (float64, error) {
	if p == nil {
		return 0, geo.ErrInsufficientVertices
	}
	return geo.PolygonArea(p.Vertices)
}

// FitBounds returns the region the map should fit to show the shape
func FitBounds(s Shape) (geo.Bounds, bool) {
	switch s.Kind {
	case KindCircle:
		if s.Circle.Measurable() {
			return geo.CircleBounds(*s.Circle.Center, s.Circle.Radius), true
		}
	case KindPolygon, KindPolyline:
		if b, err := geo.VertexBounds(s.Vertices()); err == nil {
			return b, true
		}
	}
	return geo.Bounds{}, false
}

func value(v float64) *float64 {
	return &v
}
