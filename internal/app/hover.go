package app

import (
	"math"

	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/internal/session"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// HitTest finds the part of the current shape under c. The closable first vertex wins,
// then the nearest vertex, the nearest edge midpoint, the circle center and the rim.
func (r *Router) HitTest(c geo.Coordinate) Hit {
	shape := r.session.Shape()
	mode := r.session.Mode()
	tolerance := r.thresholds.HitTolerance

	switch shape.Kind {
	case measurement.KindPolygon, measurement.KindPolyline:
		return hitVertices(shape, mode, c, tolerance)
	case measurement.KindCircle:
		return hitCircle(shape.Circle, c, tolerance)
	}
	return Hit{}
}

func hitVertices(shape measurement.Shape, mode session.Mode, c geo.Coordinate, tolerance float64) Hit {
	vertices := shape.Vertices()
	if len(vertices) == 0 {
		return Hit{}
	}
	closed := shape.Kind == measurement.KindPolygon && shape.Polygon.Closed

	// Closing click on an open ring
	if shape.Kind == measurement.KindPolygon && mode == session.ModeDrawing && !closed && len(vertices) >= 3 {
		if geo.Distance(c, vertices[0]) <= tolerance {
			return Hit{Kind: HitFirstVertex, Index: 0}
		}
	}

	// While drawing, the first vertex only closes; clicking it again adds a point
	first := 0
	if mode != session.ModeEditing {
		first = 1
	}
	if index, ok := nearest(c, vertices[first:], tolerance); ok {
		return Hit{Kind: HitVertex, Index: index + first}
	}

	midpoints := make([]geo.Coordinate, 0, len(vertices))
	for i := 1; i < len(vertices); i++ {
		midpoints = append(midpoints, geo.Midpoint(vertices[i-1], vertices[i]))
	}
	if closed && len(vertices) >= 3 {
		midpoints = append(midpoints, geo.Midpoint(vertices[len(vertices)-1], vertices[0]))
	}
	if index, ok := nearest(c, midpoints, tolerance); ok {
		return Hit{Kind: HitMidpoint, Index: index}
	}

	return Hit{}
}

func hitCircle(circle *measurement.Circle, c geo.Coordinate, tolerance float64) Hit {
	if circle == nil || circle.Center == nil {
		return Hit{}
	}
	d := geo.Distance(c, *circle.Center)
	if d <= tolerance {
		return Hit{Kind: HitCenter}
	}
	if circle.Radius > 0 && math.Abs(d-circle.Radius) <= tolerance {
		return Hit{Kind: HitRim}
	}
	return Hit{}
}

// nearest returns the index of the closest point within tolerance
func nearest(c geo.Coordinate, points []geo.Coordinate, tolerance float64) (int, bool) {
	best, bestDistance := -1, math.Inf(1)
	for i, p := range points {
		if d := geo.Distance(c, p); d <= tolerance && d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best, best >= 0
}

// tooltipFor maps a hit to its hover hint
func tooltipFor(hit Hit, position ScreenPosition) Tooltip {
	var text string
	switch hit.Kind {
	case HitFirstVertex:
		text = TooltipClose
	case HitVertex:
		text = TooltipVertex
	case HitMidpoint, HitRim:
		text = TooltipMidpoint
	case HitCenter:
		text = TooltipCenter
	}
	if text == "" {
		return Tooltip{}
	}
	return Tooltip{Text: text, Position: position}
}
