package measurement

import (
	"fmt"

	"github.com/philipparndt/gomeasure/pkg/geo"
)

// MarkerKind tells a segment label from a cumulative node label
type MarkerKind int

const (
	MarkerSegment MarkerKind = iota // Placed at a segment midpoint, shows the segment length
	MarkerNode                      // Placed at a vertex, shows the distance accumulated so far
)

// Marker is a text label anchored at a map coordinate
type Marker struct {
	Kind     MarkerKind
	Position geo.Coordinate
	Meters   float64
	Text     string
}

// SegmentMarkers labels every segment of a path with its length and every vertex after
// the first with the cumulative length
func SegmentMarkers(vertices []geo.Coordinate) []Marker {
	if len(vertices) < 2 {
		return nil
	}

	markers := make([]Marker, 0, 2*(len(vertices)-1))
	total := 0.0
	for i := 1; i < len(vertices); i++ {
		start, end := vertices[i-1], vertices[i]
		segment := geo.Distance(start, end)
		total += segment

		markers = append(markers,
			Marker{
				Kind:     MarkerSegment,
				Position: geo.Midpoint(start, end),
				Meters:   segment,
				Text:     kilometers(segment),
			},
			Marker{
				Kind:     MarkerNode,
				Position: end,
				Meters:   total,
				Text:     kilometers(total),
			},
		)
	}
	return markers
}

func kilometers(meters float64) string {
	return fmt.Sprintf("%.2f km", meters/metersPerKilometer)
}
