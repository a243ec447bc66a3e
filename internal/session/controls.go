package session

import (
	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// Controls tells the host which actions are currently available
type Controls struct {
	Draw   bool // Start drawing
	Cancel bool // Abandon the shape being drawn
	Finish bool // Stop drawing a polyline and keep it
	Clear  bool // Discard the shape or preset
	Preset bool // Choose a radius preset
}

// Controls derives the control enablement from the current state
func (s *Session) Controls() Controls {
	drawing := s.mode == ModeDrawing || s.mode == ModeAwaitingCenter
	return Controls{
		Draw:   !drawing,
		Cancel: drawing,
		Finish: s.tool == ToolDistance && s.mode == ModeDrawing && len(s.shape.Vertices()) >= 2,
		Clear:  !s.shape.Empty() || s.preset > 0,
		Preset: s.tool == ToolRadius && s.mode != ModeDrawing,
	}
}

// Render is the declarative description of what the host overlay should draw
type Render struct {
	Kind      measurement.Kind
	Vertices  []geo.Coordinate
	Closed    bool
	Center    *geo.Coordinate
	Radius    float64
	Editable  bool // Vertices or radius can be changed with handles
	Draggable bool // The whole shape can be dragged
}

// Visible reports whether there is anything to draw
func (r Render) Visible() bool {
	return len(r.Vertices) > 0 || r.Center != nil
}

// Render describes the current shape for the host overlay
func (s *Session) Render() Render {
	shape := s.shape.Clone()
	active := (s.mode == ModeDrawing || s.mode == ModeEditing) && !shape.Empty()

	r := Render{
		Kind:      shape.Kind,
		Vertices:  shape.Vertices(),
		Editable:  active,
		Draggable: active,
	}
	switch shape.Kind {
	case measurement.KindPolygon:
		r.Closed = shape.Polygon.Closed
	case measurement.KindCircle:
		r.Center = shape.Circle.Center
		r.Radius = shape.Circle.Radius
	}
	return r
}
