package session

import (
	"fmt"

	"github.com/philipparndt/gomeasure/pkg/geo"
)

// PlaceCircle creates a circle at center with the selected preset radius
func (s *Session) PlaceCircle(center geo.Coordinate) Update {
	if s.tool != ToolRadius {
		return s.ignore(ActionPlace, ErrWrongTool.Error())
	}
	if s.mode != ModeAwaitingCenter || s.preset <= 0 {
		return s.ignore(ActionPlace, "no radius preset selected")
	}
	if !center.Valid() {
		return s.ignore(ActionPlace, fmt.Sprintf("invalid coordinate %s", center))
	}

	s.shape.Circle.Center = &center
	s.shape.Circle.Radius = s.preset
	s.mode = ModeEditing
	return s.emit(ActionPlace)
}

// BeginCircle sets the center of a free-hand circle
func (s *Session) BeginCircle(center geo.Coordinate) Update {
	if s.tool != ToolRadius {
		return s.ignore(ActionBegin, ErrWrongTool.Error())
	}
	if s.mode != ModeDrawing {
		return s.ignore(ActionBegin, "not drawing")
	}
	if !center.Valid() {
		return s.ignore(ActionBegin, fmt.Sprintf("invalid coordinate %s", center))
	}

	s.shape.Circle.Center = &center
	s.shape.Circle.Radius = 0
	return s.emit(ActionBegin)
}

// DragRadius updates the live radius of a free-hand circle while the pointer moves
func (s *Session) DragRadius(edge geo.Coordinate) Update {
	if !s.drawingCircle() {
		return s.ignore(ActionDrag, ErrNoActiveShape.Error())
	}

	s.shape.Circle.Radius = geo.Distance(*s.shape.Circle.Center, edge)
	return s.emit(ActionDrag)
}

// CompleteCircle fixes the radius of a free-hand circle and starts editing it.
// A zero radius keeps drawing.
func (s *Session) CompleteCircle(edge geo.Coordinate) Update {
	if !s.drawingCircle() {
		return s.ignore(ActionComplete, ErrNoActiveShape.Error())
	}

	s.shape.Circle.Radius = geo.Distance(*s.shape.Circle.Center, edge)
	if s.shape.Circle.Radius > 0 {
		s.mode = ModeEditing
	}
	return s.emit(ActionComplete)
}

// SetRadius changes the radius of the circle being edited
func (s *Session) SetRadius(radius float64) (Update, error) {
	if !s.editingCircle() {
		return s.ignore(ActionRadius, ErrNoActiveShape.Error()), ErrNoActiveShape
	}
	if err := editingRadius(radius); err != nil {
		return s.ignore(ActionRadius, "invalid radius"), fmt.Errorf("set radius: %w", err)
	}

	s.shape.Circle.Radius = radius
	return s.emit(ActionRadius), nil
}

// MoveCenter moves the circle being edited
func (s *Session) MoveCenter(center geo.Coordinate) Update {
	if !s.editingCircle() {
		return s.ignore(ActionCenter, ErrNoActiveShape.Error())
	}
	if !center.Valid() {
		return s.ignore(ActionCenter, fmt.Sprintf("invalid coordinate %s", center))
	}

	s.shape.Circle.Center = &center
	return s.emit(ActionCenter)
}

// ResyncCircle takes center and radius from the overlay after a drag
func (s *Session) ResyncCircle(center geo.Coordinate, radius float64) (Update, error) {
	if !s.editingCircle() {
		return s.ignore(ActionResync, ErrNoActiveShape.Error()), ErrNoActiveShape
	}
	if err := editingRadius(radius); err != nil {
		return s.ignore(ActionResync, "invalid radius"), fmt.Errorf("resync circle: %w", err)
	}
	if !center.Valid() {
		return s.ignore(ActionResync, "invalid center"), fmt.Errorf("resync circle: invalid center %s", center)
	}

	s.shape.Circle.Center = &center
	s.shape.Circle.Radius = radius
	return s.emit(ActionResync), nil
}

// editingRadius also rejects zero; a circle in Editing keeps a positive radius
func editingRadius(radius float64) error {
	if err := geo.ValidateRadius(radius); err != nil {
		return err
	}
	if radius == 0 {
		return geo.ErrInvalidRadius
	}
	return nil
}

func (s *Session) drawingCircle() bool {
	return s.tool == ToolRadius && s.mode == ModeDrawing && s.shape.Circle.Center != nil
}

func (s *Session) editingCircle() bool {
	return s.tool == ToolRadius && s.mode == ModeEditing && s.shape.Circle.Center != nil
}
