package session

import (
	"fmt"

	"github.com/philipparndt/gomeasure/pkg/geo"
)

// AppendVertex adds a vertex to the polygon or polyline being drawn
func (s *Session) AppendVertex(c geo.Coordinate) Update {
	if !s.vertexTool() {
		return s.ignore(ActionAppend, ErrWrongTool.Error())
	}
	if s.mode != ModeDrawing {
		return s.ignore(ActionAppend, "not drawing")
	}
	if !c.Valid() {
		return s.ignore(ActionAppend, fmt.Sprintf("invalid coordinate %s", c))
	}

	s.setVertices(append(s.shape.Vertices(), c))
	return s.emit(ActionAppend)
}

// ClosePolygon closes the ring being drawn and starts editing it. Fewer than three vertices cannot close.
func (s *Session) ClosePolygon() Update {
	if s.tool != ToolArea {
		return s.ignore(ActionClose, ErrWrongTool.Error())
	}
	if s.mode != ModeDrawing {
		return s.ignore(ActionClose, "not drawing")
	}
	if len(s.shape.Polygon.Vertices) < 3 {
		return s.ignore(ActionClose, geo.ErrInsufficientVertices.Error())
	}

	s.shape.Polygon.Closed = true
	s.mode = ModeEditing
	return s.emit(ActionClose)
}

// RemoveVertex deletes the vertex at index. Removing the last vertex returns to idle;
// a shape that drops below its measurable size goes back to drawing.
func (s *Session) RemoveVertex(index int) Update {
	if !s.vertexTool() {
		return s.ignore(ActionRemove, ErrWrongTool.Error())
	}
	if s.mode != ModeDrawing && s.mode != ModeEditing {
		return s.ignore(ActionRemove, ErrNoActiveShape.Error())
	}
	vertices := s.shape.Vertices()
	if index < 0 || index >= len(vertices) {
		return s.ignore(ActionRemove, fmt.Sprintf("vertex %d out of range", index))
	}

	remaining := make([]geo.Coordinate, 0, len(vertices)-1)
	remaining = append(remaining, vertices[:index]...)
	remaining = append(remaining, vertices[index+1:]...)
	s.setVertices(remaining)
	s.settle()
	return s.emit(ActionRemove)
}

// MoveVertex relocates the vertex at index
func (s *Session) MoveVertex(index int, c geo.Coordinate) Update {
	if !s.vertexTool() {
		return s.ignore(ActionMove, ErrWrongTool.Error())
	}
	if s.mode != ModeDrawing && s.mode != ModeEditing {
		return s.ignore(ActionMove, ErrNoActiveShape.Error())
	}
	vertices := s.shape.Vertices()
	if index < 0 || index >= len(vertices) {
		return s.ignore(ActionMove, fmt.Sprintf("vertex %d out of range", index))
	}
	if !c.Valid() {
		return s.ignore(ActionMove, fmt.Sprintf("invalid coordinate %s", c))
	}

	vertices[index] = c
	return s.emit(ActionMove)
}

// ReplaceVertices resynchronizes the vertex list from the overlay's live path after a drag
func (s *Session) ReplaceVertices(vertices []geo.Coordinate) Update {
	if !s.vertexTool() {
		return s.ignore(ActionResync, ErrWrongTool.Error())
	}
	if s.mode != ModeDrawing && s.mode != ModeEditing {
		return s.ignore(ActionResync, ErrNoActiveShape.Error())
	}
	for _, c := range vertices {
		if !c.Valid() {
			return s.ignore(ActionResync, fmt.Sprintf("invalid coordinate %s", c))
		}
	}

	s.setVertices(append([]geo.Coordinate(nil), vertices...))
	s.settle()
	return s.emit(ActionResync)
}

// settle restores the mode invariants after vertices were removed or replaced
func (s *Session) settle() {
	vertices := s.shape.Vertices()
	switch {
	case len(vertices) == 0:
		s.reset()
	case s.tool == ToolArea && s.shape.Polygon.Closed && len(vertices) < 3:
		s.shape.Polygon.Closed = false
		s.mode = ModeDrawing
	case s.tool == ToolDistance && s.mode == ModeEditing && len(vertices) < 2:
		s.mode = ModeDrawing
	}
}

func (s *Session) setVertices(vertices []geo.Coordinate) {
	switch s.tool {
	case ToolArea:
		s.shape.Polygon.Vertices = vertices
	case ToolDistance:
		s.shape.Polyline.Vertices = vertices
	}
}

func (s *Session) vertexTool() bool {
	return s.tool == ToolArea || s.tool == ToolDistance
}
