package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

var (
	// ErrNoActiveShape is reported for edits that arrive while no shape exists
	ErrNoActiveShape = errors.New("no active shape")
	// ErrWrongTool is reported for operations that do not apply to the active tool
	ErrWrongTool = errors.New("operation not supported by the active tool")
)

// Mode is the drawing lifecycle state
type Mode int

const (
	ModeIdle           Mode = iota
	ModeAwaitingCenter      // Radius preset chosen, waiting for the center click
	ModeDrawing
	ModeEditing
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAwaitingCenter:
		return "awaiting-center"
	case ModeDrawing:
		return "drawing"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// Tool selects which shape type the session draws
type Tool int

const (
	ToolArea     Tool = iota // Polygon
	ToolRadius               // Circle
	ToolDistance             // Polyline
)

// String returns the tool name
func (t Tool) String() string {
	switch t {
	case ToolArea:
		return "area"
	case ToolRadius:
		return "radius"
	case ToolDistance:
		return "distance"
	default:
		return "unknown"
	}
}

// ParseTool parses a tool name; "polygon", "circle" and "polyline" are accepted as aliases
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "area", "polygon":
		return ToolArea, nil
	case "radius", "circle":
		return ToolRadius, nil
	case "distance", "polyline", "path":
		return ToolDistance, nil
	}
	return ToolArea, fmt.Errorf("unknown tool %q", name)
}

// Session owns the single shape being drawn or edited and its lifecycle
type Session struct {
	tool   Tool
	mode   Mode
	shape  measurement.Shape
	preset float64 // Selected radius preset in meters, 0 if none
	logger *slog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for transition and ignored-event messages
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an idle session for the given tool
func New(tool Tool, opts ...Option) *Session {
	s := &Session{
		tool:   tool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.shape = emptyShape(tool)
	return s
}

// Mode returns the current lifecycle state
func (s *Session) Mode() Mode { return s.mode }

// Tool returns the active tool
func (s *Session) Tool() Tool { return s.tool }

// Preset returns the selected radius preset, 0 if none
func (s *Session) Preset() float64 { return s.preset }

// Shape returns a copy of the current shape
func (s *Session) Shape() measurement.Shape { return s.shape.Clone() }

// Measurement derives the measurement of the current shape
func (s *Session) Measurement() measurement.Measurement {
	return measurement.Compute(s.shape)
}

// Snapshot returns the current state as an Update without changing anything
func (s *Session) Snapshot() Update {
	return Update{
		Action:      ActionNone,
		Mode:        s.mode,
		Tool:        s.tool,
		Shape:       s.shape.Clone(),
		Measurement: s.Measurement(),
		Controls:    s.Controls(),
		Render:      s.Render(),
	}
}

// StartDraw begins drawing a new shape, discarding any existing one.
// It is a no-op while already drawing or while waiting for a circle center.
func (s *Session) StartDraw() Update {
	if s.mode == ModeDrawing || s.mode == ModeAwaitingCenter {
		return s.ignore(ActionStart, "already drawing")
	}
	s.reset()
	s.mode = ModeDrawing
	return s.emit(ActionStart)
}

// CancelDraw abandons the shape being drawn
func (s *Session) CancelDraw() Update {
	if s.mode != ModeDrawing && s.mode != ModeAwaitingCenter {
		return s.ignore(ActionCancel, "not drawing")
	}
	s.reset()
	return s.emit(ActionCancel)
}

// StopDraw finishes drawing. A polyline with at least two vertices is kept for editing,
// anything else is discarded as on cancel.
func (s *Session) StopDraw() Update {
	if s.mode != ModeDrawing {
		return s.ignore(ActionStop, "not drawing")
	}

	switch {
	case s.tool == ToolDistance && s.shape.Polyline.Measurable():
		s.mode = ModeEditing
	case s.tool == ToolRadius && s.shape.Circle.Measurable():
		s.mode = ModeEditing
	default:
		s.reset()
	}
	return s.emit(ActionStop)
}

// Clear discards the shape and preset and returns to idle. Calling it twice is the same as calling it once.
func (s *Session) Clear() Update {
	changed := s.mode != ModeIdle || !s.shape.Empty() || s.preset != 0
	s.reset()
	if !changed {
		u := s.Snapshot()
		u.Action = ActionClear
		return u
	}
	return s.emit(ActionClear)
}

// SetTool switches the shape type, clearing the session first
func (s *Session) SetTool(tool Tool) Update {
	changed := tool != s.tool || s.mode != ModeIdle || !s.shape.Empty() || s.preset != 0
	s.tool = tool
	s.reset()
	if !changed {
		return s.ignore(ActionTool, "tool already active")
	}
	return s.emit(ActionTool)
}

// SelectRadiusPreset chooses the radius for the next circle. A positive radius discards any
// circle and waits for a center click; 0 deselects the preset.
func (s *Session) SelectRadiusPreset(radius float64) (Update, error) {
	if s.tool != ToolRadius {
		return s.ignore(ActionPreset, "preset needs the radius tool"), ErrWrongTool
	}
	if err := geo.ValidateRadius(radius); err != nil {
		return s.ignore(ActionPreset, "invalid preset"), fmt.Errorf("select preset: %w", err)
	}
	if s.mode == ModeDrawing {
		return s.ignore(ActionPreset, "free-hand circle in progress"), nil
	}

	if radius == 0 {
		s.preset = 0
		if s.mode == ModeAwaitingCenter {
			s.mode = ModeIdle
		}
		return s.emit(ActionPreset), nil
	}

	s.reset()
	s.preset = radius
	s.mode = ModeAwaitingCenter
	return s.emit(ActionPreset), nil
}

// reset returns to idle with an empty shape for the active tool
func (s *Session) reset() {
	s.mode = ModeIdle
	s.preset = 0
	s.shape = emptyShape(s.tool)
}

func (s *Session) emit(action Action) Update {
	u := s.Snapshot()
	u.Action = action
	u.changed = true
	s.logger.Debug("session transition",
		"action", action.String(),
		"tool", s.tool.String(),
		"mode", s.mode.String(),
		"vertices", len(s.shape.Vertices()))
	return u
}

func (s *Session) ignore(action Action, reason string) Update {
	s.logger.Debug("session event ignored",
		"action", action.String(),
		"tool", s.tool.String(),
		"mode", s.mode.String(),
		"reason", reason)
	return s.Snapshot()
}

func emptyShape(tool Tool) measurement.Shape {
	switch tool {
	case ToolRadius:
		return measurement.NewCircle(nil, 0)
	case ToolDistance:
		return measurement.NewPolyline(nil)
	default:
		return measurement.NewPolygon(nil, false)
	}
}
