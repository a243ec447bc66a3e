package app

import (
	"github.com/philipparndt/gomeasure/internal/session"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// Thresholds holds the router distances in ground meters
type Thresholds struct {
	HitTolerance  float64 // Maximum distance for a pointer to be "on" a vertex, midpoint or handle
	MoveThreshold float64 // Maximum down/up distance still treated as a click
}

// DefaultThresholds returns the zoom-invariant defaults
func DefaultThresholds() Thresholds {
	return Thresholds{HitTolerance: 10, MoveThreshold: 8}
}

// withDefaults replaces unusable values with the defaults
func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if !(t.HitTolerance > 0) {
		t.HitTolerance = d.HitTolerance
	}
	if !(t.MoveThreshold > 0) {
		t.MoveThreshold = d.MoveThreshold
	}
	return t
}

// ScreenPosition is a pointer position in host pixels
type ScreenPosition struct {
	X float32
	Y float32
}

// OverlaySnapshot is the host overlay's live geometry read back after a drag
type OverlaySnapshot struct {
	Vertices []geo.Coordinate
	Center   *geo.Coordinate
	Radius   float64
}

// Empty reports whether the overlay carried no geometry
func (o OverlaySnapshot) Empty() bool {
	return len(o.Vertices) == 0 && o.Center == nil
}

// Gesture classifies the pointer event that produced a Result
type Gesture int

const (
	GestureNone Gesture = iota
	GestureClick
	GesturePress
	GestureDrag
	GestureHover
)

// String returns the gesture name
func (g Gesture) String() string {
	switch g {
	case GestureClick:
		return "click"
	case GesturePress:
		return "press"
	case GestureDrag:
		return "drag"
	case GestureHover:
		return "hover"
	default:
		return "none"
	}
}

// HitKind tells which part of the shape a coordinate is on
type HitKind int

const (
	HitNone        HitKind = iota
	HitFirstVertex         // First vertex of an open polygon that can be closed
	HitVertex
	HitMidpoint // Midpoint of the edge starting at Index
	HitCenter
	HitRim
)

// String returns the hit kind name
func (k HitKind) String() string {
	switch k {
	case HitFirstVertex:
		return "first-vertex"
	case HitVertex:
		return "vertex"
	case HitMidpoint:
		return "midpoint"
	case HitCenter:
		return "center"
	case HitRim:
		return "rim"
	default:
		return "none"
	}
}

// Hit is the result of a hit-test
type Hit struct {
	Kind  HitKind
	Index int
}

// Tooltip is the hover hint shown next to the pointer; empty Text clears it
type Tooltip struct {
	Text     string
	Position ScreenPosition
}

const (
	TooltipClose    = "Click to close"
	TooltipVertex   = "Drag to move / click to delete"
	TooltipMidpoint = "Drag to change"
	TooltipCenter   = "Drag to move"
)

// Result is returned by every router entry point
type Result struct {
	Gesture Gesture
	Update  session.Update
	Tooltip Tooltip
	Hit     Hit
}

// NeedsMapClick reports whether a pointer-up click missed every vertex, so the host
// should deliver it to OnMapClick
func (r Result) NeedsMapClick() bool {
	return r.Gesture == GestureClick && r.Hit.Kind == HitNone
}

// InteractionState holds pointer tracking between events
type InteractionState struct {
	down       *geo.Coordinate // Pointer-down coordinate, nil when no button is held
	circleDrag bool            // Free-hand circle radius is being dragged
	tooltip    Tooltip
}
