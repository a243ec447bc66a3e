package app

import (
	"log/slog"

	"github.com/philipparndt/gomeasure/internal/session"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// Router classifies raw pointer events against the session's shape and dispatches
// the matching session operation
type Router struct {
	session    *session.Session
	thresholds Thresholds
	logger     *slog.Logger
	InteractionState
}

// NewRouter creates a router for s. Non-positive thresholds fall back to the defaults.
func NewRouter(s *session.Session, th Thresholds, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		session:    s,
		thresholds: th.withDefaults(),
		logger:     logger,
	}
}

// Thresholds returns the active thresholds
func (r *Router) Thresholds() Thresholds {
	return r.thresholds
}

// SetThresholds replaces the thresholds, e.g. after the host converted a pixel tolerance at a new zoom
func (r *Router) SetThresholds(th Thresholds) {
	r.thresholds = th.withDefaults()
}

// OnMapClick handles a click on the map
func (r *Router) OnMapClick(c geo.Coordinate) Result {
	hit := r.HitTest(c)
	if u, ok := r.applyVertexHit(hit); ok {
		return r.result(GestureClick, u, hit)
	}

	var u session.Update
	switch r.session.Mode() {
	case session.ModeDrawing:
		u = r.drawClick(c)
	case session.ModeAwaitingCenter:
		u = r.session.PlaceCircle(c)
	default:
		r.logger.Debug("map click ignored", "mode", r.session.Mode().String(), "at", c.String())
		u = r.session.Snapshot()
	}
	return r.result(GestureClick, u, Hit{})
}

// drawClick handles a click that hit nothing while drawing
func (r *Router) drawClick(c geo.Coordinate) session.Update {
	if r.session.Tool() != session.ToolRadius {
		return r.session.AppendVertex(c)
	}

	// Free-hand circle: the first click sets the center, the next one the radius
	circle := r.session.Shape().Circle
	if circle == nil || circle.Center == nil {
		return r.session.BeginCircle(c)
	}
	if geo.Distance(*circle.Center, c) <= r.thresholds.MoveThreshold {
		return r.session.Snapshot()
	}
	return r.session.CompleteCircle(c)
}

// OnPointerDown records where a press started
func (r *Router) OnPointerDown(c geo.Coordinate) Result {
	down := c
	r.down = &down
	r.circleDrag = false

	u := r.session.Snapshot()
	if r.freehandCircle() {
		if circle := r.session.Shape().Circle; circle == nil || circle.Center == nil {
			u = r.session.BeginCircle(c)
			r.circleDrag = u.Changed()
		}
	}
	return r.result(GesturePress, u, Hit{})
}

// OnPointerUp ends a press. A short press is a click and is hit-tested against the
// vertices only; a longer one is a drag and resynchronizes the shape from overlay.
func (r *Router) OnPointerUp(c geo.Coordinate, overlay OverlaySnapshot) Result {
	down := c
	if r.down != nil {
		down = *r.down
	}
	circleDrag := r.circleDrag
	r.down = nil
	r.circleDrag = false

	moved := geo.Distance(down, c)
	if moved <= r.thresholds.MoveThreshold {
		hit := r.HitTest(c)
		if u, ok := r.applyVertexHit(hit); ok {
			return r.result(GestureClick, u, hit)
		}
		return r.result(GestureClick, r.session.Snapshot(), Hit{})
	}

	r.logger.Debug("drag", "from", down.String(), "to", c.String(), "meters", moved)

	if circleDrag {
		return r.result(GestureDrag, r.session.CompleteCircle(c), Hit{})
	}
	return r.result(GestureDrag, r.resync(overlay), Hit{})
}

// OnPointerMove updates a free-hand radius drag and the hover tooltip
func (r *Router) OnPointerMove(c geo.Coordinate, screen ScreenPosition) Result {
	u := r.session.Snapshot()
	if r.circleDrag && r.down != nil && geo.Distance(*r.down, c) > r.thresholds.MoveThreshold {
		u = r.session.DragRadius(c)
	}

	hit := r.HitTest(c)
	r.tooltip = tooltipFor(hit, screen)
	return Result{Gesture: GestureHover, Update: u, Tooltip: r.tooltip, Hit: hit}
}

// Tooltip returns the last hover hint
func (r *Router) Tooltip() Tooltip {
	return r.tooltip
}

// applyVertexHit closes or deletes on a vertex hit
func (r *Router) applyVertexHit(hit Hit) (session.Update, bool) {
	switch hit.Kind {
	case HitFirstVertex:
		return r.session.ClosePolygon(), true
	case HitVertex:
		return r.session.RemoveVertex(hit.Index), true
	}
	return session.Update{}, false
}

// resync copies the overlay's live geometry back into the session
func (r *Router) resync(overlay OverlaySnapshot) session.Update {
	if overlay.Empty() {
		return r.session.Snapshot()
	}
	if r.session.Tool() != session.ToolRadius {
		// A vertex shape never resyncs from an overlay without vertices
		if len(overlay.Vertices) == 0 {
			r.logger.Debug("vertex resync ignored", "reason", "overlay has no vertices")
			return r.session.Snapshot()
		}
		return r.session.ReplaceVertices(overlay.Vertices)
	}
	if overlay.Center == nil {
		return r.session.Snapshot()
	}
	u, err := r.session.ResyncCircle(*overlay.Center, overlay.Radius)
	if err != nil {
		r.logger.Debug("circle resync ignored", "error", err)
	}
	return u
}

func (r *Router) freehandCircle() bool {
	return r.session.Tool() == session.ToolRadius && r.session.Mode() == session.ModeDrawing
}

func (r *Router) result(g Gesture, u session.Update, hit Hit) Result {
	if hit.Kind == HitNone {
		r.tooltip = Tooltip{}
	}
	return Result{Gesture: g, Update: u, Tooltip: r.tooltip, Hit: hit}
}
