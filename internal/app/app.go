package app

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gomeasure/internal/config"
	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/internal/session"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// App wires the drawing session, the pointer router and the configuration together.
// A host (desktop canvas or script replay) drives it from a single goroutine.
type App struct {
	Config  *config.Config
	Session *session.Session
	Router  *Router
	logger  *slog.Logger
}

// New creates an app from configuration
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	tool, err := session.ParseTool(cfg.Session.Tool)
	if err != nil {
		return nil, fmt.Errorf("session tool: %w", err)
	}

	s := session.New(tool, session.WithLogger(logger.With("component", "session")))
	thresholds := Thresholds{
		HitTolerance:  cfg.Tolerance.HitMeters,
		MoveThreshold: cfg.Tolerance.MoveMeters,
	}

	return &App{
		Config:  cfg,
		Session: s,
		Router:  NewRouter(s, thresholds, logger.With("component", "router")),
		logger:  logger,
	}, nil
}

// Presets returns the configured radius presets
func (a *App) Presets() []float64 {
	return append([]float64(nil), a.Config.RadiusPresets...)
}

// PixelThresholds converts the configured pixel tolerance into ground meters at the given
// resolution. It returns false when the configuration uses fixed ground distances.
func (a *App) PixelThresholds(metersPerPixel float64) (Thresholds, bool) {
	px := a.Config.Tolerance.Pixels
	if px <= 0 || metersPerPixel <= 0 {
		return Thresholds{}, false
	}
	hit := px * metersPerPixel
	return Thresholds{HitTolerance: hit, MoveThreshold: hit * a.Config.Tolerance.MoveMeters / a.Config.Tolerance.HitMeters}, true
}

// Lines presents the current measurement
func (a *App) Lines() []measurement.Line {
	return measurement.Present(a.Session.Measurement())
}

// Markers labels the segments of the current polyline or polygon
func (a *App) Markers() []measurement.Marker {
	shape := a.Session.Shape()
	vertices := shape.Vertices()
	if shape.Kind == measurement.KindPolygon && shape.Polygon.Closed && len(vertices) >= 3 {
		vertices = append(vertices, vertices[0])
	}
	return measurement.SegmentMarkers(vertices)
}

// FitBounds returns the region the host should fit into view, if any
func (a *App) FitBounds() (geo.Bounds, bool) {
	return measurement.FitBounds(a.Session.Shape())
}

// Home returns the configured initial map center
func (a *App) Home() geo.Coordinate {
	return geo.NewCoordinate(a.Config.View.Latitude, a.Config.View.Longitude)
}
