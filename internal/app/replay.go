package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/internal/session"
	"github.com/philipparndt/gomeasure/pkg/geo"
	"gopkg.in/yaml.v3"
)

// ErrUnknownAction is returned for script steps with an unrecognised action
var ErrUnknownAction = errors.New("unknown action")

// Script is a recorded sequence of host events
type Script struct {
	Tool  string `yaml:"tool"`
	Steps []Step `yaml:"steps"`
}

// Step is one host event. At is [lat, lng].
type Step struct {
	Action  string         `yaml:"action"`
	At      []float64      `yaml:"at,omitempty"`
	Screen  []float32      `yaml:"screen,omitempty"`
	Radius  float64        `yaml:"radius,omitempty"`
	Tool    string         `yaml:"tool,omitempty"`
	Overlay *OverlayScript `yaml:"overlay,omitempty"`
}

// OverlayScript is the overlay geometry reported with a pointer-up
type OverlayScript struct {
	Vertices [][]float64 `yaml:"vertices,omitempty"`
	Center   []float64   `yaml:"center,omitempty"`
	Radius   float64     `yaml:"radius,omitempty"`
}

// StepResult records what a step did
type StepResult struct {
	Index  int
	Step   Step
	Result Result
	Lines  []measurement.Line
}

// String summarises the step for console output
func (r StepResult) String() string {
	var parts []string
	for _, l := range r.Lines {
		parts = append(parts, l.String())
	}
	summary := fmt.Sprintf("%3d %-7s %-9s mode=%s", r.Index+1, r.Step.Action, r.Result.Update.Action, r.Result.Update.Mode)
	if r.Result.Hit.Kind != HitNone {
		summary += " hit=" + r.Result.Hit.Kind.String()
	}
	if r.Result.Tooltip.Text != "" {
		summary += fmt.Sprintf(" tooltip=%q", r.Result.Tooltip.Text)
	}
	return summary + " | " + strings.Join(parts, "; ")
}

// ParseScript decodes a YAML replay script
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, step := range script.Steps {
		if step.Action == "" {
			return nil, fmt.Errorf("step %d: missing action", i+1)
		}
	}
	return &script, nil
}

// Replay runs every step of script through the router in order, the way a host delivers
// events. It stops at the first failing step and returns the results so far.
func (a *App) Replay(script *Script) ([]StepResult, error) {
	if script.Tool != "" {
		tool, err := session.ParseTool(script.Tool)
		if err != nil {
			return nil, fmt.Errorf("script tool: %w", err)
		}
		a.Session.SetTool(tool)
	}

	results := make([]StepResult, 0, len(script.Steps))
	for i, step := range script.Steps {
		res, err := a.step(step)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		results = append(results, StepResult{
			Index:  i,
			Step:   step,
			Result: res,
			Lines:  measurement.Present(res.Update.Measurement),
		})
		a.logger.Debug("replay step", "index", i+1, "action", step.Action, "result", res.Update.Action.String())
	}
	return results, nil
}

func (a *App) step(step Step) (Result, error) {
	s := a.Session
	snapshot := func(u session.Update) Result { return Result{Gesture: GestureNone, Update: u} }

	switch strings.ToLower(step.Action) {
	case "start":
		return snapshot(s.StartDraw()), nil
	case "cancel":
		return snapshot(s.CancelDraw()), nil
	case "finish", "stop":
		return snapshot(s.StopDraw()), nil
	case "clear":
		return snapshot(s.Clear()), nil
	case "tool":
		tool, err := session.ParseTool(step.Tool)
		if err != nil {
			return Result{}, err
		}
		return snapshot(s.SetTool(tool)), nil
	case "preset":
		u, err := s.SelectRadiusPreset(step.Radius)
		return snapshot(u), err
	case "radius":
		u, err := s.SetRadius(step.Radius)
		return snapshot(u), err
	}

	at, err := coordinate(step.At)
	if err != nil {
		return Result{}, err
	}

	switch strings.ToLower(step.Action) {
	case "click":
		return a.Router.OnMapClick(at), nil
	case "down":
		return a.Router.OnPointerDown(at), nil
	case "up":
		overlay, err := step.Overlay.snapshot()
		if err != nil {
			return Result{}, err
		}
		res := a.Router.OnPointerUp(at, overlay)
		if res.NeedsMapClick() {
			return a.Router.OnMapClick(at), nil
		}
		return res, nil
	case "move":
		var screen ScreenPosition
		if len(step.Screen) == 2 {
			screen = ScreenPosition{X: step.Screen[0], Y: step.Screen[1]}
		}
		return a.Router.OnPointerMove(at, screen), nil
	}

	return Result{}, fmt.Errorf("%w %q", ErrUnknownAction, step.Action)
}

func (o *OverlayScript) snapshot() (OverlaySnapshot, error) {
	var overlay OverlaySnapshot
	if o == nil {
		return overlay, nil
	}
	for _, v := range o.Vertices {
		c, err := coordinate(v)
		if err != nil {
			return OverlaySnapshot{}, fmt.Errorf("overlay vertex: %w", err)
		}
		overlay.Vertices = append(overlay.Vertices, c)
	}
	if o.Center != nil {
		c, err := coordinate(o.Center)
		if err != nil {
			return OverlaySnapshot{}, fmt.Errorf("overlay center: %w", err)
		}
		overlay.Center = &c
	}
	overlay.Radius = o.Radius
	return overlay, nil
}

func coordinate(latLng []float64) (geo.Coordinate, error) {
	if len(latLng) != 2 {
		return geo.Coordinate{}, fmt.Errorf("expected [lat, lng], got %v", latLng)
	}
	c := geo.NewCoordinate(latLng[0], latLng[1])
	if !c.Valid() {
		return geo.Coordinate{}, fmt.Errorf("coordinate out of range: %s", c)
	}
	return c, nil
}
