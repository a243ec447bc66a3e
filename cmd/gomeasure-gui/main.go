package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gomeasure/internal/app"
	"github.com/philipparndt/gomeasure/internal/config"
	"github.com/philipparndt/gomeasure/internal/export"
	"github.com/philipparndt/gomeasure/internal/logging"
	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/internal/session"
	"github.com/philipparndt/gomeasure/pkg/geo"
	"github.com/philipparndt/gomeasure/pkg/viewer"
	"github.com/philipparndt/gomeasure/version"
)

const noPreset = "Free-hand"

var toolOptions = []string{"Area", "Radius", "Distance"}

// GUI hosts the measurement app in a fyne window
type GUI struct {
	window fyne.Window
	app    *app.App
	canvas *viewer.MapCanvas
	logger *slog.Logger

	toolSelect   *widget.Select
	presetSelect *widget.Select
	radiusEntry  *widget.Entry
	drawButton   *widget.Button
	cancelButton *widget.Button
	finishButton *widget.Button
	clearButton  *widget.Button
	fitButton    *widget.Button
	exportButton *widget.Button
	modeLabel    *widget.Label
	measureLabel *widget.Label

	syncing bool // Set while widgets are updated from the session
}

func main() {
	var configPath string
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	measureApp, err := app.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := fyneapp.New()
	w := a.NewWindow("GoMeasure " + version.GetVersion())

	gui := &GUI{window: w, app: measureApp, logger: logger}
	gui.setupMainUI()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (g *GUI) setupMainUI() {
	cfg := g.app.Config
	cam := viewer.NewCamera(g.app.Home(), cfg.View.Zoom)
	g.canvas = viewer.NewMapCanvas(cam, viewer.PointerHandlers{
		Down: g.onPointerDown,
		Up:   g.onPointerUp,
		Move: g.onPointerMove,
		Zoom: g.onZoom,
	})

	g.toolSelect = widget.NewSelect(toolOptions, func(choice string) {
		if g.syncing {
			return
		}
		tool, err := session.ParseTool(choice)
		if err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		g.apply(g.app.Session.SetTool(tool))
	})

	presetOptions := []string{noPreset}
	for _, r := range g.app.Presets() {
		presetOptions = append(presetOptions, config.PresetLabel(r))
	}
	g.presetSelect = widget.NewSelect(presetOptions, func(choice string) {
		if g.syncing {
			return
		}
		g.selectPreset(choice)
	})

	g.radiusEntry = widget.NewEntry()
	g.radiusEntry.SetPlaceHolder("Radius in meters")
	g.radiusEntry.OnSubmitted = g.submitRadius

	g.drawButton = widget.NewButton("Draw", func() { g.apply(g.app.Session.StartDraw()) })
	g.cancelButton = widget.NewButton("Cancel", func() { g.apply(g.app.Session.CancelDraw()) })
	g.finishButton = widget.NewButton("Finish", func() { g.apply(g.app.Session.StopDraw()) })
	g.clearButton = widget.NewButton("Clear", func() { g.apply(g.app.Session.Clear()) })
	g.fitButton = widget.NewButton("Fit to Shape", g.fit)
	g.exportButton = widget.NewButton("Export GeoJSON", g.showExport)

	g.modeLabel = widget.NewLabel("")
	g.measureLabel = widget.NewLabel("")
	g.measureLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Press Draw, then click the map to add points\n" +
			"• Click the first point to close an area\n" +
			"• Drag points or midpoints to edit\n" +
			"• Click a point while editing to remove it\n" +
			"• Shift+drag to pan, scroll to zoom",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Tool:"),
		g.toolSelect,
		widget.NewLabel("Radius preset:"),
		g.presetSelect,
		g.radiusEntry,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, g.drawButton, g.cancelButton, g.finishButton, g.clearButton),
		g.fitButton,
		widget.NewSeparator(),
		widget.NewLabel("Measurements:"),
		g.modeLabel,
		g.measureLabel,
		widget.NewSeparator(),
		g.exportButton,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		g.canvas,   // center
	)
	g.window.SetContent(content)

	g.onZoom(cam)
	g.apply(g.app.Session.Snapshot())
}

// apply renders a session update into the canvas and side panel
func (g *GUI) apply(u session.Update) {
	g.syncing = true
	defer func() { g.syncing = false }()

	g.toolSelect.SetSelectedIndex(int(u.Tool))
	if preset := g.app.Session.Preset(); preset > 0 {
		g.presetSelect.SetSelected(config.PresetLabel(preset))
	} else {
		g.presetSelect.SetSelected(noPreset)
	}

	enable(g.drawButton, u.Controls.Draw)
	enable(g.cancelButton, u.Controls.Cancel)
	enable(g.finishButton, u.Controls.Finish)
	enable(g.clearButton, u.Controls.Clear)
	enable(g.presetSelect, u.Controls.Preset)
	enable(g.radiusEntry, u.Tool == session.ToolRadius && u.Mode == session.ModeEditing)
	enable(g.fitButton, u.Shape.Measurable())
	enable(g.exportButton, !u.Shape.Empty())

	g.modeLabel.SetText(fmt.Sprintf("Mode: %s", u.Mode))
	lines := make([]string, 0, 4)
	for _, line := range measurement.Present(u.Measurement) {
		lines = append(lines, line.String())
	}
	g.measureLabel.SetText(strings.Join(lines, "\n"))

	g.canvas.SetOverlay(g.overlay(u.Render))
}

func (g *GUI) overlay(r session.Render) viewer.Overlay {
	o := viewer.Overlay{
		Vertices: r.Vertices,
		Closed:   r.Closed,
		Center:   r.Center,
		Radius:   r.Radius,
		Editable: r.Editable,
	}
	if r.Kind == measurement.KindCircle {
		return o
	}
	for _, marker := range g.app.Markers() {
		if marker.Kind == measurement.MarkerSegment || r.Kind == measurement.KindPolyline {
			o.Labels = append(o.Labels, viewer.Label{Position: marker.Position, Text: marker.Text})
		}
	}
	return o
}

func (g *GUI) onPointerDown(c geo.Coordinate) {
	res := g.app.Router.OnPointerDown(c)
	if res.Update.Changed() {
		g.apply(res.Update)
	}
}

func (g *GUI) onPointerUp(c geo.Coordinate, live viewer.Overlay) {
	snapshot := app.OverlaySnapshot{
		Vertices: live.Vertices,
		Center:   live.Center,
		Radius:   live.Radius,
	}
	res := g.app.Router.OnPointerUp(c, snapshot)
	if res.NeedsMapClick() {
		res = g.app.Router.OnMapClick(c)
	}
	g.apply(g.app.Session.Snapshot())
	g.logger.Debug("pointer up", "gesture", res.Gesture, "action", res.Update.Action, "hit", res.Hit.Kind)
}

func (g *GUI) onPointerMove(c geo.Coordinate, pos fyne.Position) {
	res := g.app.Router.OnPointerMove(c, app.ScreenPosition{X: pos.X, Y: pos.Y})
	if res.Update.Changed() {
		g.apply(res.Update)
	}
	g.canvas.SetTooltip(res.Tooltip.Text, fyne.NewPos(res.Tooltip.Position.X, res.Tooltip.Position.Y))
}

// onZoom keeps the hit tolerance constant on screen when configured in pixels
func (g *GUI) onZoom(cam *viewer.Camera) {
	if th, ok := g.app.PixelThresholds(cam.GroundResolution()); ok {
		g.app.Router.SetThresholds(th)
	}
}

func (g *GUI) selectPreset(choice string) {
	radius := 0.0
	for _, r := range g.app.Presets() {
		if config.PresetLabel(r) == choice {
			radius = r
			break
		}
	}
	u, err := g.app.Session.SelectRadiusPreset(radius)
	if err != nil {
		dialog.ShowError(err, g.window)
		u = g.app.Session.Snapshot()
	}
	g.apply(u)
}

func (g *GUI) submitRadius(text string) {
	radius, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		dialog.ShowError(fmt.Errorf("invalid radius %q", text), g.window)
		return
	}
	u, err := g.app.Session.SetRadius(radius)
	if err != nil {
		dialog.ShowError(err, g.window)
		return
	}
	g.radiusEntry.SetText("")
	g.apply(u)
}

func (g *GUI) fit() {
	if b, ok := g.app.FitBounds(); ok {
		g.canvas.FitBounds(b)
	}
}

func (g *GUI) showExport() {
	var sb strings.Builder
	if err := export.Write(&sb, export.FormatGeoJSON, g.app.Session.Shape(), g.app.Session.Measurement()); err != nil {
		dialog.ShowError(err, g.window)
		return
	}

	text := widget.NewMultiLineEntry()
	text.SetText(sb.String())
	text.Wrapping = fyne.TextWrapBreak

	scroll := container.NewVScroll(text)
	scroll.SetMinSize(fyne.NewSize(500, 300))
	dialog.ShowCustom("GeoJSON", "Close", scroll, g.window)
}

type disableable interface {
	Enable()
	Disable()
}

func enable(w disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}
