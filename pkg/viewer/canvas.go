package viewer

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// handleRadius is the pixel distance within which a pointer grabs an editing handle
const handleRadius = 8.0

var (
	backgroundColor = color.RGBA{R: 236, G: 240, B: 235, A: 255}
	gridColor       = color.RGBA{R: 210, G: 215, B: 208, A: 255}
	shapeColor      = color.RGBA{R: 30, G: 100, B: 220, A: 255}
	handleColor     = color.White
	midpointColor   = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	labelColor      = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// PointerHandlers receive the map pointer events of a MapCanvas
type PointerHandlers struct {
	Down func(c geo.Coordinate)
	Up   func(c geo.Coordinate, live Overlay)
	Move func(c geo.Coordinate, pos fyne.Position)
	Zoom func(cam *Camera)
}

// MapCanvas is a fyne widget showing an overlay on a Web-Mercator plane. Primary-button
// presses go to the handlers; the middle button or Shift+drag pans the view.
type MapCanvas struct {
	widget.BaseWidget
	camera   *Camera
	overlay  Overlay // Last overlay set by the host
	live     Overlay // Copy edited while a handle is dragged
	handlers PointerHandlers

	tooltip    string
	tooltipPos fyne.Position

	pressed  bool
	panning  bool
	handle   Handle
	lastPos  fyne.Position
	fitAfter *geo.Bounds // Fit requested before the first layout
}

// NewMapCanvas creates a map canvas
func NewMapCanvas(cam *Camera, handlers PointerHandlers) *MapCanvas {
	m := &MapCanvas{
		camera:   cam,
		handlers: handlers,
	}
	m.ExtendBaseWidget(m)
	return m
}

// Camera returns the canvas camera
func (m *MapCanvas) Camera() *Camera {
	return m.camera
}

// SetOverlay replaces the drawn overlay
func (m *MapCanvas) SetOverlay(o Overlay) {
	m.overlay = o.Clone()
	if m.handle.Kind == HandleNone {
		m.live = m.overlay.Clone()
	}
	m.Refresh()
}

// SetTooltip shows text next to the pointer; empty text hides it
func (m *MapCanvas) SetTooltip(text string, pos fyne.Position) {
	m.tooltip = text
	m.tooltipPos = pos
	m.Refresh()
}

// FitBounds zooms and centers the view on bounds
func (m *MapCanvas) FitBounds(b geo.Bounds) {
	size := m.Size()
	if size.Width <= 0 || size.Height <= 0 {
		m.fitAfter = &b
		return
	}
	m.camera.Fit(b, float64(size.Width), float64(size.Height))
	m.zoomed()
	m.Refresh()
}

func (m *MapCanvas) coordinateAt(pos fyne.Position) geo.Coordinate {
	size := m.Size()
	return m.camera.Unproject(float64(pos.X), float64(pos.Y), float64(size.Width), float64(size.Height))
}

func (m *MapCanvas) project(c geo.Coordinate) fyne.Position {
	size := m.Size()
	x, y := m.camera.Project(c, float64(size.Width), float64(size.Height))
	return fyne.NewPos(float32(x), float32(y))
}

// MouseDown starts a press, grabbing an editing handle if one is under the pointer
func (m *MapCanvas) MouseDown(e *desktop.MouseEvent) {
	m.lastPos = e.Position
	if e.Button == desktop.MouseButtonTertiary || e.Modifier&fyne.KeyModifierShift != 0 {
		m.panning = true
		return
	}
	if e.Button != desktop.MouseButtonPrimary {
		return
	}

	m.pressed = true
	size := m.Size()
	m.live = m.overlay.Clone()
	m.handle = m.live.HandleAt(m.camera, float64(e.Position.X), float64(e.Position.Y),
		float64(size.Width), float64(size.Height), handleRadius)

	if m.handlers.Down != nil {
		m.handlers.Down(m.coordinateAt(e.Position))
	}
}

// MouseUp ends a press and hands the live overlay to the host
func (m *MapCanvas) MouseUp(e *desktop.MouseEvent) {
	if m.panning {
		m.panning = false
		return
	}
	if !m.pressed {
		return
	}
	m.pressed = false
	m.handle = Handle{}

	live := m.live.Clone()
	if m.handlers.Up != nil {
		m.handlers.Up(m.coordinateAt(e.Position), live)
	}
}

// MouseIn is required by desktop.Hoverable
func (m *MapCanvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved pans, drags a handle, or reports a hover
func (m *MapCanvas) MouseMoved(e *desktop.MouseEvent) {
	delta := e.Position.Subtract(m.lastPos)
	m.lastPos = e.Position

	if m.panning {
		size := m.Size()
		m.camera.Pan(float64(delta.X), float64(delta.Y), float64(size.Width), float64(size.Height))
		m.Refresh()
		return
	}

	c := m.coordinateAt(e.Position)
	if m.pressed && m.handle.Kind != HandleNone {
		m.handle = m.live.Drag(m.handle, c)
		m.Refresh()
	}
	if m.handlers.Move != nil {
		m.handlers.Move(c, e.Position)
	}
}

// MouseOut hides the tooltip
func (m *MapCanvas) MouseOut() {
	m.SetTooltip("", fyne.Position{})
}

// Scrolled zooms the view
func (m *MapCanvas) Scrolled(e *fyne.ScrollEvent) {
	m.camera.ZoomBy(float64(e.Scrolled.DY) / 100)
	m.zoomed()
	m.Refresh()
}

func (m *MapCanvas) zoomed() {
	if m.handlers.Zoom != nil {
		m.handlers.Zoom(m.camera)
	}
}

// CreateRenderer creates the renderer for the widget
func (m *MapCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &mapRenderer{canvas: m, background: canvas.NewRectangle(backgroundColor)}
}

// build turns the live overlay into canvas objects
func (m *MapCanvas) build(size fyne.Size) []fyne.CanvasObject {
	objects := m.grid(size)
	o := m.live
	if m.handle.Kind == HandleNone {
		o = m.overlay
	}

	path := o.Vertices
	if o.Center != nil && o.Radius > 0 {
		path = geo.CircleRing(*o.Center, o.Radius, geo.DefaultCircleSegments)
	} else if o.Closed && len(path) >= 3 {
		path = append(append([]geo.Coordinate(nil), path...), path[0])
	}
	for i := 1; i < len(path); i++ {
		line := canvas.NewLine(shapeColor)
		line.StrokeWidth = 2
		line.Position1 = m.project(path[i-1])
		line.Position2 = m.project(path[i])
		objects = append(objects, line)
	}

	if o.Editable {
		for _, v := range o.Vertices {
			objects = append(objects, marker(m.project(v), handleColor, 10))
		}
		for _, mid := range o.Midpoints() {
			objects = append(objects, marker(m.project(mid), midpointColor, 8))
		}
		if rim, ok := o.RimHandle(); ok {
			objects = append(objects, marker(m.project(rim), handleColor, 10))
		}
	}
	if o.Center != nil {
		objects = append(objects, marker(m.project(*o.Center), handleColor, 10))
	}

	for _, l := range o.Labels {
		text := canvas.NewText(l.Text, labelColor)
		text.TextSize = theme.CaptionTextSize()
		text.Move(m.project(l.Position).Add(fyne.NewPos(6, -16)))
		objects = append(objects, text)
	}

	if m.tooltip != "" {
		tip := canvas.NewText(m.tooltip, labelColor)
		tip.TextStyle = fyne.TextStyle{Bold: true}
		tip.Move(m.tooltipPos.Add(fyne.NewPos(12, 12)))
		objects = append(objects, tip)
	}
	return objects
}

// grid draws a graticule so panning and zooming are visible without map tiles
func (m *MapCanvas) grid(size fyne.Size) []fyne.CanvasObject {
	var lines []fyne.CanvasObject
	const step = 64
	origin := m.project(geo.Coordinate{})
	x0 := float32(math.Mod(float64(origin.X), step))
	y0 := float32(math.Mod(float64(origin.Y), step))
	if x0 < 0 {
		x0 += step
	}
	if y0 < 0 {
		y0 += step
	}
	for x := x0; x < size.Width; x += step {
		l := canvas.NewLine(gridColor)
		l.Position1 = fyne.NewPos(x, 0)
		l.Position2 = fyne.NewPos(x, size.Height)
		lines = append(lines, l)
	}
	for y := y0; y < size.Height; y += step {
		l := canvas.NewLine(gridColor)
		l.Position1 = fyne.NewPos(0, y)
		l.Position2 = fyne.NewPos(size.Width, y)
		lines = append(lines, l)
	}
	return lines
}

func marker(pos fyne.Position, fill color.Color, size float32) *canvas.Circle {
	c := canvas.NewCircle(fill)
	c.StrokeColor = shapeColor
	c.StrokeWidth = 2
	c.Resize(fyne.NewSize(size, size))
	c.Move(pos.Subtract(fyne.NewPos(size/2, size/2)))
	return c
}

// mapRenderer implements fyne.WidgetRenderer
type mapRenderer struct {
	canvas     *MapCanvas
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *mapRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if b := r.canvas.fitAfter; b != nil && size.Width > 0 && size.Height > 0 {
		r.canvas.fitAfter = nil
		r.canvas.camera.Fit(*b, float64(size.Width), float64(size.Height))
		r.canvas.zoomed()
	}
	r.rebuild(size)
}

func (r *mapRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *mapRenderer) Refresh() {
	r.rebuild(r.canvas.Size())
	canvas.Refresh(r.canvas)
}

func (r *mapRenderer) rebuild(size fyne.Size) {
	r.objects = append([]fyne.CanvasObject{r.background}, r.canvas.build(size)...)
}

func (r *mapRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *mapRenderer) Destroy() {}
