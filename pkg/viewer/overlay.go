package viewer

import (
	"math"

	"github.com/philipparndt/gomeasure/pkg/geo"
)

// Overlay is the shape drawn on top of the map. While a handle is dragged the canvas edits
// its own copy, which the host reads back on release.
type Overlay struct {
	Vertices []geo.Coordinate
	Closed   bool
	Center   *geo.Coordinate
	Radius   float64
	Editable bool
	Labels   []Label
}

// Label is a text anchored at a coordinate
type Label struct {
	Position geo.Coordinate
	Text     string
}

// HandleKind identifies an editing handle
type HandleKind int

const (
	HandleNone HandleKind = iota
	HandleVertex
	HandleMidpoint // Dragging it inserts a vertex after Index
	HandleCenter
	HandleRim
)

// Handle is an editing handle of the overlay
type Handle struct {
	Kind  HandleKind
	Index int
}

// Clone returns a deep copy
func (o Overlay) Clone() Overlay {
	c := o
	c.Vertices = append([]geo.Coordinate(nil), o.Vertices...)
	c.Labels = append([]Label(nil), o.Labels...)
	if o.Center != nil {
		center := *o.Center
		c.Center = &center
	}
	return c
}

// Empty reports whether there is nothing to draw
func (o Overlay) Empty() bool {
	return len(o.Vertices) == 0 && o.Center == nil
}

// Midpoints returns the edge midpoints, including the closing edge of a closed ring
func (o Overlay) Midpoints() []geo.Coordinate {
	var mids []geo.Coordinate
	for i := 1; i < len(o.Vertices); i++ {
		mids = append(mids, geo.Midpoint(o.Vertices[i-1], o.Vertices[i]))
	}
	if o.Closed && len(o.Vertices) >= 3 {
		mids = append(mids, geo.Midpoint(o.Vertices[len(o.Vertices)-1], o.Vertices[0]))
	}
	return mids
}

// RimHandle returns the position of the radius handle, east of the center
func (o Overlay) RimHandle() (geo.Coordinate, bool) {
	if o.Center == nil || o.Radius <= 0 {
		return geo.Coordinate{}, false
	}
	return geo.Offset(*o.Center, o.Radius, 90), true
}

// HandleAt returns the editing handle within radius pixels of (x, y)
func (o Overlay) HandleAt(cam *Camera, x, y, width, height, radius float64) Handle {
	if !o.Editable {
		return Handle{}
	}

	within := func(p geo.Coordinate) bool {
		px, py := cam.Project(p, width, height)
		return math.Hypot(px-x, py-y) <= radius
	}

	for i, v := range o.Vertices {
		if within(v) {
			return Handle{Kind: HandleVertex, Index: i}
		}
	}
	for i, m := range o.Midpoints() {
		if within(m) {
			return Handle{Kind: HandleMidpoint, Index: i}
		}
	}
	if o.Center != nil && within(*o.Center) {
		return Handle{Kind: HandleCenter}
	}
	if rim, ok := o.RimHandle(); ok && within(rim) {
		return Handle{Kind: HandleRim}
	}
	return Handle{}
}

// Drag moves handle to the coordinate and returns the handle to use for further moves
func (o *Overlay) Drag(h Handle, to geo.Coordinate) Handle {
	switch h.Kind {
	case HandleVertex:
		if h.Index >= 0 && h.Index < len(o.Vertices) {
			o.Vertices[h.Index] = to
		}
	case HandleMidpoint:
		at := h.Index + 1
		if at > len(o.Vertices) {
			return h
		}
		o.Vertices = append(o.Vertices[:at], append([]geo.Coordinate{to}, o.Vertices[at:]...)...)
		return Handle{Kind: HandleVertex, Index: at}
	case HandleCenter:
		o.Center = &to
	case HandleRim:
		if o.Center != nil {
			o.Radius = geo.Distance(*o.Center, to)
		}
	}
	return h
}
