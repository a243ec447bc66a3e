package measurement

import (
	"github.com/philipparndt/gomeasure/pkg/geo"
)

// Kind identifies which variant of a Shape is set
type Kind int

const (
	KindNone Kind = iota
	KindPolygon
	KindCircle
	KindPolyline
)

// String returns the name of the shape kind
func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	case KindPolyline:
		return "polyline"
	default:
		return "none"
	}
}

// Polygon is an ordered ring of vertices; it is measurable once closed with 3+ vertices
type Polygon struct {
	Vertices []geo.Coordinate
	Closed   bool
}

// Measurable reports whether the polygon encloses an area
func (p *Polygon) Measurable() bool {
	return p != nil && p.Closed && len(p.Vertices) >= 3
}

// Circle has an optional center and a radius in meters
type Circle struct {
	Center *geo.Coordinate
	Radius float64
}

// Measurable reports whether the circle has a center and a positive radius
func (c *Circle) Measurable() bool {
	return c != nil && c.Center != nil && c.Radius > 0
}

// Polyline is an open path of vertices
type Polyline struct {
	Vertices []geo.Coordinate
}

// Measurable reports whether the polyline has a length
func (p *Polyline) Measurable() bool {
	return p != nil && len(p.Vertices) >= 2
}

// Closed returns the polyline artificially closed into a polygon
func (p *Polyline) Closed() *Polygon {
	if p == nil {
		return nil
	}
	return &Polygon{Vertices: cloneCoordinates(p.Vertices), Closed: true}
}

// Shape is a tagged union of the measurable shapes; only the field matching Kind is set
type Shape struct {
	Kind     Kind
	Polygon  *Polygon
	Circle   *Circle
	Polyline *Polyline
}

// NewPolygon creates a polygon shape
func NewPolygon(vertices []geo.Coordinate, closed bool) Shape {
	return Shape{Kind: KindPolygon, Polygon: &Polygon{Vertices: cloneCoordinates(vertices), Closed: closed}}
}

// NewCircle creates a circle shape; a nil center is allowed while drawing
func NewCircle(center *geo.Coordinate, radius float64) Shape {
	c := &Circle{Radius: radius}
	if center != nil {
		cc := *center
		c.Center = &cc
	}
	return Shape{Kind: KindCircle, Circle: c}
}

// NewPolyline creates a polyline shape
func NewPolyline(vertices []geo.Coordinate) Shape {
	return Shape{Kind: KindPolyline, Polyline: &Polyline{Vertices: cloneCoordinates(vertices)}}
}

// Measurable reports whether the shape yields its primary measurement
func (s Shape) Measurable() bool {
	switch s.Kind {
	case KindPolygon:
		return s.Polygon.Measurable()
	case KindCircle:
		return s.Circle.Measurable()
	case KindPolyline:
		return s.Polyline.Measurable()
	}
	return false
}

// Empty reports whether the shape holds no geometry at all
func (s Shape) Empty() bool {
	switch s.Kind {
	case KindPolygon:
		return s.Polygon == nil || len(s.Polygon.Vertices) == 0
	case KindCircle:
		return s.Circle == nil || s.Circle.Center == nil
	case KindPolyline:
		return s.Polyline == nil || len(s.Polyline.Vertices) == 0
	}
	return true
}

// Vertices returns the vertex list of a polygon or polyline
func (s Shape) Vertices() []geo.Coordinate {
	switch s.Kind {
	case KindPolygon:
		if s.Polygon != nil {
			return s.Polygon.Vertices
		}
	case KindPolyline:
		if s.Polyline != nil {
			return s.Polyline.Vertices
		}
	}
	return nil
}

// Clone returns a deep copy of the shape
func (s Shape) Clone() Shape {
	switch s.Kind {
	case KindPolygon:
		if s.Polygon != nil {
			return NewPolygon(s.Polygon.Vertices, s.Polygon.Closed)
		}
	case KindCircle:
		if s.Circle != nil {
			return NewCircle(s.Circle.Center, s.Circle.Radius)
		}
	case KindPolyline:
		if s.Polyline != nil {
			return NewPolyline(s.Polyline.Vertices)
		}
	}
	return Shape{Kind: s.Kind}
}

// Measurement holds the derived measurements of a shape; nil fields are absent
type Measurement struct {
	Area          *float64 // m²
	Perimeter     *float64 // m
	Radius        *float64 // m
	TotalDistance *float64 // m
}

// Empty reports whether every measurement is absent
func (m Measurement) Empty() bool {
	return m.Area == nil && m.Perimeter == nil && m.Radius == nil && m.TotalDistance == nil
}

func cloneCoordinates(in []geo.Coordinate) []geo.Coordinate {
	if in == nil {
		return nil
	}
	out := make([]geo.Coordinate, len(in))
	copy(out, in)
	return out
}
