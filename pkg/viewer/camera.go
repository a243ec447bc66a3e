package viewer

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/philipparndt/gomeasure/pkg/geo"
)

const (
	MinZoom = 1.0
	MaxZoom = 20.0

	tileSize = 256.0
)

// resolutionAtZoomZero is the Web-Mercator meters per pixel at zoom 0 (156543.03 m/px)
var resolutionAtZoomZero = 2 * math.Pi * orb.EarthRadius / tileSize

// Camera is a Web-Mercator view onto the map
type Camera struct {
	Center geo.Coordinate
	Zoom   float64
}

// NewCamera creates a camera looking at center
func NewCamera(center geo.Coordinate, zoom float64) *Camera {
	c := &Camera{Center: center}
	c.SetZoom(zoom)
	return c
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom]
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, zoom))
}

// ZoomBy changes the zoom level by delta
func (c *Camera) ZoomBy(delta float64) {
	c.SetZoom(c.Zoom + delta)
}

// MetersPerPixel returns the projected (Mercator) meters covered by one pixel
func (c *Camera) MetersPerPixel() float64 {
	return resolutionAtZoomZero / math.Pow(2, c.Zoom)
}

// GroundResolution returns the true ground distance covered by one pixel at the camera center
func (c *Camera) GroundResolution() float64 {
	return c.MetersPerPixel() * math.Cos(c.Center.Latitude*math.Pi/180)
}

// Project converts a coordinate to screen pixels in a viewport of the given size
func (c *Camera) Project(p geo.Coordinate, width, height float64) (float64, float64) {
	m := project.WGS84.ToMercator(p.Point())
	center := project.WGS84.ToMercator(c.Center.Point())
	res := c.MetersPerPixel()

	x := width/2 + (m[0]-center[0])/res
	y := height/2 - (m[1]-center[1])/res
	return x, y
}

// Unproject converts screen pixels back to a coordinate
func (c *Camera) Unproject(x, y, width, height float64) geo.Coordinate {
	center := project.WGS84.ToMercator(c.Center.Point())
	res := c.MetersPerPixel()

	m := orb.Point{
		center[0] + (x-width/2)*res,
		center[1] - (y-height/2)*res,
	}
	return geo.FromPoint(project.Mercator.ToWGS84(m))
}

// Pan moves the view by a pixel delta, as if the map was dragged by (dx, dy)
func (c *Camera) Pan(dx, dy, width, height float64) {
	c.Center = c.Unproject(width/2-dx, height/2-dy, width, height)
}

// Fit centers the camera on bounds and picks the largest zoom that shows them entirely
func (c *Camera) Fit(bounds geo.Bounds, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}

	sw := project.WGS84.ToMercator(bounds.SouthWest.Point())
	ne := project.WGS84.ToMercator(bounds.NorthEast.Point())
	c.Center = geo.FromPoint(project.Mercator.ToWGS84(orb.Point{(sw[0] + ne[0]) / 2, (sw[1] + ne[1]) / 2}))

	spanX := math.Abs(ne[0] - sw[0])
	spanY := math.Abs(ne[1] - sw[1])
	res := math.Max(spanX/width, spanY/height)
	if res <= 0 {
		c.SetZoom(MaxZoom)
		return
	}
	c.SetZoom(math.Log2(resolutionAtZoomZero / res))
}
