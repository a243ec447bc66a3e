package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// fitMargin is the relative margin added around a shape when fitting it into view
const fitMargin = 1.1

// Bounds is a rectangular region given by its south-west and north-east corners
type Bounds struct {
	SouthWest Coordinate `json:"sw"`
	NorthEast Coordinate `json:"ne"`
}

// Bound returns the bounds as an orb bound
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{Min: b.SouthWest.Point(), Max: b.NorthEast.Point()}
}

// Center returns the center of the bounds
func (b Bounds) Center() Coordinate {
	return FromPoint(b.Bound().Center())
}

// Contains reports whether a coordinate lies within the bounds
func (b Bounds) Contains(c Coordinate) bool {
	return b.Bound().Contains(c.Point())
}

// Extend returns bounds grown to include the coordinate
func (b Bounds) Extend(c Coordinate) Bounds {
	bound := b.Bound().Extend(c.Point())
	return Bounds{SouthWest: FromPoint(bound.Min), NorthEast: FromPoint(bound.Max)}
}

// CircleBounds returns a box around a circle whose edges lie 1.1·radius from the center.
// The corners sit on the 225° and 45° diagonals.
func CircleBounds(center Coordinate, radius float64) Bounds {
	diagonal := radius * fitMargin * math.Sqrt2
	sw := Offset(center, diagonal, 225)
	ne := Offset(center, diagonal, 45)
	return boundsFromCorners(sw, ne)
}

// VertexBounds returns a box around the vertices padded by 10% of its diagonal
func VertexBounds(points []Coordinate) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, ErrInsufficientVertices
	}

	mp := make(orb.MultiPoint, len(points))
	for i, p := range points {
		mp[i] = p.Point()
	}
	bound := mp.Bound()
	sw := FromPoint(bound.Min)
	ne := FromPoint(bound.Max)

	pad := Distance(sw, ne) * (fitMargin - 1)
	if pad == 0 {
		// A single point still gets a visible region
		return CircleBounds(sw, 100), nil
	}
	return boundsFromCorners(Offset(sw, pad, 225), Offset(ne, pad, 45)), nil
}

// boundsFromCorners builds normalized bounds from two opposite corners
func boundsFromCorners(a, b Coordinate) Bounds {
	bound := orb.Bound{Min: a.Point(), Max: a.Point()}.Extend(b.Point())
	return Bounds{SouthWest: FromPoint(bound.Min), NorthEast: FromPoint(bound.Max)}
}
