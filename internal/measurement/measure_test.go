package measurement

import (
	"math"
	"testing"

	"github.com/philipparndt/gomeasure/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var triangle = []geo.Coordinate{
	geo.NewCoordinate(40.0, -3.0),
	geo.NewCoordinate(40.01, -3.0),
	geo.NewCoordinate(40.0, -3.01),
}

func TestCompute_ClosedPolygon(t *testing.T) {
	m := Compute(NewPolygon(triangle, true))

	require.NotNil(t, m.Area)
	require.NotNil(t, m.Perimeter)
	assert.Nil(t, m.Radius)
	assert.Nil(t, m.TotalDistance)

	area, err := geo.PolygonArea(triangle)
	require.NoError(t, err)
	assert.InDelta(t, area, *m.Area, 1e-6)
	assert.Greater(t, *m.Area, 0.0)

	perimeter, err := geo.PolygonPerimeter(triangle)
	require.NoError(t, err)
	assert.InDelta(t, perimeter, *m.Perimeter, 1e-9)
}

func TestCompute_OpenPolygon(t *testing.T) {
	m := Compute(NewPolygon(triangle, false))
	assert.Nil(t, m.Area, "open polygon must not report an area")
	assert.Nil(t, m.Perimeter)
	require.NotNil(t, m.TotalDistance)
	assert.InDelta(t, geo.PathLength(triangle), *m.TotalDistance, 1e-9)

	assert.True(t, Compute(NewPolygon(triangle[:1], false)).Empty())
	assert.False(t, Compute(NewPolygon(triangle[:2], true)).Empty(), "two vertices still have a drawn path")
}

func TestCompute_Circle(t *testing.T) {
	center := geo.NewCoordinate(40.0, -3.0)
	m := Compute(NewCircle(&center, 1000))

	require.NotNil(t, m.Radius)
	require.NotNil(t, m.Area)
	require.NotNil(t, m.Perimeter)
	assert.Equal(t, 1000.0, *m.Radius)
	assert.InDelta(t, math.Pi*1e6, *m.Area, 1e-6)
	assert.InDelta(t, 2*math.Pi*1000, *m.Perimeter, 1e-9)

	assert.True(t, Compute(NewCircle(&center, 0)).Empty())
	assert.True(t, Compute(NewCircle(nil, 1000)).Empty())
}

func TestCompute_Polyline(t *testing.T) {
	m := Compute(NewPolyline(triangle))
	require.NotNil(t, m.TotalDistance)
	assert.Nil(t, m.Area)
	assert.InDelta(t, geo.PathLength(triangle), *m.TotalDistance, 1e-9)

	assert.True(t, Compute(NewPolyline(triangle[:1])).Empty())
	assert.True(t, Compute(Shape{}).Empty())
}

func TestEnclosedArea(t *testing.T) {
	line := NewPolyline(triangle).Polyline
	area, err := EnclosedArea(line)
	require.NoError(t, err)

	expected, _ := geo.PolygonArea(triangle)
	assert.InDelta(t, expected, area, 1e-6)

	closed := line.Closed()
	assert.True(t, closed.Measurable())

	_, err = EnclosedArea(NewPolyline(triangle[:2]).Polyline)
	assert.ErrorIs(t, err, geo.ErrInsufficientVertices)
}

func TestShape_CloneIsDeep(t *testing.T) {
	original := NewPolygon(triangle, false)
	clone := original.Clone()
	clone.Polygon.Vertices[0] = geo.NewCoordinate(0, 0)
	clone.Polygon.Closed = true

	assert.Equal(t, triangle[0], original.Polygon.Vertices[0])
	assert.False(t, original.Polygon.Closed)

	center := geo.NewCoordinate(1, 1)
	circle := NewCircle(&center, 10)
	circleClone := circle.Clone()
	circleClone.Circle.Center.Latitude = 5
	assert.Equal(t, 1.0, circle.Circle.Center.Latitude)
}

func TestShape_Measurable(t *testing.T) {
	assert.False(t, NewPolygon(triangle[:2], true).Measurable())
	assert.False(t, NewPolygon(triangle, false).Measurable())
	assert.True(t, NewPolygon(triangle, true).Measurable())
	assert.True(t, NewPolyline(triangle[:2]).Measurable())
	assert.False(t, Shape{}.Measurable())
	assert.True(t, Shape{}.Empty())
	assert.True(t, NewCircle(nil, 10).Empty())
}

func TestFitBounds(t *testing.T) {
	center := geo.NewCoordinate(40.0, -3.0)
	bounds, ok := FitBounds(NewCircle(&center, 1000))
	require.True(t, ok)
	assert.Equal(t, geo.CircleBounds(center, 1000), bounds)

	bounds, ok = FitBounds(NewPolygon(triangle, true))
	require.True(t, ok)
	for _, p := range triangle {
		assert.True(t, bounds.Contains(p))
	}

	_, ok = FitBounds(NewCircle(nil, 0))
	assert.False(t, ok)
	_, ok = FitBounds(Shape{})
	assert.False(t, ok)
}
