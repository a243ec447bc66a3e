package session

import (
	"math"
	"testing"

	"github.com/philipparndt/gomeasure/internal/measurement"
	"github.com/philipparndt/gomeasure/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	a = geo.NewCoordinate(40.0, -3.0)
	b = geo.NewCoordinate(40.01, -3.0)
	c = geo.NewCoordinate(40.0, -3.01)
	d = geo.NewCoordinate(40.01, -3.01)
)

func drawPolygon(t *testing.T, points ...geo.Coordinate) *Session {
	t.Helper()
	s := New(ToolArea)
	require.True(t, s.StartDraw().Changed())
	for _, p := range points {
		require.Equal(t, ActionAppend, s.AppendVertex(p).Action)
	}
	return s
}

func TestNew_StartsIdle(t *testing.T) {
	s := New(ToolDistance)
	assert.Equal(t, ModeIdle, s.Mode())
	assert.Equal(t, ToolDistance, s.Tool())
	assert.True(t, s.Shape().Empty())
	assert.True(t, s.Measurement().Empty())
	assert.Equal(t, Controls{Draw: true}, s.Controls())
}

func TestStartDraw_IsIdempotent(t *testing.T) {
	s := drawPolygon(t, a, b)

	u := s.StartDraw()
	assert.False(t, u.Changed())
	assert.Equal(t, ActionNone, u.Action)
	assert.Len(t, s.Shape().Vertices(), 2, "second start must not clear the shape being drawn")
}

func TestStartDraw_ClearsExistingShape(t *testing.T) {
	s := drawPolygon(t, a, b, c)
	s.ClosePolygon()
	require.Equal(t, ModeEditing, s.Mode())

	u := s.StartDraw()
	assert.Equal(t, ModeDrawing, u.Mode)
	assert.True(t, u.Shape.Empty())
}

func TestClosePolygon_NeedsThreeVertices(t *testing.T) {
	s := drawPolygon(t, a, b)
	u := s.ClosePolygon()
	assert.False(t, u.Changed())
	assert.Equal(t, ModeDrawing, s.Mode())

	s.AppendVertex(c)
	u = s.ClosePolygon()
	require.True(t, u.Changed())
	assert.Equal(t, ModeEditing, u.Mode)
	assert.True(t, u.Shape.Polygon.Closed)
	assert.Len(t, u.Shape.Polygon.Vertices, 3)
	assert.True(t, u.Shape.Measurable())
	require.NotNil(t, u.Measurement.Area)
	assert.Greater(t, *u.Measurement.Area, 0.0)
}

func TestAppendVertex_OnlyWhileDrawing(t *testing.T) {
	s := New(ToolArea)
	u := s.AppendVertex(a)
	assert.False(t, u.Changed())
	assert.True(t, s.Shape().Empty())

	s.StartDraw()
	u = s.AppendVertex(geo.NewCoordinate(91, 0))
	assert.False(t, u.Changed(), "invalid coordinates are ignored")
}

func TestCancelDraw_Discards(t *testing.T) {
	s := drawPolygon(t, a, b, c)
	u := s.CancelDraw()

	assert.Equal(t, ActionCancel, u.Action)
	assert.Equal(t, ModeIdle, u.Mode)
	assert.True(t, u.Shape.Empty(), "a partial polygon is never auto-closed")
	assert.True(t, u.Measurement.Empty())

	assert.False(t, s.CancelDraw().Changed())
}

func TestClear_IsIdempotent(t *testing.T) {
	s := drawPolygon(t, a, b, c)
	s.ClosePolygon()

	first := s.Clear()
	second := s.Clear()

	assert.True(t, first.Changed())
	assert.False(t, second.Changed())
	for _, u := range []Update{first, second} {
		assert.Equal(t, ModeIdle, u.Mode)
		assert.True(t, u.Measurement.Empty())
		assert.True(t, u.Shape.Empty())
		assert.Equal(t, Controls{Draw: true}, u.Controls)
	}
	assert.Equal(t, first.Shape, second.Shape)
}

func TestClear_FromEveryMode(t *testing.T) {
	drawing := drawPolygon(t, a, b)

	editing := drawPolygon(t, a, b, c)
	editing.ClosePolygon()

	awaiting := New(ToolRadius)
	_, err := awaiting.SelectRadiusPreset(500)
	require.NoError(t, err)

	for _, s := range []*Session{drawing, editing, awaiting, New(ToolDistance)} {
		u := s.Clear()
		assert.Equal(t, ModeIdle, u.Mode)
		assert.True(t, u.Measurement.Empty())
		assert.Equal(t, 0.0, s.Preset())
	}
}

func TestRemoveVertex(t *testing.T) {
	s := drawPolygon(t, a, b, c, d)
	s.ClosePolygon()

	u := s.RemoveVertex(1)
	require.True(t, u.Changed())
	assert.Equal(t, []geo.Coordinate{a, c, d}, u.Shape.Polygon.Vertices)
	assert.True(t, u.Shape.Polygon.Closed)
	assert.Equal(t, ModeEditing, u.Mode)

	u = s.RemoveVertex(0)
	assert.Equal(t, []geo.Coordinate{c, d}, u.Shape.Polygon.Vertices)
	assert.False(t, u.Shape.Polygon.Closed, "a ring below three vertices reopens")
	assert.Equal(t, ModeDrawing, u.Mode)
	assert.Nil(t, u.Measurement.Area)

	s.RemoveVertex(0)
	u = s.RemoveVertex(0)
	assert.Equal(t, ModeIdle, u.Mode)
	assert.True(t, u.Shape.Empty())

	assert.False(t, s.RemoveVertex(0).Changed())
}

func TestRemoveVertex_OutOfRange(t *testing.T) {
	s := drawPolygon(t, a, b)
	assert.False(t, s.RemoveVertex(2).Changed())
	assert.False(t, s.RemoveVertex(-1).Changed())
	assert.Len(t, s.Shape().Vertices(), 2)
}

func TestMoveVertex(t *testing.T) {
	s := drawPolygon(t, a, b, c)
	u := s.MoveVertex(2, d)
	require.True(t, u.Changed())
	assert.Equal(t, d, u.Shape.Polygon.Vertices[2])
	assert.False(t, s.MoveVertex(5, d).Changed())
}

func TestReplaceVertices(t *testing.T) {
	s := drawPolygon(t, a, b, c)
	s.ClosePolygon()

	u := s.ReplaceVertices([]geo.Coordinate{a, b, d})
	require.True(t, u.Changed())
	assert.Equal(t, []geo.Coordinate{a, b, d}, u.Shape.Polygon.Vertices)
	assert.Equal(t, ModeEditing, u.Mode)

	u = s.ReplaceVertices(nil)
	assert.Equal(t, ModeIdle, u.Mode)
}

func TestShape_IsACopy(t *testing.T) {
	s := drawPolygon(t, a, b)
	shape := s.Shape()
	shape.Polygon.Vertices[0] = d
	assert.Equal(t, a, s.Shape().Vertices()[0])
}

func TestPolyline_Lifecycle(t *testing.T) {
	s := New(ToolDistance)
	s.StartDraw()
	s.AppendVertex(a)
	assert.False(t, s.Controls().Finish)

	s.AppendVertex(b)
	s.AppendVertex(c)
	require.True(t, s.Controls().Finish)

	u := s.StopDraw()
	assert.Equal(t, ModeEditing, u.Mode)
	require.NotNil(t, u.Measurement.TotalDistance)
	assert.InDelta(t, geo.Distance(a, b)+geo.Distance(b, c), *u.Measurement.TotalDistance, 1e-9)

	u = s.RemoveVertex(0)
	assert.Equal(t, ModeEditing, u.Mode)
	u = s.RemoveVertex(0)
	assert.Equal(t, ModeDrawing, u.Mode, "a single vertex is no longer a path")
}

func TestPolyline_StopWithOneVertexDiscards(t *testing.T) {
	s := New(ToolDistance)
	s.StartDraw()
	s.AppendVertex(a)

	u := s.StopDraw()
	assert.Equal(t, ModeIdle, u.Mode)
	assert.True(t, u.Shape.Empty())
}

func TestPolyline_ReversalKeepsLength(t *testing.T) {
	forward := New(ToolDistance)
	forward.StartDraw()
	for _, p := range []geo.Coordinate{a, b, c} {
		forward.AppendVertex(p)
	}
	backward := New(ToolDistance)
	backward.StartDraw()
	for _, p := range []geo.Coordinate{c, b, a} {
		backward.AppendVertex(p)
	}

	f := forward.Measurement().TotalDistance
	r := backward.Measurement().TotalDistance
	require.NotNil(t, f)
	require.NotNil(t, r)
	assert.InDelta(t, *f, *r, 1e-6)
}

func TestSetTool_Clears(t *testing.T) {
	s := drawPolygon(t, a, b, c)

	u := s.SetTool(ToolRadius)
	assert.Equal(t, ActionTool, u.Action)
	assert.Equal(t, ToolRadius, u.Tool)
	assert.Equal(t, ModeIdle, u.Mode)
	assert.Equal(t, measurement.KindCircle, u.Shape.Kind)
	assert.True(t, u.Shape.Empty())

	assert.False(t, s.SetTool(ToolRadius).Changed())
}

func TestParseTool(t *testing.T) {
	tool, err := ParseTool("Circle")
	require.NoError(t, err)
	assert.Equal(t, ToolRadius, tool)

	tool, err = ParseTool("distance")
	require.NoError(t, err)
	assert.Equal(t, ToolDistance, tool)

	_, err = ParseTool("hexagon")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	s := drawPolygon(t, a, b, c)
	r := s.Render()
	assert.Equal(t, measurement.KindPolygon, r.Kind)
	assert.Equal(t, []geo.Coordinate{a, b, c}, r.Vertices)
	assert.False(t, r.Closed)
	assert.True(t, r.Editable)
	assert.True(t, r.Visible())

	s.Clear()
	r = s.Render()
	assert.False(t, r.Visible())
	assert.False(t, r.Editable)
	assert.False(t, math.IsNaN(r.Radius))
}
