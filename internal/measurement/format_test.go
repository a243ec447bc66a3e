package measurement

import (
	"testing"

	"github.com/philipparndt/gomeasure/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestFormatLength(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "N/A"},
		{ptr(0), "0.00 m"},
		{ptr(999.5), "999.50 m"},
		{ptr(1000), "1.00 km"},
		{ptr(12345.678), "12.35 km"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLength(tt.in))
	}
}

func TestFormatArea(t *testing.T) {
	tests := []struct {
		in   *float64
		want string
	}{
		{nil, "N/A"},
		{ptr(250.126), "250.13 m²"},
		{ptr(999999), "999999.00 m²"},
		{ptr(1000000), "1.00 km²"},
		{ptr(3141592.65), "3.14 km²"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatArea(tt.in))
	}
}

func TestDualFormats(t *testing.T) {
	assert.Equal(t, "3141593 m² | 3.14 km²", DualArea(ptr(3141592.653589793)))
	assert.Equal(t, "1000 m | 1.00 km", DualLength(ptr(1000)))
	assert.Equal(t, "6283 m | 6.28 km", DualLength(ptr(6283.185307)))
	assert.Equal(t, NotAvailable, DualArea(nil))
	assert.Equal(t, NotAvailable, DualLength(nil))
}

func TestPresent(t *testing.T) {
	lines := Present(Measurement{})
	require.Len(t, lines, 1)
	assert.Equal(t, NoData, lines[0].String())

	center := geo.NewCoordinate(40.0, -3.0)
	lines = Present(Compute(NewCircle(&center, 1000)))
	require.Len(t, lines, 3)
	assert.Equal(t, "Radius: 1000 m | 1.00 km", lines[0].String())
	assert.Equal(t, "Area: 3141593 m² | 3.14 km²", lines[1].String())
	assert.Equal(t, "Perimeter", lines[2].Label)

	lines = Present(Compute(NewPolyline(triangle)))
	require.Len(t, lines, 1)
	assert.Equal(t, "Total distance", lines[0].Label)
}

func TestSegmentMarkers(t *testing.T) {
	assert.Nil(t, SegmentMarkers(triangle[:1]))

	markers := SegmentMarkers(triangle)
	require.Len(t, markers, 4)

	first := geo.Distance(triangle[0], triangle[1])
	second := geo.Distance(triangle[1], triangle[2])

	assert.Equal(t, MarkerSegment, markers[0].Kind)
	assert.Equal(t, geo.Midpoint(triangle[0], triangle[1]), markers[0].Position)
	assert.InDelta(t, first, markers[0].Meters, 1e-9)
	assert.Equal(t, "1.11 km", markers[0].Text)

	assert.Equal(t, MarkerNode, markers[1].Kind)
	assert.Equal(t, triangle[1], markers[1].Position)

	assert.Equal(t, MarkerNode, markers[3].Kind)
	assert.InDelta(t, first+second, markers[3].Meters, 1e-9)
}
