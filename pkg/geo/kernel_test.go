package geo

import (
	"errors"
	"math"
	"testing"
)

var triangle = []Coordinate{
	NewCoordinate(40.0, -3.0),
	NewCoordinate(40.01, -3.0),
	NewCoordinate(40.0, -3.01),
}

func TestDistance(t *testing.T) {
	a := NewCoordinate(40.0, -3.0)
	b := NewCoordinate(40.01, -3.0)

	// 0.01° of latitude on a sphere of radius 6378137 m
	expected := 6378137.0 * 0.01 * math.Pi / 180
	distance := Distance(a, b)
	if math.Abs(distance-expected) > 1e-6 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}

	if d := Distance(a, a); d != 0 {
		t.Errorf("Distance to self failed: expected 0, got %v", d)
	}
}

func TestPathLength(t *testing.T) {
	if l := PathLength(nil); l != 0 {
		t.Errorf("PathLength of empty path failed: expected 0, got %v", l)
	}
	if l := PathLength(triangle[:1]); l != 0 {
		t.Errorf("PathLength of single point failed: expected 0, got %v", l)
	}

	expected := Distance(triangle[0], triangle[1]) + Distance(triangle[1], triangle[2])
	length := PathLength(triangle)
	if math.Abs(length-expected) > 1e-9 {
		t.Errorf("PathLength failed: expected %v, got %v", expected, length)
	}
}

func TestPathLengthReversal(t *testing.T) {
	reversed := make([]Coordinate, len(triangle))
	for i, p := range triangle {
		reversed[len(triangle)-1-i] = p
	}

	forward := PathLength(triangle)
	backward := PathLength(reversed)
	if math.Abs(forward-backward) > 1e-9 {
		t.Errorf("PathLength reversal failed: forward %v, backward %v", forward, backward)
	}
}

func TestSegmentLengths(t *testing.T) {
	lengths := SegmentLengths(triangle)
	if len(lengths) != 2 {
		t.Fatalf("SegmentLengths failed: expected 2 segments, got %d", len(lengths))
	}
	if math.Abs(lengths[0]+lengths[1]-PathLength(triangle)) > 1e-9 {
		t.Errorf("SegmentLengths failed: segments do not add up to the path length")
	}
	if SegmentLengths(triangle[:1]) != nil {
		t.Errorf("SegmentLengths failed: expected nil for a single point")
	}
}

func TestPolygonPerimeter(t *testing.T) {
	paths := [][]Coordinate{
		triangle,
		{
			NewCoordinate(51.5, -0.1),
			NewCoordinate(51.6, -0.1),
			NewCoordinate(51.6, 0.1),
			NewCoordinate(51.5, 0.1),
		},
	}

	for _, points := range paths {
		perimeter, err := PolygonPerimeter(points)
		if err != nil {
			t.Fatalf("PolygonPerimeter failed: %v", err)
		}
		expected := PathLength(points) + Distance(points[len(points)-1], points[0])
		if math.Abs(perimeter-expected) > 1e-9 {
			t.Errorf("PolygonPerimeter failed: expected %v, got %v", expected, perimeter)
		}
	}

	if _, err := PolygonPerimeter(triangle[:1]); !errors.Is(err, ErrInsufficientVertices) {
		t.Errorf("PolygonPerimeter failed: expected ErrInsufficientVertices, got %v", err)
	}
}

func TestPolygonArea(t *testing.T) {
	area, err := PolygonArea(triangle)
	if err != nil {
		t.Fatalf("PolygonArea failed: %v", err)
	}

	// Half of 0.01° lat × 0.01° lon at 40°N
	side := 6378137.0 * 0.01 * math.Pi / 180
	expected := 0.5 * side * side * math.Cos(40*math.Pi/180)
	if area <= 0 {
		t.Fatalf("PolygonArea failed: expected a positive area, got %v", area)
	}
	if math.Abs(area-expected)/expected > 0.01 {
		t.Errorf("PolygonArea failed: expected ~%v, got %v", expected, area)
	}

	// Winding does not change the magnitude
	reversed := []Coordinate{triangle[2], triangle[1], triangle[0]}
	reversedArea, _ := PolygonArea(reversed)
	if math.Abs(area-reversedArea) > 1e-6 {
		t.Errorf("PolygonArea winding failed: %v vs %v", area, reversedArea)
	}

	// An explicitly closed ring measures the same
	closed := append(append([]Coordinate{}, triangle...), triangle[0])
	closedArea, _ := PolygonArea(closed)
	if math.Abs(area-closedArea) > 1e-6 {
		t.Errorf("PolygonArea closed ring failed: %v vs %v", area, closedArea)
	}

	if _, err := PolygonArea(triangle[:2]); !errors.Is(err, ErrInsufficientVertices) {
		t.Errorf("PolygonArea failed: expected ErrInsufficientVertices, got %v", err)
	}
}

func TestCircleFormulas(t *testing.T) {
	for _, r := range []float64{0, 1, 50, 1000, 100000} {
		if a := CircleArea(r); math.Abs(a-math.Pi*r*r) > 1e-6 {
			t.Errorf("CircleArea(%v) failed: got %v", r, a)
		}
		if p := CirclePerimeter(r); math.Abs(p-2*math.Pi*r) > 1e-9 {
			t.Errorf("CirclePerimeter(%v) failed: got %v", r, p)
		}
	}

	if a := CircleArea(1000); math.Abs(a-3141592.6535) > 1e-3 {
		t.Errorf("CircleArea(1000) failed: got %v", a)
	}
}

func TestValidateRadius(t *testing.T) {
	if err := ValidateRadius(0); err != nil {
		t.Errorf("ValidateRadius(0) failed: %v", err)
	}
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		if err := ValidateRadius(r); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("ValidateRadius(%v) failed: expected ErrInvalidRadius, got %v", r, err)
		}
	}
}

func TestMidpoint(t *testing.T) {
	mid := Midpoint(triangle[0], triangle[1])
	if math.Abs(mid.Latitude-40.005) > 1e-6 || math.Abs(mid.Longitude+3.0) > 1e-6 {
		t.Errorf("Midpoint failed: expected 40.005,-3.0, got %v", mid)
	}

	d1 := Distance(triangle[0], mid)
	d2 := Distance(mid, triangle[1])
	if math.Abs(d1-d2) > 1e-3 {
		t.Errorf("Midpoint failed: not equidistant (%v vs %v)", d1, d2)
	}
}

func TestOffset(t *testing.T) {
	center := NewCoordinate(40.0, -3.0)
	for _, bearing := range []float64{0, 45, 90, 225} {
		p := Offset(center, 1000, bearing)
		if d := Distance(center, p); math.Abs(d-1000) > 0.5 {
			t.Errorf("Offset(%v°) failed: expected 1000m, got %v", bearing, d)
		}
	}

	north := Offset(center, 1000, 0)
	if north.Latitude <= center.Latitude {
		t.Errorf("Offset north failed: %v is not north of %v", north, center)
	}
}

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate("40.0, -3.01")
	if err != nil {
		t.Fatalf("ParseCoordinate failed: %v", err)
	}
	if c != NewCoordinate(40.0, -3.01) {
		t.Errorf("ParseCoordinate failed: got %v", c)
	}

	for _, s := range []string{"", "40.0", "a,b", "91,0", "0,181"} {
		if _, err := ParseCoordinate(s); err == nil {
			t.Errorf("ParseCoordinate(%q) failed: expected an error", s)
		}
	}
}
