package geo

import (
	"errors"
	"math"
	"testing"
)

func TestCircleBounds(t *testing.T) {
	center := NewCoordinate(40.0, -3.0)
	radius := 1000.0
	bounds := CircleBounds(center, radius)

	if !bounds.Contains(center) {
		t.Errorf("CircleBounds failed: center %v not contained", center)
	}
	for bearing := 0.0; bearing < 360; bearing += 15 {
		edge := Offset(center, radius, bearing)
		if !bounds.Contains(edge) {
			t.Errorf("CircleBounds failed: edge at %v° not contained", bearing)
		}
	}

	// Each side keeps a 10% margin beyond the rim
	for _, bearing := range []float64{0, 90, 180, 270} {
		if margin := Offset(center, radius*1.05, bearing); !bounds.Contains(margin) {
			t.Errorf("CircleBounds failed: margin at %v° not contained", bearing)
		}
		if outside := Offset(center, radius*1.15, bearing); bounds.Contains(outside) {
			t.Errorf("CircleBounds failed: box wider than 1.1·r at %v°", bearing)
		}
	}

	expected := 1100 * math.Sqrt2
	if d := Distance(center, bounds.NorthEast); math.Abs(d-expected) > 2 {
		t.Errorf("CircleBounds failed: expected corner at %vm, got %v", expected, d)
	}
	if d := Distance(center, bounds.SouthWest); math.Abs(d-expected) > 2 {
		t.Errorf("CircleBounds failed: expected corner at %vm, got %v", expected, d)
	}
}

func TestVertexBounds(t *testing.T) {
	bounds, err := VertexBounds(triangle)
	if err != nil {
		t.Fatalf("VertexBounds failed: %v", err)
	}
	for _, p := range triangle {
		if !bounds.Contains(p) {
			t.Errorf("VertexBounds failed: %v not contained", p)
		}
	}
	if bounds.SouthWest.Latitude >= 40.0 || bounds.NorthEast.Latitude <= 40.01 {
		t.Errorf("VertexBounds failed: no margin around vertices: %+v", bounds)
	}

	single, err := VertexBounds(triangle[:1])
	if err != nil {
		t.Fatalf("VertexBounds single point failed: %v", err)
	}
	if single.SouthWest == single.NorthEast {
		t.Errorf("VertexBounds single point failed: degenerate bounds %+v", single)
	}

	if _, err := VertexBounds(nil); !errors.Is(err, ErrInsufficientVertices) {
		t.Errorf("VertexBounds failed: expected ErrInsufficientVertices, got %v", err)
	}
}

func TestBoundsCenter(t *testing.T) {
	bounds := Bounds{SouthWest: NewCoordinate(40, -4), NorthEast: NewCoordinate(42, -2)}
	center := bounds.Center()
	if center != NewCoordinate(41, -3) {
		t.Errorf("Center failed: expected 41,-3, got %v", center)
	}

	extended := bounds.Extend(NewCoordinate(43, -3))
	if extended.NorthEast.Latitude != 43 {
		t.Errorf("Extend failed: got %+v", extended)
	}
}

func TestCircleRing(t *testing.T) {
	center := NewCoordinate(40.0, -3.0)
	ring := CircleRing(center, 500, DefaultCircleSegments)
	if len(ring) != DefaultCircleSegments+1 {
		t.Fatalf("CircleRing failed: expected %d points, got %d", DefaultCircleSegments+1, len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		t.Errorf("CircleRing failed: ring is not closed")
	}
	for _, p := range ring {
		if d := Distance(center, p); math.Abs(d-500) > 0.5 {
			t.Errorf("CircleRing failed: point %v at %vm from center", p, d)
		}
	}

	if got := CircleRing(center, 0, 8); len(got) != 1 {
		t.Errorf("CircleRing zero radius failed: got %d points", len(got))
	}
}
