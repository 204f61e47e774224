package sampler

import (
	"math/rand"
	"testing"

	"go-image-checker/pkg/models"
)

func TestGenerate_DegenerateDimensions(t *testing.T) {
	s := New()

	for _, strategy := range []Strategy{StrategyRandom, StrategyGrid, StrategyStrategic, StrategyCustom} {
		if points := s.Generate(0, 600, 8, strategy, nil); len(points) != 0 {
			t.Errorf("%s: expected no points for zero width, got %d", strategy, len(points))
		}
		if points := s.Generate(800, 0, 8, strategy, nil); len(points) != 0 {
			t.Errorf("%s: expected no points for zero height, got %d", strategy, len(points))
		}
	}
}

func TestGenerate_UnknownStrategy(t *testing.T) {
	s := New()
	if points := s.Generate(800, 600, 8, Strategy("perceptual"), nil); len(points) != 0 {
		t.Errorf("Expected no points for unknown strategy, got %d", len(points))
	}
}

func TestGenerateRandom_WithinMargins(t *testing.T) {
	s := NewWithSource(rand.NewSource(42))
	width, height := 800, 600

	points := s.Generate(width, height, 100, StrategyRandom, nil)
	if len(points) != 100 {
		t.Fatalf("Expected 100 points, got %d", len(points))
	}

	for _, p := range points {
		if p.X < edgeMargin || p.X > width-edgeMargin {
			t.Errorf("X coordinate %d outside [%d, %d]", p.X, edgeMargin, width-edgeMargin)
		}
		if p.Y < edgeMargin || p.Y > height-edgeMargin {
			t.Errorf("Y coordinate %d outside [%d, %d]", p.Y, edgeMargin, height-edgeMargin)
		}
	}
}

func TestGenerateRandom_SeededReproducibility(t *testing.T) {
	first := NewWithSource(rand.NewSource(7)).Generate(800, 600, 20, StrategyRandom, nil)
	second := NewWithSource(rand.NewSource(7)).Generate(800, 600, 20, StrategyRandom, nil)

	if len(first) != len(second) {
		t.Fatalf("Seeded runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateRandom_TooSmallForMargin(t *testing.T) {
	s := New()
	if points := s.Generate(15, 15, 8, StrategyRandom, nil); len(points) != 0 {
		t.Errorf("Expected no points when margins leave no room, got %d", len(points))
	}
}

func TestGenerateGrid_LatticePlacement(t *testing.T) {
	s := New()

	// count=8 on 800x600: floor(sqrt(8))=2 columns, ceil(8/2)=4 rows,
	// spacing width/3 x height/5, all 8 cells emitted
	points := s.Generate(800, 600, 8, StrategyGrid, nil)
	if len(points) != 8 {
		t.Fatalf("Expected 8 grid points, got %d", len(points))
	}

	wantX := []int{266, 533}
	wantY := []int{120, 240, 360, 480}
	for i, p := range points {
		if p.X != wantX[i%2] {
			t.Errorf("Point %d: expected X %d, got %d", i, wantX[i%2], p.X)
		}
		if p.Y != wantY[i/2] {
			t.Errorf("Point %d: expected Y %d, got %d", i, wantY[i/2], p.Y)
		}
	}
}

func TestGenerateGrid_NoBorderPoints(t *testing.T) {
	s := New()
	width, height := 800, 600

	for _, count := range []int{1, 4, 8, 9, 25, 100} {
		points := s.Generate(width, height, count, StrategyGrid, nil)
		if len(points) > count {
			t.Errorf("count=%d: got %d points, more than requested", count, len(points))
		}
		for _, p := range points {
			if p.X <= 0 || p.X >= width || p.Y <= 0 || p.Y >= height {
				t.Errorf("count=%d: point (%d,%d) on or outside the border", count, p.X, p.Y)
			}
		}
	}
}

func TestGenerateGrid_StopsEarly(t *testing.T) {
	s := New()

	// count=7: 2 columns x 4 rows lattice has 8 cells but generation must
	// stop at 7, leaving the last row partially filled
	points := s.Generate(800, 600, 7, StrategyGrid, nil)
	if len(points) != 7 {
		t.Errorf("Expected exactly 7 points, got %d", len(points))
	}
}

func TestGenerateStrategic_FixedCatalogue(t *testing.T) {
	s := New()
	width, height := 800, 600

	points := s.Generate(width, height, 8, StrategyStrategic, nil)
	expected := []models.Coordinate{
		{X: 50, Y: 50},
		{X: 750, Y: 50},
		{X: 50, Y: 550},
		{X: 750, Y: 550},
		{X: 400, Y: 300},
		{X: 200, Y: 150},
		{X: 600, Y: 150},
		{X: 400, Y: 450},
	}

	if len(points) != len(expected) {
		t.Fatalf("Expected %d points, got %d", len(expected), len(points))
	}
	for i, want := range expected {
		if points[i] != want {
			t.Errorf("Point %d: expected %+v, got %+v", i, want, points[i])
		}
	}
}

func TestGenerateStrategic_CappedAtEight(t *testing.T) {
	s := New()

	// Requests beyond the catalogue are capped, never padded
	points := s.Generate(800, 600, 20, StrategyStrategic, nil)
	if len(points) != 8 {
		t.Errorf("Expected hard cap of 8 points, got %d", len(points))
	}
}

func TestGenerateStrategic_Truncation(t *testing.T) {
	s := New()

	points := s.Generate(800, 600, 3, StrategyStrategic, nil)
	if len(points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(points))
	}
	// Truncation keeps catalogue order: the corners come first
	if (points[0] != models.Coordinate{X: 50, Y: 50}) {
		t.Errorf("Expected top-left corner first, got %+v", points[0])
	}
}

func TestGenerateStrategic_ImageTooSmall(t *testing.T) {
	s := New()
	if points := s.Generate(40, 40, 8, StrategyStrategic, nil); len(points) != 0 {
		t.Errorf("Expected no points for image smaller than corner margin, got %d", len(points))
	}
}

func TestGenerateCustom_DropsOutOfBounds(t *testing.T) {
	s := New()
	custom := []models.Coordinate{
		{X: 100, Y: 100},
		{X: -1, Y: 50},    // negative X
		{X: 800, Y: 300},  // X == width
		{X: 400, Y: 600},  // Y == height
		{X: 799, Y: 599},  // last valid pixel
		{X: 0, Y: 0},      // first valid pixel
	}

	points := s.Generate(800, 600, len(custom), StrategyCustom, custom)
	if len(points) != 3 {
		t.Fatalf("Expected 3 valid points after filtering, got %d", len(points))
	}

	expected := []models.Coordinate{{X: 100, Y: 100}, {X: 799, Y: 599}, {X: 0, Y: 0}}
	for i, want := range expected {
		if points[i] != want {
			t.Errorf("Point %d: expected %+v, got %+v", i, want, points[i])
		}
	}
}

func TestGenerateCustom_EmptyInput(t *testing.T) {
	s := New()
	if points := s.Generate(800, 600, 8, StrategyCustom, nil); len(points) != 0 {
		t.Errorf("Expected no points for empty custom list, got %d", len(points))
	}
}

func TestIsValidStrategy(t *testing.T) {
	for _, valid := range []string{"random", "grid", "strategic", "custom"} {
		if !IsValidStrategy(valid) {
			t.Errorf("Expected %q to be a valid strategy", valid)
		}
	}
	for _, invalid := range []string{"", "RANDOM", "perceptual", "ssim"} {
		if IsValidStrategy(invalid) {
			t.Errorf("Expected %q to be rejected", invalid)
		}
	}
}
