package comparator

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"go-image-checker/pkg/models"
)

// createTestImage creates a uniform test image for testing purposes
func createTestImage(width, height int, fillColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fillColor)
		}
	}
	return img
}

// setPixel overrides a single pixel
func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	img.Set(x, y, c)
}

func TestCompare_IdenticalPixels(t *testing.T) {
	ref := createTestImage(100, 100, color.RGBA{120, 255, 10, 255})
	test := createTestImage(100, 100, color.RGBA{120, 255, 10, 255})

	results, err := Compare(ref, test, []models.Coordinate{{X: 50, Y: 50}}, 30.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.TotalDifference != 0 {
		t.Errorf("Expected zero difference for identical pixels, got %f", r.TotalDifference)
	}
	if r.IsSignificant {
		t.Error("Identical pixels must not be significant")
	}
	if r.ReferenceRGB != (models.RGB{120, 255, 10}) {
		t.Errorf("Unexpected reference RGB: %v", r.ReferenceRGB)
	}
}

func TestCompare_BlackVsWhite(t *testing.T) {
	ref := createTestImage(100, 100, color.RGBA{0, 0, 0, 255})
	test := createTestImage(100, 100, color.RGBA{255, 255, 255, 255})

	results, err := Compare(ref, test, []models.Coordinate{{X: 10, Y: 10}}, 30.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	r := results[0]
	want := math.Sqrt(3 * 255 * 255) // ~441.67
	if math.Abs(r.TotalDifference-want) > 1e-9 {
		t.Errorf("Expected total difference %.2f, got %.2f", want, r.TotalDifference)
	}
	if !r.IsSignificant {
		t.Error("Black vs white must be significant at threshold 30")
	}
	if r.RGBDifference != (models.ChannelDiff{255, 255, 255}) {
		t.Errorf("Unexpected channel differences: %v", r.RGBDifference)
	}
}

func TestCompare_ThresholdBoundaryIsPassInclusive(t *testing.T) {
	// Differences (3, 0, 4) give an exact total of 5
	ref := createTestImage(10, 10, color.RGBA{100, 100, 100, 255})
	test := createTestImage(10, 10, color.RGBA{103, 100, 104, 255})
	coords := []models.Coordinate{{X: 5, Y: 5}}

	results, err := Compare(ref, test, coords, 5.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if results[0].TotalDifference != 5.0 {
		t.Fatalf("Expected total difference exactly 5.0, got %v", results[0].TotalDifference)
	}
	if results[0].IsSignificant {
		t.Error("Point exactly at the threshold must not be significant")
	}

	results, err = Compare(ref, test, coords, 4.999)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !results[0].IsSignificant {
		t.Error("Point just above the threshold must be significant")
	}
}

func TestCompare_SwappedImagesNegateChannelDiffs(t *testing.T) {
	ref := createTestImage(10, 10, color.RGBA{10, 200, 60, 255})
	test := createTestImage(10, 10, color.RGBA{90, 150, 80, 255})
	coords := []models.Coordinate{{X: 3, Y: 7}}

	forward, err := Compare(ref, test, coords, 30.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	backward, err := Compare(test, ref, coords, 30.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if forward[0].TotalDifference != backward[0].TotalDifference {
		t.Errorf("Total difference must be symmetric: %f vs %f",
			forward[0].TotalDifference, backward[0].TotalDifference)
	}
	for ch := 0; ch < 3; ch++ {
		if forward[0].RGBDifference[ch] != -backward[0].RGBDifference[ch] {
			t.Errorf("Channel %d: expected negated diff, got %d and %d",
				ch, forward[0].RGBDifference[ch], backward[0].RGBDifference[ch])
		}
	}
}

func TestCompare_Idempotent(t *testing.T) {
	ref := createTestImage(50, 50, color.RGBA{40, 80, 120, 255})
	test := createTestImage(50, 50, color.RGBA{45, 90, 110, 255})
	coords := []models.Coordinate{{X: 1, Y: 1}, {X: 25, Y: 25}, {X: 48, Y: 48}}

	first, err := Compare(ref, test, coords, 10.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := Compare(ref, test, coords, 10.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("Result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Result %d differs between identical calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCompare_DuplicateCoordinatesGetDistinctIDs(t *testing.T) {
	ref := createTestImage(20, 20, color.RGBA{0, 0, 0, 255})
	test := createTestImage(20, 20, color.RGBA{0, 0, 0, 255})
	coords := []models.Coordinate{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}

	results, err := Compare(ref, test, coords, 30.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for i, r := range results {
		if r.PointID != i+1 {
			t.Errorf("Result %d: expected 1-based ID %d, got %d", i, i+1, r.PointID)
		}
	}
}

func TestCompare_ErrorPaths(t *testing.T) {
	img := createTestImage(10, 10, color.RGBA{0, 0, 0, 255})
	coords := []models.Coordinate{{X: 1, Y: 1}}

	tests := []struct {
		name      string
		ref, test image.Image
		coords    []models.Coordinate
		threshold float64
		wantErr   error
	}{
		{"nil reference", nil, img, coords, 30, ErrImagesNotLoaded},
		{"nil test", img, nil, coords, 30, ErrImagesNotLoaded},
		{"dimension mismatch", img, createTestImage(10, 20, color.RGBA{}), coords, 30, ErrDimensionMismatch},
		{"no points", img, img, nil, 30, ErrNoTestPoints},
		{"zero threshold", img, img, coords, 0, ErrInvalidThreshold},
		{"negative threshold", img, img, coords, -5, ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Compare(tt.ref, tt.test, tt.coords, tt.threshold)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if len(results) != 0 {
				t.Errorf("Expected no results on error, got %d", len(results))
			}
		})
	}
}

func TestCompare_MixedPixels(t *testing.T) {
	ref := createTestImage(20, 20, color.RGBA{100, 100, 100, 255})
	test := createTestImage(20, 20, color.RGBA{100, 100, 100, 255})
	setPixel(test, 10, 10, color.RGBA{200, 100, 100, 255}) // diff 100 on red only

	coords := []models.Coordinate{{X: 0, Y: 0}, {X: 10, Y: 10}}
	results, err := Compare(ref, test, coords, 30.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if results[0].IsSignificant {
		t.Error("Unchanged pixel must pass")
	}
	if !results[1].IsSignificant {
		t.Error("Pixel with red diff 100 must fail at threshold 30")
	}
	if results[1].TotalDifference != 100.0 {
		t.Errorf("Expected total difference 100, got %f", results[1].TotalDifference)
	}
}

func TestSummarize_PassRateAndGradeInputs(t *testing.T) {
	// 8 points, 2 significant: pass rate 75%
	points := make([]models.PointResult, 8)
	for i := range points {
		points[i] = models.PointResult{PointID: i + 1, TotalDifference: 10}
	}
	points[3].IsSignificant = true
	points[3].TotalDifference = 120
	points[6].IsSignificant = true
	points[6].TotalDifference = 80

	s := Summarize(points)
	if s.TotalPoints != 8 {
		t.Errorf("Expected 8 total points, got %d", s.TotalPoints)
	}
	if s.SignificantPoints != 2 {
		t.Errorf("Expected 2 significant points, got %d", s.SignificantPoints)
	}
	if s.PassedPoints != 6 {
		t.Errorf("Expected 6 passed points, got %d", s.PassedPoints)
	}
	if s.PassRate != 75.0 {
		t.Errorf("Expected pass rate 75.0, got %f", s.PassRate)
	}
	if s.MaxDifference != 120 {
		t.Errorf("Expected max difference 120, got %f", s.MaxDifference)
	}

	wantMean := (6*10.0 + 120 + 80) / 8
	if math.Abs(s.MeanDifference-wantMean) > 1e-9 {
		t.Errorf("Expected mean difference %f, got %f", wantMean, s.MeanDifference)
	}
	if s.StdDevDifference <= 0 {
		t.Errorf("Expected positive stddev, got %f", s.StdDevDifference)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalPoints != 0 || s.PassRate != 0 {
		t.Errorf("Expected zero summary for empty input, got %+v", s)
	}
}
