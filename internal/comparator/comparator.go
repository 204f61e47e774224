package comparator

import (
	"errors"
	"image"
	"math"

	"go-image-checker/pkg/models"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrImagesNotLoaded indicates one or both image buffers are missing
	ErrImagesNotLoaded = errors.New("images not loaded")

	// ErrDimensionMismatch indicates the reference and test images differ in size
	ErrDimensionMismatch = errors.New("reference and test image dimensions do not match")

	// ErrNoTestPoints indicates an empty coordinate list
	ErrNoTestPoints = errors.New("no test points to compare")

	// ErrInvalidThreshold indicates a non-positive significance threshold
	ErrInvalidThreshold = errors.New("significance threshold must be positive")
)

// Compare samples both images at the given coordinates and scores each point.
// The per-channel difference is signed (test - reference), the scalar score is
// the Euclidean distance in RGB space, and a point is significant only when
// its score strictly exceeds the threshold. Results come back in input order
// with 1-based IDs; duplicate coordinates get distinct IDs.
//
// Coordinates must already be validated against the image bounds; the sampler
// never emits out-of-range points.
func Compare(ref, test image.Image, coords []models.Coordinate, threshold float64) ([]models.PointResult, error) {
	if threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	if ref == nil || test == nil {
		return nil, ErrImagesNotLoaded
	}
	rb, tb := ref.Bounds(), test.Bounds()
	if rb.Dx() != tb.Dx() || rb.Dy() != tb.Dy() {
		return nil, ErrDimensionMismatch
	}
	if len(coords) == 0 {
		return nil, ErrNoTestPoints
	}

	results := make([]models.PointResult, 0, len(coords))
	for i, c := range coords {
		refRGB := rgbAt(ref, c)
		testRGB := rgbAt(test, c)

		var diff models.ChannelDiff
		var sum float64
		for ch := 0; ch < 3; ch++ {
			d := testRGB[ch] - refRGB[ch]
			diff[ch] = d
			sum += float64(d) * float64(d)
		}
		total := math.Sqrt(sum)

		results = append(results, models.PointResult{
			PointID:         i + 1,
			Coordinate:      c,
			ReferenceRGB:    refRGB,
			TestRGB:         testRGB,
			RGBDifference:   diff,
			TotalDifference: total,
			IsSignificant:   total > threshold,
		})
	}
	return results, nil
}

// rgbAt reads the 8-bit RGB triple at a coordinate relative to the image origin
func rgbAt(img image.Image, c models.Coordinate) models.RGB {
	min := img.Bounds().Min
	r, g, b, _ := img.At(min.X+c.X, min.Y+c.Y).RGBA()
	return models.RGB{int(r >> 8), int(g >> 8), int(b >> 8)}
}

// Summarize derives the aggregate view of a result batch. It is recomputed
// from the point list each time, so it can never go stale.
func Summarize(points []models.PointResult) models.Summary {
	s := models.Summary{TotalPoints: len(points)}
	if len(points) == 0 {
		return s
	}

	diffs := make([]float64, 0, len(points))
	for _, p := range points {
		diffs = append(diffs, p.TotalDifference)
		if p.IsSignificant {
			s.SignificantPoints++
		}
		if p.TotalDifference > s.MaxDifference {
			s.MaxDifference = p.TotalDifference
		}
	}

	s.PassedPoints = s.TotalPoints - s.SignificantPoints
	s.PassRate = float64(s.PassedPoints) / float64(s.TotalPoints) * 100
	s.MeanDifference = stat.Mean(diffs, nil)
	if len(diffs) > 1 {
		s.StdDevDifference = stat.StdDev(diffs, nil)
	}
	return s
}
