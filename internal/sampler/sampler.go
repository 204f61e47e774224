package sampler

import (
	"math"
	"math/rand"
	"time"

	"go-image-checker/internal/logger"
	"go-image-checker/pkg/models"

	"github.com/sirupsen/logrus"
)

// Strategy selects how test coordinates are placed on the image
type Strategy string

const (
	// StrategyRandom draws uniformly distributed points away from the edges
	StrategyRandom Strategy = "random"
	// StrategyGrid lays points out on a near-square lattice
	StrategyGrid Strategy = "grid"
	// StrategyStrategic probes a fixed catalogue of corner/center points
	StrategyStrategic Strategy = "strategic"
	// StrategyCustom uses caller-supplied coordinates verbatim
	StrategyCustom Strategy = "custom"
)

const (
	// edgeMargin keeps random points away from boundary artifacts
	edgeMargin = 10
	// strategicMargin is the corner inset for strategic sampling
	strategicMargin = 50
	// strategicMax is the size of the strategic candidate catalogue.
	// Requests for more points are capped, never padded.
	strategicMax = 8
)

// IsValidStrategy reports whether s names a known sampling strategy
func IsValidStrategy(s string) bool {
	switch Strategy(s) {
	case StrategyRandom, StrategyGrid, StrategyStrategic, StrategyCustom:
		return true
	}
	return false
}

// Sampler generates test point coordinates. It holds only the random source;
// generated coordinates are returned to the caller, not cached.
type Sampler struct {
	rng *rand.Rand
}

// New creates a sampler with its own time-seeded random source
func New() *Sampler {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a sampler drawing from the given source. Tests pass a
// fixed seed here to make random sampling reproducible.
func NewWithSource(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// Generate produces up to count coordinates for a width x height image using
// the given strategy. Degenerate inputs yield an empty result rather than an
// error so batch callers can treat "no points" uniformly. For the custom
// strategy, out-of-bounds points are dropped individually and the returned
// count may be smaller than requested.
func (s *Sampler) Generate(width, height, count int, strategy Strategy, customPoints []models.Coordinate) []models.Coordinate {
	if width <= 0 || height <= 0 {
		logger.WithFields(logrus.Fields{
			"width":  width,
			"height": height,
		}).Warn("Cannot generate test points without image dimensions")
		return nil
	}

	var points []models.Coordinate
	switch strategy {
	case StrategyRandom:
		points = s.generateRandom(width, height, count)
	case StrategyGrid:
		points = generateGrid(width, height, count)
	case StrategyStrategic:
		points = generateStrategic(width, height, count)
	case StrategyCustom:
		points = filterCustom(width, height, customPoints)
	default:
		logger.WithField("strategy", string(strategy)).Warn("Unknown sampling strategy")
		return nil
	}

	logger.WithFields(logrus.Fields{
		"strategy": string(strategy),
		"points":   len(points),
	}).Debug("Generated test points")
	return points
}

// generateRandom draws count points independently and uniformly from the
// inclusive range [edgeMargin, width-edgeMargin] x [edgeMargin, height-edgeMargin].
// Duplicates are permitted.
func (s *Sampler) generateRandom(width, height, count int) []models.Coordinate {
	xSpan := width - 2*edgeMargin + 1
	ySpan := height - 2*edgeMargin + 1
	if count <= 0 || xSpan <= 0 || ySpan <= 0 {
		return nil
	}

	points := make([]models.Coordinate, 0, count)
	for i := 0; i < count; i++ {
		points = append(points, models.Coordinate{
			X: edgeMargin + s.rng.Intn(xSpan),
			Y: edgeMargin + s.rng.Intn(ySpan),
		})
	}
	return points
}

// generateGrid places points at the cell centers of a floor(sqrt(count)) by
// ceil(count/cols) lattice, spaced so no point sits on the image border.
// Generation stops as soon as count points are emitted, so the last row may
// be partially filled.
func generateGrid(width, height, count int) []models.Coordinate {
	if count <= 0 {
		return nil
	}

	cols := int(math.Sqrt(float64(count)))
	rows := int(math.Ceil(float64(count) / float64(cols)))

	points := make([]models.Coordinate, 0, count)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if len(points) >= count {
				break
			}
			points = append(points, models.Coordinate{
				X: (j + 1) * width / (cols + 1),
				Y: (i + 1) * height / (rows + 1),
			})
		}
	}
	return points
}

// generateStrategic returns the first count entries of a fixed catalogue:
// four inset corners, the center, two upper quarter-points and one
// lower-center point. The catalogue is capped at strategicMax entries.
func generateStrategic(width, height, count int) []models.Coordinate {
	if count <= 0 {
		return nil
	}
	if width <= strategicMargin || height <= strategicMargin {
		logger.WithFields(logrus.Fields{
			"width":  width,
			"height": height,
			"margin": strategicMargin,
		}).Warn("Image too small for strategic sampling")
		return nil
	}

	candidates := []models.Coordinate{
		{X: strategicMargin, Y: strategicMargin},                   // top-left corner
		{X: width - strategicMargin, Y: strategicMargin},           // top-right corner
		{X: strategicMargin, Y: height - strategicMargin},          // bottom-left corner
		{X: width - strategicMargin, Y: height - strategicMargin},  // bottom-right corner
		{X: width / 2, Y: height / 2},                              // center
		{X: width / 4, Y: height / 4},                              // upper-left quarter
		{X: 3 * width / 4, Y: height / 4},                          // upper-right quarter
		{X: width / 2, Y: 3 * height / 4},                          // lower center
	}

	if count > len(candidates) {
		count = len(candidates)
	}
	return candidates[:count]
}

// filterCustom validates caller-supplied coordinates against the image
// bounds. Out-of-bounds points are dropped and logged, not substituted.
func filterCustom(width, height int, customPoints []models.Coordinate) []models.Coordinate {
	valid := make([]models.Coordinate, 0, len(customPoints))
	for _, p := range customPoints {
		if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
			valid = append(valid, p)
			continue
		}
		logger.WithFields(logrus.Fields{
			"x":      p.X,
			"y":      p.Y,
			"width":  width,
			"height": height,
		}).Warn("Custom point outside image bounds, skipping")
	}
	return valid
}
