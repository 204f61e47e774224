package models

import "time"

// Coordinate is a pixel position in image space. Valid coordinates satisfy
// 0 <= X < width and 0 <= Y < height of the images under comparison.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RGB holds one 8-bit color sample per channel.
type RGB [3]int

// ChannelDiff holds the signed per-channel difference (test - reference).
// Values can be negative; no clamping is applied.
type ChannelDiff [3]int

// PointResult is the comparison outcome for a single sampled coordinate.
// PointID is the 1-based position in the sampled coordinate list, so the
// same coordinate appearing twice yields two distinct results.
type PointResult struct {
	PointID         int         `json:"point_id"`
	Coordinate      Coordinate  `json:"coordinates"`
	ReferenceRGB    RGB         `json:"reference_rgb"`
	TestRGB         RGB         `json:"test_rgb"`
	RGBDifference   ChannelDiff `json:"rgb_difference"`
	TotalDifference float64     `json:"total_difference"`
	IsSignificant   bool        `json:"is_significant"`
}

// Summary aggregates a batch of point results. It is always derived from the
// result list, never stored independently.
type Summary struct {
	TotalPoints       int     `json:"total_points"`
	SignificantPoints int     `json:"significant_points"`
	PassedPoints      int     `json:"passed_points"`
	PassRate          float64 `json:"pass_rate"`

	// Distribution of total differences across the batch
	MeanDifference   float64 `json:"mean_difference"`
	MaxDifference    float64 `json:"max_difference"`
	StdDevDifference float64 `json:"stddev_difference"`

	Grade             string `json:"grade"`
	GradeDescription  string `json:"grade_description"`
	RecommendedAction string `json:"recommended_action"`
}

// ComparisonResult is the full output of one comparison run. The strategy and
// coordinate list travel with the batch instead of living as engine state, so
// a result is self-describing for report and visualization writers.
type ComparisonResult struct {
	ReferenceImage    string    `json:"reference_image"`
	TestImage         string    `json:"test_image"`
	Timestamp         time.Time `json:"timestamp"`
	ProcessingTimeSec float64   `json:"processing_time_sec"`

	Strategy    string       `json:"strategy"`
	Threshold   float64      `json:"threshold"`
	Coordinates []Coordinate `json:"coordinates"`

	Points  []PointResult `json:"points"`
	Summary Summary       `json:"summary"`

	// Non-fatal diagnostics (e.g. dropped out-of-bounds custom points)
	Warnings []string `json:"warnings,omitempty"`
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
