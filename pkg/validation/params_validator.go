package validation

import (
	"fmt"
	"math"

	"go-image-checker/internal/sampler"
	"go-image-checker/pkg/models"
)

// maxRGBDistance is the largest possible Euclidean distance between two
// 8-bit RGB triples (black vs white)
var maxRGBDistance = math.Sqrt(3 * 255 * 255)

// ParamLimits defines configurable bounds for comparison parameters
type ParamLimits struct {
	MinPoints    int
	MaxPoints    int
	MinThreshold float64
}

// DefaultParamLimits returns the default parameter limits
func DefaultParamLimits() ParamLimits {
	return ParamLimits{
		MinPoints:    1,
		MaxPoints:    10000,
		MinThreshold: 0, // exclusive: threshold must be strictly positive
	}
}

// Issue represents a parameter validation issue
type Issue struct {
	Type        string  `json:"type"`
	Message     string  `json:"message"`
	Severity    string  `json:"severity"` // "error", "warning"
	ActualValue float64 `json:"actual_value,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// ParamValidator handles comparison parameter validation logic
type ParamValidator struct {
	limits ParamLimits
}

// NewParamValidator creates a validator with default limits
func NewParamValidator() *ParamValidator {
	return &ParamValidator{limits: DefaultParamLimits()}
}

// NewParamValidatorWithLimits creates a validator with custom limits
func NewParamValidatorWithLimits(limits ParamLimits) *ParamValidator {
	return &ParamValidator{limits: limits}
}

// ValidateComparisonParams checks strategy, point count, threshold and custom
// points before any sampling or comparison runs
func (v *ParamValidator) ValidateComparisonParams(strategy string, points int, threshold float64, customPoints []models.Coordinate) []Issue {
	var issues []Issue

	if !sampler.IsValidStrategy(strategy) {
		issues = append(issues, Issue{
			Type:     "unknown_strategy",
			Message:  fmt.Sprintf("Unknown sampling strategy %q. Use random, grid, strategic or custom.", strategy),
			Severity: "error",
		})
	}

	if threshold <= v.limits.MinThreshold {
		issues = append(issues, Issue{
			Type:        "invalid_threshold",
			Message:     "Significance threshold must be positive.",
			Severity:    "error",
			ActualValue: threshold,
			Threshold:   v.limits.MinThreshold,
		})
	} else if threshold > maxRGBDistance {
		issues = append(issues, Issue{
			Type:        "unreachable_threshold",
			Message:     "Threshold exceeds the maximum possible RGB distance; no point can ever fail.",
			Severity:    "warning",
			ActualValue: threshold,
			Threshold:   maxRGBDistance,
		})
	}

	if sampler.Strategy(strategy) == sampler.StrategyCustom {
		if len(customPoints) == 0 {
			issues = append(issues, Issue{
				Type:     "missing_custom_points",
				Message:  "Custom strategy requires an explicit coordinate list.",
				Severity: "error",
			})
		}
	} else {
		if points < v.limits.MinPoints {
			issues = append(issues, Issue{
				Type:        "too_few_points",
				Message:     "At least one test point is required.",
				Severity:    "error",
				ActualValue: float64(points),
				Threshold:   float64(v.limits.MinPoints),
			})
		} else if points > v.limits.MaxPoints {
			issues = append(issues, Issue{
				Type:        "too_many_points",
				Message:     fmt.Sprintf("Point count exceeds the maximum of %d.", v.limits.MaxPoints),
				Severity:    "error",
				ActualValue: float64(points),
				Threshold:   float64(v.limits.MaxPoints),
			})
		}
	}

	return issues
}

// ConvertIssuesToMessages converts issues to plain error messages
func (v *ParamValidator) ConvertIssuesToMessages(issues []Issue) []string {
	var messages []string
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

// HasCriticalIssues checks if there are any error-severity issues
func (v *ParamValidator) HasCriticalIssues(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == "error" {
			return true
		}
	}
	return false
}
