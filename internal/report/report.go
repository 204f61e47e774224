package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-image-checker/pkg/models"
)

const divider = 80

// Render produces the full text report for a comparison result: executive
// summary, per-point detail, technical details and recommendations.
func Render(result *models.ComparisonResult) string {
	var b strings.Builder

	line := strings.Repeat("=", divider)
	section := strings.Repeat("-", 40)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "IMAGE QUALITY COMPARISON REPORT")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Analysis Date: %s\n", result.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Reference Image: %s\n", filepath.Base(result.ReferenceImage))
	fmt.Fprintf(&b, "Test Image: %s\n", filepath.Base(result.TestImage))
	fmt.Fprintln(&b)

	s := result.Summary
	fmt.Fprintln(&b, "EXECUTIVE SUMMARY:")
	fmt.Fprintln(&b, section)
	fmt.Fprintf(&b, "Total test points: %d\n", s.TotalPoints)
	fmt.Fprintf(&b, "Points with significant defects: %d\n", s.SignificantPoints)
	fmt.Fprintf(&b, "Points passed: %d\n", s.PassedPoints)
	fmt.Fprintf(&b, "Pass rate: %.1f%%\n", s.PassRate)
	fmt.Fprintf(&b, "Overall result: %s\n", s.Grade)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DETAILED PIXEL ANALYSIS:")
	fmt.Fprintln(&b, strings.Repeat("-", divider))
	for _, p := range result.Points {
		status := "PASS"
		if p.IsSignificant {
			status = "FAIL (Significant defect)"
		}
		fmt.Fprintf(&b, "Test Point %d:\n", p.PointID)
		fmt.Fprintf(&b, "  Location (X,Y): (%d, %d)\n", p.Coordinate.X, p.Coordinate.Y)
		fmt.Fprintf(&b, "  Reference RGB: (%d, %d, %d)\n", p.ReferenceRGB[0], p.ReferenceRGB[1], p.ReferenceRGB[2])
		fmt.Fprintf(&b, "  Test RGB: (%d, %d, %d)\n", p.TestRGB[0], p.TestRGB[1], p.TestRGB[2])
		fmt.Fprintf(&b, "  RGB Differences (R,G,B): (%d, %d, %d)\n", p.RGBDifference[0], p.RGBDifference[1], p.RGBDifference[2])
		fmt.Fprintf(&b, "  Total Difference: %.2f\n", p.TotalDifference)
		fmt.Fprintf(&b, "  Status: %s\n", status)
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "TECHNICAL DETAILS:")
	fmt.Fprintln(&b, section)
	fmt.Fprintln(&b, "Difference calculation: Euclidean distance in RGB space")
	fmt.Fprintf(&b, "Significance threshold: %g (differences above %g are flagged)\n", result.Threshold, result.Threshold)
	fmt.Fprintf(&b, "Test point selection method: %s\n", result.Strategy)
	fmt.Fprintf(&b, "Mean difference: %.2f (max %.2f, stddev %.2f)\n", s.MeanDifference, s.MaxDifference, s.StdDevDifference)
	if len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "Warnings: %s\n", strings.Join(result.Warnings, "; "))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "RECOMMENDATIONS:")
	fmt.Fprintln(&b, section)
	fmt.Fprintf(&b, "IMAGE QUALITY: %s\n", s.Grade)
	fmt.Fprintf(&b, "  %s\n", s.GradeDescription)
	fmt.Fprintf(&b, "  Recommended action: %s\n", s.RecommendedAction)
	if s.Grade == "FAIL" {
		fmt.Fprintln(&b, "  Immediate investigation and correction required.")
		fmt.Fprintln(&b, "  Do not use for production without fixes.")
	}

	return b.String()
}

// WriteFile renders the report and writes it to path, creating parent
// directories as needed
func WriteFile(result *models.ComparisonResult, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Render(result)), 0o644); err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	return nil
}
