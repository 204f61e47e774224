package visualize

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"go-image-checker/pkg/models"

	"github.com/fogleman/gg"
)

const (
	markerRadius = 6
	chartHeight  = 260
	padding      = 20
	labelOffset  = 8
)

// Render draws the comparison chart: reference and test images side by side
// with numbered pass/fail markers, and a per-point difference bar chart with
// the threshold line underneath.
func Render(reference, test image.Image, result *models.ComparisonResult) image.Image {
	rb := reference.Bounds()
	imgW, imgH := rb.Dx(), rb.Dy()

	totalW := imgW*2 + padding*3
	totalH := imgH + chartHeight + padding*3

	dc := gg.NewContext(totalW, totalH)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Reference panel: all markers green since it is the known-good side
	dc.DrawImage(reference, padding, padding)
	drawMarkers(dc, result, float64(padding), float64(padding), false)

	// Test panel: markers colored by verdict
	dc.DrawImage(test, imgW+padding*2, padding)
	drawMarkers(dc, result, float64(imgW+padding*2), float64(padding), true)

	drawChart(dc, result, float64(padding), float64(imgH+padding*2), float64(totalW-padding*2), chartHeight)

	return dc.Image()
}

// WriteFile renders the chart and writes it to path as PNG
func WriteFile(reference, test image.Image, result *models.ComparisonResult, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	if err := gg.SavePNG(path, Render(reference, test, result)); err != nil {
		return fmt.Errorf("cannot write visualization: %w", err)
	}
	return nil
}

func drawMarkers(dc *gg.Context, result *models.ComparisonResult, offsetX, offsetY float64, colorByVerdict bool) {
	for _, p := range result.Points {
		x := offsetX + float64(p.Coordinate.X)
		y := offsetY + float64(p.Coordinate.Y)

		if colorByVerdict && p.IsSignificant {
			dc.SetRGB(0.85, 0.1, 0.1)
		} else {
			dc.SetRGB(0.1, 0.7, 0.2)
		}
		dc.DrawCircle(x, y, markerRadius)
		dc.Fill()

		dc.SetRGB(1, 1, 1)
		dc.DrawString(fmt.Sprintf("%d", p.PointID), x+labelOffset, y-labelOffset)
	}
}

func drawChart(dc *gg.Context, result *models.ComparisonResult, x, y, w, h float64) {
	if len(result.Points) == 0 {
		return
	}

	// Scale to the largest difference or the threshold, whichever is bigger
	maxVal := result.Threshold
	for _, p := range result.Points {
		if p.TotalDifference > maxVal {
			maxVal = p.TotalDifference
		}
	}
	maxVal *= 1.15 // headroom above the tallest bar

	// Axes
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawLine(x, y, x, y+h)
	dc.DrawLine(x, y+h, x+w, y+h)
	dc.Stroke()

	barSlot := w / float64(len(result.Points))
	barWidth := barSlot * 0.6

	for i, p := range result.Points {
		barH := p.TotalDifference / maxVal * h
		bx := x + float64(i)*barSlot + (barSlot-barWidth)/2
		by := y + h - barH

		if p.IsSignificant {
			dc.SetRGBA(0.85, 0.1, 0.1, 0.7)
		} else {
			dc.SetRGBA(0.1, 0.7, 0.2, 0.7)
		}
		dc.DrawRectangle(bx, by, barWidth, barH)
		dc.Fill()

		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", p.TotalDifference), bx+barWidth/2, by-10, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("P%d", p.PointID), bx+barWidth/2, y+h+12, 0.5, 0.5)
	}

	// Threshold line
	ty := y + h - result.Threshold/maxVal*h
	dc.SetRGB(1.0, 0.6, 0.0)
	dc.SetLineWidth(2)
	dc.SetDash(6, 4)
	dc.DrawLine(x, ty, x+w, ty)
	dc.Stroke()
	dc.SetDash()
	dc.DrawStringAnchored(fmt.Sprintf("threshold %.1f", result.Threshold), x+w-60, ty-10, 0.5, 0.5)
}
