package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// Generates image pairs with controlled defects for exercising the checker:
// a block-color reference with seeded spot/noise/line defects, and a smooth
// gradient against its quantized (banded) counterpart.
func main() {
	outDir := flag.String("out", "images", "output directory for generated image pairs")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	refPath, testPath, err := createDefectPair(*outDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Defect pair: %s vs %s\n", refPath, testPath)

	refPath, testPath, err = createGradientPair(*outDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("Gradient pair: %s vs %s\n", refPath, testPath)
}

// createDefectPair builds a colored-region reference and a test copy with
// defects of increasing subtlety: black spot, white spot, slight color
// shifts, a noise patch and a bright line.
func createDefectPair(outDir string) (string, string, error) {
	const width, height = 800, 600

	dc := gg.NewContext(width, height)

	// Background and colored regions
	fillRect(dc, 0, 0, width, height, 50, 100, 150)
	fillRect(dc, 0, 0, width, 150, 100, 150, 200)   // top band, light blue
	fillRect(dc, 0, 150, 200, height, 50, 180, 80)  // left band, green
	fillRect(dc, 600, 150, width, height, 200, 60, 70) // right band, red
	fillRect(dc, 200, 200, 600, 400, 220, 200, 50)  // center, yellow

	dc.SetRGB255(150, 100, 250)
	dc.DrawEllipse(400, 300, 100, 50)
	dc.Fill()

	reference := imageToRGBA(dc.Image())
	refPath := filepath.Join(outDir, "reference_defect_test.png")
	if err := savePNG(refPath, reference); err != nil {
		return "", "", err
	}

	// Copy and inject defects
	test := image.NewRGBA(reference.Bounds())
	draw.Draw(test, test.Bounds(), reference, image.Point{}, draw.Src)

	fillRGBA(test, 100, 50, 200, 100, color.RGBA{0, 0, 0, 255})         // major: black spot
	fillRGBA(test, 650, 200, 750, 300, color.RGBA{255, 255, 255, 255})  // medium: white spot
	fillRGBA(test, 250, 250, 300, 300, color.RGBA{180, 130, 255, 255})  // minor shift
	fillRGBA(test, 400, 280, 450, 330, color.RGBA{170, 120, 230, 255})  // minor shift

	// Noise patch in the top-left corner
	for x := 50; x < 100; x++ {
		for y := 100; y < 130; y++ {
			if (x+y)%3 == 0 {
				c := test.RGBAAt(x, y)
				test.SetRGBA(x, y, color.RGBA{
					clamp8(int(c.R) + 60),
					clamp8(int(c.G) - 40),
					c.B,
					255,
				})
			}
		}
	}

	// Two-pixel-high magenta line
	for x := 300; x < 500; x++ {
		test.SetRGBA(x, 180, color.RGBA{255, 0, 255, 255})
		test.SetRGBA(x, 181, color.RGBA{255, 0, 255, 255})
	}

	testPath := filepath.Join(outDir, "test_defect_test.png")
	if err := savePNG(testPath, test); err != nil {
		return "", "", err
	}
	return refPath, testPath, nil
}

// createGradientPair builds a smooth RGB gradient and a 32-level quantized
// copy with visible banding
func createGradientPair(outDir string) (string, string, error) {
	const width, height = 400, 300

	reference := image.NewRGBA(image.Rect(0, 0, width, height))
	test := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := 255 * x / width
			g := 255 * y / height
			b := 255 * (x + y) / (width + height)
			reference.SetRGBA(x, y, color.RGBA{uint8(r), uint8(g), uint8(b), 255})
			test.SetRGBA(x, y, color.RGBA{uint8(r / 32 * 32), uint8(g / 32 * 32), uint8(b / 32 * 32), 255})
		}
	}

	refPath := filepath.Join(outDir, "reference_gradient.png")
	if err := savePNG(refPath, reference); err != nil {
		return "", "", err
	}
	testPath := filepath.Join(outDir, "test_gradient.png")
	if err := savePNG(testPath, test); err != nil {
		return "", "", err
	}
	return refPath, testPath, nil
}

func fillRect(dc *gg.Context, x0, y0, x1, y1 int, r, g, b int) {
	dc.SetRGB255(r, g, b)
	dc.DrawRectangle(float64(x0), float64(y0), float64(x1-x0), float64(y1-y0))
	dc.Fill()
}

func fillRGBA(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{c}, image.Point{}, draw.Src)
}

func imageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
