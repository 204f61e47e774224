package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go-image-checker/internal/repository"
	"go-image-checker/internal/report"
	"go-image-checker/internal/sampler"
	"go-image-checker/internal/service"
	"go-image-checker/internal/storage"
	"go-image-checker/internal/visualize"
	"go-image-checker/pkg/models"
)

func main() {
	method := flag.String("method", "strategic", "test point selection method: random, grid, strategic, custom")
	points := flag.Int("points", 8, "number of test points")
	threshold := flag.Float64("threshold", 30.0, "significance threshold for defects")
	custom := flag.String("custom", "", "custom point coordinates, space separated x,y pairs (e.g. \"100,100 200,200\")")
	seed := flag.Int64("seed", 0, "random seed for reproducible random sampling (0 = time-seeded)")
	outDir := flag.String("out", "reports", "directory for report and visualization output")
	noSave := flag.Bool("no-save", false, "don't save visualization and report files")
	quiet := flag.Bool("quiet", false, "quiet mode, minimal output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <reference-image> <test-image>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}
	referencePath := flag.Arg(0)
	testPath := flag.Arg(1)

	customPoints, err := parseCustomPoints(*custom)
	if err != nil {
		fatal(err.Error())
	}
	if sampler.Strategy(*method) == sampler.StrategyCustom && len(customPoints) == 0 {
		fatal("custom method requires -custom points")
	}

	smp := sampler.New()
	if *seed != 0 {
		smp = sampler.NewWithSource(rand.NewSource(*seed))
	}

	source := storage.NewFileImageSource()
	imageRepo := repository.NewSourceImageRepository(source)
	svc := service.NewComparisonService(imageRepo, smp, nil, service.Defaults{
		Strategy:  sampler.Strategy(*method),
		Points:    *points,
		Threshold: *threshold,
	})

	ctx := context.Background()
	reference, test, err := imageRepo.FetchPair(ctx, referencePath, testPath)
	if err != nil {
		fatal(fmt.Sprintf("cannot load images: %v", err))
	}

	result, err := svc.CompareImages(reference, test, referencePath, testPath, service.ComparisonParams{
		Strategy:     sampler.Strategy(*method),
		Points:       *points,
		Threshold:    *threshold,
		CustomPoints: customPoints,
	})
	if err != nil {
		fatal(fmt.Sprintf("analysis failed: %v", err))
	}

	if !*quiet {
		printSummary(result)
	}

	if !*noSave {
		stamp := time.Now().Format("20060102_150405")
		sessionDir := filepath.Join(*outDir, fmt.Sprintf("analysis_%s_%s", stamp, result.Strategy))

		reportPath := filepath.Join(sessionDir, "comparison_report.txt")
		if err := report.WriteFile(result, reportPath); err != nil {
			fatal(err.Error())
		}

		visPath := filepath.Join(sessionDir, "comparison_visualization.png")
		if err := visualize.WriteFile(reference, test, result, visPath); err != nil {
			fatal(err.Error())
		}

		if !*quiet {
			fmt.Printf("\nFiles saved in %s/\n", sessionDir)
		}
	}

	if result.Summary.Grade == "FAIL" {
		os.Exit(1)
	}
}

// parseCustomPoints parses space separated "x,y" pairs
func parseCustomPoints(s string) ([]models.Coordinate, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var coords []models.Coordinate
	for _, pair := range strings.Fields(s) {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid point format %q, use x,y", pair)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("invalid point format %q, use x,y", pair)
		}
		coords = append(coords, models.Coordinate{X: x, Y: y})
	}
	return coords, nil
}

func printSummary(result *models.ComparisonResult) {
	s := result.Summary
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("ANALYSIS COMPLETE")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Test points analyzed: %d\n", s.TotalPoints)
	fmt.Printf("Defects found: %d\n", s.SignificantPoints)
	fmt.Printf("Pass rate: %.1f%%\n", s.PassRate)
	fmt.Printf("Overall result: %s\n", s.Grade)
	fmt.Printf("  %s\n", s.GradeDescription)
	for _, w := range result.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	os.Exit(1)
}
