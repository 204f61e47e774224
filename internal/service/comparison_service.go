package service

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"go-image-checker/internal/comparator"
	apperrors "go-image-checker/internal/errors"
	"go-image-checker/internal/grader"
	"go-image-checker/internal/observer"
	"go-image-checker/internal/repository"
	"go-image-checker/internal/sampler"
	"go-image-checker/pkg/models"
	"go-image-checker/pkg/validation"
)

// ComparisonParams are the caller-chosen knobs for one comparison run
type ComparisonParams struct {
	Strategy     sampler.Strategy
	Points       int
	Threshold    float64
	CustomPoints []models.Coordinate
}

// Defaults fill in parameters a request leaves unset
type Defaults struct {
	Strategy  sampler.Strategy
	Points    int
	Threshold float64
}

// ComparisonService defines the interface for running image comparisons
type ComparisonService interface {
	// Compare fetches both images by location reference and runs the full
	// sample-compare-grade pipeline
	Compare(ctx context.Context, req models.ComparisonRequest) (*models.ComparisonResult, error)

	// CompareImages runs the pipeline over already-decoded images
	CompareImages(reference, test image.Image, referenceName, testName string, params ComparisonParams) (*models.ComparisonResult, error)
}

type comparisonService struct {
	imageRepo    repository.ImageRepository
	sampler      *sampler.Sampler
	validator    *validation.ParamValidator
	urlValidator *validation.URLValidator
	publisher    observer.Subject
	defaults     Defaults
}

// NewComparisonService creates a comparison service. publisher may be nil when
// no lifecycle events are wanted (e.g. the CLI).
func NewComparisonService(
	imageRepo repository.ImageRepository,
	smp *sampler.Sampler,
	publisher observer.Subject,
	defaults Defaults,
) ComparisonService {
	return &comparisonService{
		imageRepo:    imageRepo,
		sampler:      smp,
		validator:    validation.NewParamValidator(),
		urlValidator: validation.NewURLValidator(),
		publisher:    publisher,
		defaults:     defaults,
	}
}

// Compare fetches both images and runs the comparison pipeline
func (s *comparisonService) Compare(ctx context.Context, req models.ComparisonRequest) (*models.ComparisonResult, error) {
	params := s.applyDefaults(req)

	if err := s.urlValidator.ValidateImageURL(req.ReferenceURL); err != nil {
		return nil, apperrors.NewValidationError("invalid reference image URL", err)
	}
	if err := s.urlValidator.ValidateImageURL(req.TestURL); err != nil {
		return nil, apperrors.NewValidationError("invalid test image URL", err)
	}

	s.notify(ctx, observer.ComparisonEvent{
		EventType:      observer.ComparisonStarted,
		Timestamp:      time.Now(),
		ReferenceImage: req.ReferenceURL,
		TestImage:      req.TestURL,
		Strategy:       string(params.Strategy),
	})

	reference, test, err := s.imageRepo.FetchPair(ctx, req.ReferenceURL, req.TestURL)
	if err != nil {
		s.notify(ctx, observer.ComparisonEvent{
			EventType:      observer.ImageLoadFailed,
			Timestamp:      time.Now(),
			ReferenceImage: req.ReferenceURL,
			TestImage:      req.TestURL,
			ErrorMessage:   err.Error(),
		})
		return nil, apperrors.NewNetworkError("failed to load images", err)
	}

	s.notify(ctx, observer.ComparisonEvent{
		EventType:      observer.ImagesLoaded,
		Timestamp:      time.Now(),
		ReferenceImage: req.ReferenceURL,
		TestImage:      req.TestURL,
	})

	result, err := s.CompareImages(reference, test, req.ReferenceURL, req.TestURL, params)
	if err != nil {
		s.notify(ctx, observer.ComparisonEvent{
			EventType:      observer.ComparisonFailed,
			Timestamp:      time.Now(),
			ReferenceImage: req.ReferenceURL,
			TestImage:      req.TestURL,
			Strategy:       string(params.Strategy),
			ErrorMessage:   err.Error(),
		})
		return nil, err
	}

	s.notify(ctx, observer.ComparisonEvent{
		EventType:      observer.ComparisonCompleted,
		Timestamp:      time.Now(),
		ReferenceImage: req.ReferenceURL,
		TestImage:      req.TestURL,
		Strategy:       string(params.Strategy),
		ProcessingTime: time.Duration(result.ProcessingTimeSec * float64(time.Second)),
		Success:        true,
		Metadata: map[string]interface{}{
			"points":    result.Summary.TotalPoints,
			"pass_rate": result.Summary.PassRate,
			"grade":     result.Summary.Grade,
		},
	})
	return result, nil
}

// CompareImages runs sample -> compare -> grade over decoded images and
// bundles the outcome into a single self-describing result
func (s *comparisonService) CompareImages(reference, test image.Image, referenceName, testName string, params ComparisonParams) (*models.ComparisonResult, error) {
	start := time.Now()

	issues := s.validator.ValidateComparisonParams(string(params.Strategy), params.Points, params.Threshold, params.CustomPoints)
	if s.validator.HasCriticalIssues(issues) {
		messages := s.validator.ConvertIssuesToMessages(issues)
		return nil, apperrors.NewValidationError("invalid comparison parameters: "+strings.Join(messages, " "), nil)
	}

	if reference == nil || test == nil {
		return nil, apperrors.NewProcessingError("images not loaded", comparator.ErrImagesNotLoaded)
	}
	rb, tb := reference.Bounds(), test.Bounds()
	if rb.Dx() != tb.Dx() || rb.Dy() != tb.Dy() {
		return nil, apperrors.NewProcessingError(
			fmt.Sprintf("image dimensions do not match: %dx%d vs %dx%d", rb.Dx(), rb.Dy(), tb.Dx(), tb.Dy()),
			comparator.ErrDimensionMismatch,
		)
	}

	width, height := rb.Dx(), rb.Dy()
	coords := s.sampler.Generate(width, height, params.Points, params.Strategy, params.CustomPoints)
	if len(coords) == 0 {
		return nil, apperrors.NewProcessingError("no valid test points could be generated", comparator.ErrNoTestPoints)
	}

	var warnings []string
	if params.Strategy == sampler.StrategyCustom {
		if dropped := len(params.CustomPoints) - len(coords); dropped > 0 {
			warnings = append(warnings, fmt.Sprintf("%d custom point(s) outside image bounds were dropped", dropped))
		}
	} else if len(coords) < params.Points {
		warnings = append(warnings, fmt.Sprintf("requested %d points but only %d were generated", params.Points, len(coords)))
	}

	points, err := comparator.Compare(reference, test, coords, params.Threshold)
	if err != nil {
		return nil, apperrors.NewProcessingError("pixel comparison failed", err)
	}

	summary := comparator.Summarize(points)
	label, description := grader.Grade(summary.PassRate)
	summary.Grade = string(label)
	summary.GradeDescription = description
	summary.RecommendedAction = grader.RecommendedAction(label)

	return &models.ComparisonResult{
		ReferenceImage:    referenceName,
		TestImage:         testName,
		Timestamp:         start,
		ProcessingTimeSec: time.Since(start).Seconds(),
		Strategy:          string(params.Strategy),
		Threshold:         params.Threshold,
		Coordinates:       coords,
		Points:            points,
		Summary:           summary,
		Warnings:          warnings,
	}, nil
}

// applyDefaults resolves request parameters against the configured defaults
func (s *comparisonService) applyDefaults(req models.ComparisonRequest) ComparisonParams {
	params := ComparisonParams{
		Strategy:     sampler.Strategy(req.Strategy),
		Points:       req.Points,
		Threshold:    req.Threshold,
		CustomPoints: req.CustomPoints,
	}
	if params.Strategy == "" {
		params.Strategy = s.defaults.Strategy
	}
	if params.Points == 0 {
		params.Points = s.defaults.Points
	}
	if params.Threshold == 0 {
		params.Threshold = s.defaults.Threshold
	}
	return params
}

func (s *comparisonService) notify(ctx context.Context, event observer.ComparisonEvent) {
	if s.publisher != nil {
		s.publisher.NotifyObservers(ctx, event)
	}
}
