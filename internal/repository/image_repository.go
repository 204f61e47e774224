package repository

import (
	"context"
	"fmt"
	"image"
	"strings"

	"go-image-checker/internal/storage"
)

// SourceImageRepository implements ImageRepository over any storage backend
type SourceImageRepository struct {
	source storage.ImageSource
}

// NewSourceImageRepository creates an image repository backed by the given
// image source
func NewSourceImageRepository(source storage.ImageSource) ImageRepository {
	return &SourceImageRepository{source: source}
}

// FetchImage retrieves a single decoded image
func (r *SourceImageRepository) FetchImage(ctx context.Context, ref string) (image.Image, error) {
	if err := r.ValidateImageRef(ref); err != nil {
		return nil, err
	}

	img, err := r.source.FetchImage(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageUnavailable, err)
	}
	return img, nil
}

// FetchPair retrieves the reference and test images for one comparison run.
// Both must load; a comparison never proceeds with a missing side.
func (r *SourceImageRepository) FetchPair(ctx context.Context, referenceRef, testRef string) (image.Image, image.Image, error) {
	reference, err := r.FetchImage(ctx, referenceRef)
	if err != nil {
		return nil, nil, fmt.Errorf("reference image: %w", err)
	}

	test, err := r.FetchImage(ctx, testRef)
	if err != nil {
		return nil, nil, fmt.Errorf("test image: %w", err)
	}

	return reference, test, nil
}

// ValidateImageRef validates if the provided location reference is acceptable
func (r *SourceImageRepository) ValidateImageRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return ErrInvalidImageRef
	}
	return nil
}
