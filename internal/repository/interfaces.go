package repository

import (
	"context"
	"image"
)

// ImageRepository defines the interface for loading the images under
// comparison
type ImageRepository interface {
	// FetchImage retrieves a single decoded image
	FetchImage(ctx context.Context, ref string) (image.Image, error)

	// FetchPair retrieves the reference and test images for one comparison run
	FetchPair(ctx context.Context, referenceRef, testRef string) (reference, test image.Image, err error)

	// ValidateImageRef validates if the provided location reference is acceptable
	ValidateImageRef(ref string) error
}
