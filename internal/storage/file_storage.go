package storage

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// FileImageSource loads images from the local filesystem. Used by the CLI,
// where the location reference is a path.
type FileImageSource struct{}

// NewFileImageSource creates a filesystem-backed image source
func NewFileImageSource() ImageSource {
	return &FileImageSource{}
}

func (s *FileImageSource) FetchImage(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open image file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
