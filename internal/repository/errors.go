package repository

import "errors"

var (
	// ErrInvalidImageRef indicates an invalid image location reference
	ErrInvalidImageRef = errors.New("invalid image reference")

	// ErrImageUnavailable indicates the image could not be loaded
	ErrImageUnavailable = errors.New("image unavailable")
)
