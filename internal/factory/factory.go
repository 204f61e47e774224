package factory

import (
	"fmt"
	"os"
	"time"

	"go-image-checker/internal/storage"
)

// SourceType represents different image storage backends
type SourceType string

const (
	// HTTPSource fetches images over HTTP(S)
	HTTPSource SourceType = "http"
	// AzureSource loads images from Azure blob storage
	AzureSource SourceType = "azure"
	// LocalSource reads images from the local filesystem
	LocalSource SourceType = "local"
)

// SourceFactory creates image source implementations
type SourceFactory interface {
	CreateSource(sourceType SourceType) (storage.ImageSource, error)
}

type sourceFactory struct {
	fetchTimeout time.Duration
}

// NewSourceFactory creates a new image source factory
func NewSourceFactory(fetchTimeout time.Duration) SourceFactory {
	return &sourceFactory{fetchTimeout: fetchTimeout}
}

// CreateSource creates an image source for the specified backend. The Azure
// backend reads its shared key credentials from the environment.
func (f *sourceFactory) CreateSource(sourceType SourceType) (storage.ImageSource, error) {
	switch sourceType {
	case HTTPSource:
		return storage.NewHTTPImageSource(f.fetchTimeout), nil
	case AzureSource:
		accountName := os.Getenv("AZURE_STORAGE_ACCOUNT")
		accountKey := os.Getenv("AZURE_STORAGE_KEY")
		if accountName == "" || accountKey == "" {
			return nil, fmt.Errorf("azure source requires AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_KEY")
		}
		return storage.NewAzureImageSource(accountName, accountKey)
	case LocalSource:
		return storage.NewFileImageSource(), nil
	default:
		return nil, fmt.Errorf("unsupported source type: %s", sourceType)
	}
}
