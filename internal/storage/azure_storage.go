package storage

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// AzureImageSource loads images from Azure blob storage. The location
// reference is a URL whose path names the container and whose "blob" query
// parameter names the blob.
type AzureImageSource struct {
	client *azblob.Client
}

// NewAzureImageSource creates a blob-backed image source using shared key
// credentials
func NewAzureImageSource(accountName, accountKey string) (ImageSource, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, err
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &AzureImageSource{client: client}, nil
}

func (s *AzureImageSource) FetchImage(ctx context.Context, blobURL string) (image.Image, error) {
	parsedURL, err := url.Parse(blobURL)
	if err != nil {
		return nil, fmt.Errorf("invalid blob URL: %w", err)
	}
	if len(parsedURL.Path) < 2 {
		return nil, fmt.Errorf("blob URL missing container name: %s", blobURL)
	}

	containerName := parsedURL.Path[1:] // strip leading slash
	blobName := parsedURL.Query().Get("blob")
	if blobName == "" {
		return nil, fmt.Errorf("blob URL missing blob query parameter: %s", blobURL)
	}

	downloadResponse, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}

	retryReader := downloadResponse.Body
	defer retryReader.Close()

	img, _, err := image.Decode(retryReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode blob image: %w", err)
	}
	return img, nil
}
