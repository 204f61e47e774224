package storage

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"
)

// ImageSource loads a decoded image from a location reference: a URL for the
// HTTP and blob backends, a filesystem path for the local backend.
type ImageSource interface {
	FetchImage(ctx context.Context, ref string) (image.Image, error)
}

// HTTPImageSource fetches and decodes images over HTTP(S)
type HTTPImageSource struct {
	client *http.Client
}

// NewHTTPImageSource creates an HTTP image source with pooling and timeouts
// tuned for one-shot image downloads
func NewHTTPImageSource(timeout time.Duration) ImageSource {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     30 * time.Second,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		MaxResponseHeaderBytes: 4096,
	}

	return &HTTPImageSource{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
	}
}

func (h *HTTPImageSource) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, */*")
	req.Header.Set("User-Agent", "Go-Image-Checker/1.0")

	// Up to 3 attempts; 4xx responses are not retried
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		resp, err := h.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusOK {
			defer resp.Body.Close()
			img, _, err := image.Decode(resp.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to decode image: %w", err)
			}
			return img, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("unexpected status code %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			break
		}
	}

	return nil, fmt.Errorf("failed to fetch image after retries: %w", lastErr)
}
