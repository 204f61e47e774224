package validation

import (
	"net/url"
	"strings"

	apperrors "go-image-checker/internal/errors"
)

// URLValidator handles image URL validation logic
type URLValidator struct {
	allowedSchemes []string
}

// NewURLValidator creates a URL validator accepting http and https
func NewURLValidator() *URLValidator {
	return &URLValidator{allowedSchemes: []string{"http", "https"}}
}

// NewURLValidatorWithSchemes creates a URL validator with custom schemes
func NewURLValidatorWithSchemes(schemes []string) *URLValidator {
	return &URLValidator{allowedSchemes: schemes}
}

// ValidateImageURL validates if the provided URL is acceptable for fetching
func (v *URLValidator) ValidateImageURL(imageURL string) error {
	if strings.TrimSpace(imageURL) == "" {
		return apperrors.NewValidationError("URL cannot be empty", nil)
	}

	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return apperrors.NewValidationError("Invalid URL format", err)
	}
	if parsedURL.Host == "" {
		return apperrors.NewValidationError("URL must have a valid host", nil)
	}

	schemeOK := false
	for _, scheme := range v.allowedSchemes {
		if parsedURL.Scheme == scheme {
			schemeOK = true
			break
		}
	}
	if !schemeOK {
		return apperrors.NewValidationError("URL scheme must be one of: "+strings.Join(v.allowedSchemes, ", "), nil)
	}

	return nil
}
