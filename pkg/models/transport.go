package models

// ComparisonRequest represents a request to compare two images
type ComparisonRequest struct {
	ReferenceURL string `json:"reference_url" binding:"required,url"`
	TestURL      string `json:"test_url" binding:"required,url"`

	// Sampling parameters; zero values fall back to server defaults
	Strategy     string       `json:"strategy,omitempty"`
	Points       int          `json:"points,omitempty"`
	Threshold    float64      `json:"threshold,omitempty"`
	CustomPoints []Coordinate `json:"custom_points,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
