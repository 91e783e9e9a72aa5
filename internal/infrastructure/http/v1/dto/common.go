// Package dto provides Data Transfer Objects for API requests/responses.
// Money fields are carried as decimals inside the domain and widened to
// float64 only here, at the JSON boundary.
package dto

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
