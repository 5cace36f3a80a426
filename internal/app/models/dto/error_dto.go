package dto

// ErrorResponse is the standard error body for every failed request
type ErrorResponse struct {
	Error string `json:"error" example:"Subject not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}
