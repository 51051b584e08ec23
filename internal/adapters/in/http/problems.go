package http

import (
	"net/http"
	"time"
)

// ErrorResponse is the uniform body for validation failures: produced once
// per request with the complete set of offending fields.
type ErrorResponse struct {
	Timestamp        time.Time         `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
	Path             string            `json:"path"`
}

// NewValidationFailedResponse builds the aggregated 400 body for the given
// request path and field→message mapping.
func NewValidationFailedResponse(path string, fieldMessages map[string]string) ErrorResponse {
	return ErrorResponse{
		Timestamp:        time.Now(),
		Status:           http.StatusBadRequest,
		Error:            "Validation Failed",
		ValidationErrors: fieldMessages,
		Path:             path,
	}
}

// ServerError is the minimal body for infrastructure failures surfaced at
// the boundary.
type ServerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
