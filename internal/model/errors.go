package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIError is the error envelope returned by every failing endpoint:
// {"status":"error","message":"..."}
type APIError struct {
	Code    int    `json:"-"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// WriteJSON writes the error envelope as the response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Code)
	_ = json.NewEncoder(w).Encode(e)
}

func newAPIError(code int, message string) *APIError {
	return &APIError{
		Code:    code,
		Status:  StatusError,
		Message: message,
	}
}

// Common error constructors

func NewBadRequestError(message string) *APIError {
	return newAPIError(http.StatusBadRequest, message)
}

func NewUnauthorizedError(message string) *APIError {
	return newAPIError(http.StatusUnauthorized, message)
}

func NewNotFoundError(message string) *APIError {
	return newAPIError(http.StatusNotFound, message)
}

func NewMethodNotAllowedError(message string) *APIError {
	return newAPIError(http.StatusMethodNotAllowed, message)
}

// NewConflictError builds the duplicate-resource error. Clients of this API
// expect duplicates to be answered with 400, not 409.
func NewConflictError(message string) *APIError {
	return newAPIError(http.StatusBadRequest, message)
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "Something went wrong"
	}
	return newAPIError(http.StatusInternalServerError, message)
}

func NewServiceUnavailableError(message string) *APIError {
	return newAPIError(http.StatusServiceUnavailable, message)
}
