package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/forgo/headlines/api/internal/middleware"
	"github.com/forgo/headlines/api/internal/model"
	"github.com/forgo/headlines/api/internal/service"
)

// Client-facing error messages
const (
	msgMissingFavoriteFields = "Missing required fields: articleId, title, and url are required"
	msgUserNotFound          = "User not found"
	msgFavoriteExists        = "Article already in favorites"
	msgFavoriteNotFound      = "Article not found in favorites"
	msgInvalidBody           = "Invalid request body"
	msgAuthRequired          = "authentication required"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrMissingFavoriteFields):
		return model.NewBadRequestError(msgMissingFavoriteFields)

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError(msgUserNotFound)
	case errors.Is(err, service.ErrFavoriteNotFound):
		return model.NewNotFoundError(msgFavoriteNotFound)

	// ===== Conflict Errors → 400 =====
	case errors.Is(err, service.ErrFavoriteExists):
		return model.NewConflictError(msgFavoriteExists)

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// writeServiceError maps err and writes it. Unmapped errors are logged
// with the request ID before the generic 500 goes out.
func writeServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	apiErr := MapServiceError(err)
	if apiErr.Code == http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("user_id", middleware.GetUserID(r.Context())),
		)
	}
	WriteError(w, apiErr)
}
