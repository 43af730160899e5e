package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== User Errors =====
var (
	ErrUserNotFound = errors.New("user not found")
)

// ===== Favorite Errors =====
var (
	ErrMissingFavoriteFields = errors.New("missing required favorite fields")
	ErrFavoriteExists        = errors.New("article already in favorites")
	ErrFavoriteNotFound      = errors.New("article not found in favorites")
)
