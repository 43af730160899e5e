// Package service implements the business logic layer for the Headlines API.
//
// UserService owns the reader's profile, feed preferences, and saved
// articles. Every operation loads the user document, mutates it in memory,
// and writes it back with a single Save. Concurrent writers race and the
// last write wins.
//
// # Store Interface
//
// The service defines its own UserStore interface, satisfied by both the
// SurrealDB and MongoDB repositories and by func-field mocks in tests.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables
// in errors.go, for example:
//
//	var (
//	    ErrUserNotFound     = errors.New("user not found")
//	    ErrFavoriteExists   = errors.New("article already in favorites")
//	)
//
// Store failures are wrapped with context and reach the handler's generic
// 500 path.
//
// # Example Usage
//
//	svc := NewUserService(UserServiceConfig{
//	    Store:     userRepository,
//	    Validator: validator.New(),
//	})
//	favs, err := svc.AddFavorite(ctx, userID, &model.AddFavoriteRequest{
//	    ArticleID: "abc", Title: "Headline", URL: "https://example.com/abc",
//	})
package service
