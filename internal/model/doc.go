// Package model defines domain entities and data structures for the Headlines API.
//
// The model package contains the user document, its embedded favorites and
// preferences, request payloads, and the JSON error envelope. Models are used
// across all layers of the application.
//
// # Domain Entities
//
//   - User: reader account owning preferences and favorites
//   - FavoriteEntry: a saved article, unique by ArticleID per user
//   - ProfileView: read-only projection served by GET /user/profile
//
// # JSON Serialization
//
// Field names on the wire are camelCase to stay compatible with existing clients:
//
//	type FavoriteEntry struct {
//	    ArticleID string    `json:"articleId"`
//	    SavedAt   time.Time `json:"savedAt"`
//	}
//
// # Error Envelope
//
// Failed requests are answered with APIError:
//
//	{"status": "error", "message": "User not found"}
package model
