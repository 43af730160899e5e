package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/headlines/api/internal/database"
	"github.com/forgo/headlines/api/internal/model"
)

// UserRepository handles user data access on SurrealDB
type UserRepository struct {
	db database.Records
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Records) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID. A missing user yields (nil, nil).
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := parseUserResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Save writes the mutable fields of the user back to its record.
// createdAt and lastLogin are owned by the auth flow and left untouched.
func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			email = $email,
			preferences = $preferences,
			favorites = $favorites,
			updatedAt = time::now()
	`

	vars := map[string]interface{}{
		"id":          user.ID,
		"name":        user.Name,
		"email":       user.Email,
		"preferences": preferencesToRecord(user.Preferences),
		"favorites":   favoritesToRecord(user.Favorites),
	}

	return r.db.Execute(ctx, query, vars)
}

// Ping checks the underlying database connection
func (r *UserRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Helper functions

func preferencesToRecord(p model.Preferences) map[string]interface{} {
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	return map[string]interface{}{
		"categories": categories,
		"theme":      p.Theme,
		"language":   p.Language,
	}
}

// favoritesToRecord stores savedAt as an RFC 3339 string with nanoseconds so
// that ordering survives the round trip.
func favoritesToRecord(favorites []model.FavoriteEntry) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(favorites))
	for _, fav := range favorites {
		records = append(records, map[string]interface{}{
			"articleId": fav.ArticleID,
			"title":     fav.Title,
			"url":       fav.URL,
			"source":    fav.Source,
			"savedAt":   fav.SavedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return records
}

func parseUserResult(result interface{}) (*model.User, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	// Handle array wrapper
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	user := &model.User{
		Name:      getString(data, "name"),
		Email:     getString(data, "email"),
		Favorites: make([]model.FavoriteEntry, 0),
		CreatedAt: parseTime(data["createdAt"]),
		LastLogin: getTime(data, "lastLogin"),
		Preferences: model.Preferences{
			Categories: []string{},
		},
	}
	if id, ok := data["id"]; ok {
		user.ID = convertSurrealID(id)
	}

	if prefs, ok := data["preferences"].(map[string]interface{}); ok {
		user.Preferences = model.Preferences{
			Categories: getStringSlice(prefs, "categories"),
			Theme:      getString(prefs, "theme"),
			Language:   getString(prefs, "language"),
		}
	}

	if favs, ok := data["favorites"].([]interface{}); ok {
		for _, item := range favs {
			fav, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			user.Favorites = append(user.Favorites, model.FavoriteEntry{
				ArticleID: getString(fav, "articleId"),
				Title:     getString(fav, "title"),
				URL:       getString(fav, "url"),
				Source:    getString(fav, "source"),
				SavedAt:   parseTime(fav["savedAt"]),
			})
		}
	}

	return user, nil
}
