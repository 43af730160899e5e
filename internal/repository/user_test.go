package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/forgo/headlines/api/internal/database"
	"github.com/forgo/headlines/api/internal/model"
)

// ============================================================================
// Mock Database
// ============================================================================

type mockDatabase struct {
	queryOneFunc func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
	executeFunc  func(ctx context.Context, query string, vars map[string]interface{}) error
	pingFunc     func(ctx context.Context) error
}

var _ database.Records = (*mockDatabase)(nil)

func (m *mockDatabase) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func (m *mockDatabase) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	if m.queryOneFunc != nil {
		return m.queryOneFunc(ctx, query, vars)
	}
	return nil, database.ErrNotFound
}

func (m *mockDatabase) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query, vars)
	}
	return nil
}

func storedUser() map[string]interface{} {
	return map[string]interface{}{
		"id":        models.RecordID{Table: "user", ID: "ada"},
		"name":      "Ada",
		"email":     "ada@example.com",
		"createdAt": models.CustomDateTime{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		"preferences": map[string]interface{}{
			"categories": []interface{}{"tech", "science"},
			"theme":      "dark",
			"language":   "en",
		},
		"favorites": []interface{}{
			map[string]interface{}{
				"articleId": "a1",
				"title":     "First",
				"url":       "http://x",
				"source":    "BBC",
				"savedAt":   "2025-02-01T10:00:00.123456789Z",
			},
		},
	}
}

// ============================================================================
// GetByID Tests
// ============================================================================

func TestUserRepository_GetByID_ParsesRecord(t *testing.T) {
	t.Parallel()

	var gotVars map[string]interface{}
	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			gotVars = vars
			return storedUser(), nil
		},
	}

	user, err := NewUserRepository(db).GetByID(context.Background(), "user:ada")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user:ada", gotVars["id"])
	assert.Equal(t, "user:ada", user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, []string{"tech", "science"}, user.Preferences.Categories)
	assert.Equal(t, "dark", user.Preferences.Theme)
	assert.Nil(t, user.LastLogin)
	require.Len(t, user.Favorites, 1)
	assert.Equal(t, "BBC", user.Favorites[0].Source)
	assert.Equal(t, 123456789, user.Favorites[0].SavedAt.Nanosecond())
	assert.Equal(t, 2024, user.CreatedAt.Year())
}

func TestUserRepository_GetByID_MissingReturnsNil(t *testing.T) {
	t.Parallel()

	user, err := NewUserRepository(&mockDatabase{}).GetByID(context.Background(), "user:ghost")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_GetByID_PropagatesQueryError(t *testing.T) {
	t.Parallel()

	db := &mockDatabase{
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			return nil, database.ErrConnection
		},
	}

	_, err := NewUserRepository(db).GetByID(context.Background(), "user:ada")

	assert.True(t, errors.Is(err, database.ErrConnection))
}

func TestParseUserResult_DefaultsEmptyCollections(t *testing.T) {
	t.Parallel()

	user, err := parseUserResult(map[string]interface{}{"id": "user:new", "name": "New"})

	require.NoError(t, err)
	assert.NotNil(t, user.Favorites)
	assert.Empty(t, user.Favorites)
	assert.NotNil(t, user.Preferences.Categories)
}

func TestParseUserResult_UnexpectedFormat(t *testing.T) {
	t.Parallel()

	_, err := parseUserResult("not a record")

	assert.Error(t, err)
}

// ============================================================================
// Save Tests
// ============================================================================

func TestUserRepository_Save_SendsMutableFields(t *testing.T) {
	t.Parallel()

	saved := time.Date(2025, 2, 1, 10, 0, 0, 5, time.UTC)
	var gotVars map[string]interface{}
	db := &mockDatabase{
		executeFunc: func(ctx context.Context, query string, vars map[string]interface{}) error {
			gotVars = vars
			return nil
		},
	}

	err := NewUserRepository(db).Save(context.Background(), &model.User{
		ID:          "user:ada",
		Name:        "Ada",
		Email:       "ada@example.com",
		Preferences: model.Preferences{Theme: "dark"},
		Favorites: []model.FavoriteEntry{
			{ArticleID: "a1", Title: "T", URL: "http://x", Source: "BBC", SavedAt: saved},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "user:ada", gotVars["id"])
	assert.Equal(t, "Ada", gotVars["name"])

	prefs := gotVars["preferences"].(map[string]interface{})
	assert.Equal(t, []string{}, prefs["categories"])
	assert.Equal(t, "dark", prefs["theme"])

	favs := gotVars["favorites"].([]map[string]interface{})
	require.Len(t, favs, 1)
	assert.Equal(t, "a1", favs[0]["articleId"])
	assert.Equal(t, "2025-02-01T10:00:00.000000005Z", favs[0]["savedAt"])
}

func TestUserRepository_Save_RoundTripKeepsOrderAndTimes(t *testing.T) {
	t.Parallel()

	t1 := time.Date(2025, 1, 1, 0, 0, 0, 1, time.UTC)
	t2 := t1.Add(time.Millisecond)
	var stored map[string]interface{}
	db := &mockDatabase{
		executeFunc: func(ctx context.Context, query string, vars map[string]interface{}) error {
			favs := make([]interface{}, 0)
			for _, f := range vars["favorites"].([]map[string]interface{}) {
				favs = append(favs, map[string]interface{}(f))
			}
			stored = map[string]interface{}{"id": vars["id"], "favorites": favs}
			return nil
		},
		queryOneFunc: func(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
			return stored, nil
		},
	}
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &model.User{
		ID:        "user:ada",
		Favorites: []model.FavoriteEntry{{ArticleID: "a1", SavedAt: t1}, {ArticleID: "a2", SavedAt: t2}},
	}))
	user, err := repo.GetByID(ctx, "user:ada")

	require.NoError(t, err)
	require.Len(t, user.Favorites, 2)
	assert.Equal(t, "a1", user.Favorites[0].ArticleID)
	assert.True(t, user.Favorites[0].SavedAt.Equal(t1))
	assert.True(t, user.Favorites[1].SavedAt.Equal(t2))
}

// ============================================================================
// Helper Tests
// ============================================================================

func TestConvertSurrealID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "user:1", "user:1"},
		{"record id", models.RecordID{Table: "user", ID: "1"}, "user:1"},
		{"record id pointer", &models.RecordID{Table: "user", ID: "2"}, "user:2"},
		{"map", map[string]interface{}{"tb": "user", "id": map[string]interface{}{"String": "3"}}, "user:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertSurrealID(tt.in))
		})
	}
}
