package model

import "time"

// DefaultFavoriteSource is stored when a favorite is saved without a source
const DefaultFavoriteSource = "Unknown"

// User represents a reader account together with its embedded favorites
type User struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Preferences Preferences     `json:"preferences"`
	Favorites   []FavoriteEntry `json:"favorites"`
	CreatedAt   time.Time       `json:"createdAt"`
	LastLogin   *time.Time      `json:"lastLogin,omitempty"`
}

// Preferences holds the reader's feed settings
type Preferences struct {
	Categories []string `json:"categories"`
	Theme      string   `json:"theme"`
	Language   string   `json:"language"`
}

// FavoriteEntry is a saved article. Entries are unique by ArticleID within one user.
type FavoriteEntry struct {
	ArticleID string    `json:"articleId"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Source    string    `json:"source"`
	SavedAt   time.Time `json:"savedAt"`
}

// HasFavorite reports whether an entry with the given article ID is saved
func (u *User) HasFavorite(articleID string) bool {
	for _, fav := range u.Favorites {
		if fav.ArticleID == articleID {
			return true
		}
	}
	return false
}

// ProfileView is the read-only projection returned by the profile endpoint
type ProfileView struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Preferences    Preferences `json:"preferences"`
	FavoritesCount int         `json:"favoritesCount"`
	CreatedAt      time.Time   `json:"createdAt"`
	LastLogin      *time.Time  `json:"lastLogin,omitempty"`
}

// ToProfileView projects the user into its profile view
func (u *User) ToProfileView() *ProfileView {
	return &ProfileView{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Preferences:    u.Preferences,
		FavoritesCount: len(u.Favorites),
		CreatedAt:      u.CreatedAt,
		LastLogin:      u.LastLogin,
	}
}

// FavoriteList is a favorites snapshot with its length at read time
type FavoriteList struct {
	Count     int
	Favorites []FavoriteEntry
}

// UpdateProfileRequest carries a partial profile update.
// Empty strings mean "leave unchanged".
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdatePreferencesRequest carries a partial preferences update.
// A nil Categories slice leaves categories unchanged; an empty, non-nil one clears them.
type UpdatePreferencesRequest struct {
	Categories []string `json:"categories"`
	Theme      string   `json:"theme"`
	Language   string   `json:"language"`
}

// AddFavoriteRequest is the payload for saving an article
type AddFavoriteRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
	Title     string `json:"title" validate:"required"`
	URL       string `json:"url" validate:"required"`
	Source    string `json:"source"`
}
