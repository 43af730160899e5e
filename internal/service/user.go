package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/forgo/headlines/api/internal/model"
	"github.com/forgo/headlines/api/internal/validator"
)

// UserStore defines the interface for user storage.
// GetByID returns (nil, nil) when the user does not exist.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	Save(ctx context.Context, user *model.User) error
	Ping(ctx context.Context) error
}

// PayloadValidator validates tagged request structs
type PayloadValidator interface {
	Validate(i interface{}) error
}

// UserService handles profile, preferences, and favorites business logic
type UserService struct {
	store     UserStore
	validator PayloadValidator
	now       func() time.Time
	logger    *slog.Logger
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	Store     UserStore
	Validator PayloadValidator
	Clock     func() time.Time
	Logger    *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	s := &UserService{
		store:     cfg.Store,
		validator: cfg.Validator,
		now:       cfg.Clock,
		logger:    cfg.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// loadUser fetches the user or returns ErrUserNotFound
func (s *UserService) loadUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) save(ctx context.Context, user *model.User) error {
	if err := s.store.Save(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// GetProfile returns the profile projection of the user
func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.ProfileView, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToProfileView(), nil
}

// UpdateProfile overwrites name and email when they are non-empty and
// returns the full updated user. No format or uniqueness checks are made.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePreferences merges the provided preference fields and returns the
// resulting preferences. A non-nil empty categories slice clears categories.
func (s *UserService) UpdatePreferences(ctx context.Context, userID string, req *model.UpdatePreferencesRequest) (*model.Preferences, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Categories != nil {
		user.Preferences.Categories = req.Categories
	}
	if req.Theme != "" {
		user.Preferences.Theme = req.Theme
	}
	if req.Language != "" {
		user.Preferences.Language = req.Language
	}

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}

	prefs := user.Preferences
	return &prefs, nil
}

// GetFavorites returns the favorites ordered by SavedAt, newest first.
// Entries with equal timestamps keep their stored order. The stored list is not modified.
func (s *UserService) GetFavorites(ctx context.Context, userID string) (*model.FavoriteList, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorites := make([]model.FavoriteEntry, len(user.Favorites))
	copy(favorites, user.Favorites)
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].SavedAt.After(favorites[j].SavedAt)
	})

	return &model.FavoriteList{
		Count:     len(favorites),
		Favorites: favorites,
	}, nil
}

// AddFavorite appends a new favorite and returns the favorites in insertion order.
// Required fields are checked before the store is touched.
func (s *UserService) AddFavorite(ctx context.Context, userID string, req *model.AddFavoriteRequest) ([]model.FavoriteEntry, error) {
	if err := s.validator.Validate(req); err != nil {
		s.logger.Debug("rejected favorite",
			slog.String("user_id", userID),
			slog.Any("missing", validator.FailedFields(err)),
		)
		return nil, fmt.Errorf("%w: %v", ErrMissingFavoriteFields, err)
	}

	s.logger.Debug("adding favorite",
		slog.String("user_id", userID),
		slog.String("article_id", req.ArticleID),
		slog.String("url", req.URL),
	)

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasFavorite(req.ArticleID) {
		return nil, ErrFavoriteExists
	}

	source := req.Source
	if source == "" {
		source = model.DefaultFavoriteSource
	}

	user.Favorites = append(user.Favorites, model.FavoriteEntry{
		ArticleID: req.ArticleID,
		Title:     req.Title,
		URL:       req.URL,
		Source:    source,
		SavedAt:   s.now(),
	})

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Debug("favorite saved",
		slog.String("user_id", userID),
		slog.String("article_id", req.ArticleID),
	)

	return user.Favorites, nil
}

// RemoveFavorite deletes every entry with the given article ID and returns
// the remaining favorites in stored order.
func (s *UserService) RemoveFavorite(ctx context.Context, userID, articleID string) ([]model.FavoriteEntry, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	remaining := make([]model.FavoriteEntry, 0, len(user.Favorites))
	for _, fav := range user.Favorites {
		if fav.ArticleID != articleID {
			remaining = append(remaining, fav)
		}
	}

	if len(remaining) == len(user.Favorites) {
		return nil, ErrFavoriteNotFound
	}

	user.Favorites = remaining
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return remaining, nil
}

// Ping reports whether the user store is reachable
func (s *UserService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
