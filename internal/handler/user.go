package handler

import (
	"net/http"
	"strings"

	"github.com/forgo/headlines/api/internal/middleware"
	"github.com/forgo/headlines/api/internal/model"
	"github.com/forgo/headlines/api/internal/service"
)

// UserHandler handles the authenticated user's favorites, preferences, and profile
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterUserRoutes mounts the user endpoints under basePath, each wrapped in auth
func RegisterUserRoutes(mux *http.ServeMux, basePath string, h *UserHandler, auth middleware.Middleware) {
	base := strings.TrimRight(basePath, "/")

	mux.Handle("GET "+base+"/user/favorites", auth(http.HandlerFunc(h.GetFavorites)))
	mux.Handle("POST "+base+"/user/favorites", auth(http.HandlerFunc(h.AddFavorite)))
	mux.Handle("DELETE "+base+"/user/favorites/{articleId}", auth(http.HandlerFunc(h.RemoveFavorite)))
	mux.Handle("PUT "+base+"/user/preferences", auth(http.HandlerFunc(h.UpdatePreferences)))
	mux.Handle("GET "+base+"/user/profile", auth(http.HandlerFunc(h.GetProfile)))
	mux.Handle("PUT "+base+"/user/profile", auth(http.HandlerFunc(h.UpdateProfile)))
}

// GetFavorites handles GET /user/favorites
func (h *UserHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError(msgAuthRequired))
		return
	}

	list, err := h.userService.GetFavorites(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "get favorites", err)
		return
	}

	WriteResults(w, list.Count, map[string]interface{}{
		"favorites": list.Favorites,
	})
}

// AddFavorite handles POST /user/favorites
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError(msgAuthRequired))
		return
	}

	var req model.AddFavoriteRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError(msgInvalidBody))
		return
	}

	favorites, err := h.userService.AddFavorite(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, "add favorite", err)
		return
	}

	WriteSuccess(w, "Article added to favorites", map[string]interface{}{
		"favorites": favorites,
	})
}

// RemoveFavorite handles DELETE /user/favorites/{articleId}
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError(msgAuthRequired))
		return
	}

	articleID := r.PathValue("articleId")

	favorites, err := h.userService.RemoveFavorite(r.Context(), userID, articleID)
	if err != nil {
		writeServiceError(w, r, "remove favorite", err)
		return
	}

	WriteSuccess(w, "Article removed from favorites", map[string]interface{}{
		"favorites": favorites,
	})
}

// UpdatePreferences handles PUT /user/preferences
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError(msgAuthRequired))
		return
	}

	var req model.UpdatePreferencesRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError(msgInvalidBody))
		return
	}

	prefs, err := h.userService.UpdatePreferences(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, "update preferences", err)
		return
	}

	WriteSuccess(w, "Preferences updated successfully", map[string]interface{}{
		"preferences": prefs,
	})
}

// GetProfile handles GET /user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError(msgAuthRequired))
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "get profile", err)
		return
	}

	WriteSuccess(w, "", map[string]interface{}{
		"user": profile,
	})
}

// UpdateProfile handles PUT /user/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError(msgAuthRequired))
		return
	}

	var req model.UpdateProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError(msgInvalidBody))
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, "update profile", err)
		return
	}

	WriteSuccess(w, "Profile updated successfully", map[string]interface{}{
		"user": user,
	})
}
