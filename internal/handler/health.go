package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/forgo/headlines/api/internal/model"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// Health returns a handler for GET /health that pings the user store
func Health(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			slog.Warn("health check failed", slog.String("error", err.Error()))
			WriteError(w, model.NewServiceUnavailableError("store unavailable"))
			return
		}

		WriteSuccess(w, "", map[string]string{"store": "ok"})
	}
}
