package handler

import (
	"net/http"

	"github.com/forgo/headlines/api/internal/model"
)

const (
	msgRouteNotFound    = "Route not found"
	msgMethodNotAllowed = "Method not allowed"
)

// WithFallback serves mux, answering requests that match no route with the
// JSON error envelope instead of the mux's plain-text 404 and 405 bodies.
func WithFallback(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, pattern := mux.Handler(r)
		if pattern != "" {
			mux.ServeHTTP(w, r)
			return
		}

		// Let the mux decide between 404 and 405, then replace its body.
		rec := &statusCapture{header: make(http.Header)}
		h.ServeHTTP(rec, r)

		if rec.status == http.StatusMethodNotAllowed {
			if allow := rec.header.Get("Allow"); allow != "" {
				w.Header().Set("Allow", allow)
			}
			WriteError(w, model.NewMethodNotAllowedError(msgMethodNotAllowed))
			return
		}
		WriteError(w, model.NewNotFoundError(msgRouteNotFound))
	})
}

// statusCapture records the status and headers a handler writes and discards the body
type statusCapture struct {
	header http.Header
	status int
}

func (c *statusCapture) Header() http.Header {
	return c.header
}

func (c *statusCapture) WriteHeader(code int) {
	if c.status == 0 {
		c.status = code
	}
}

func (c *statusCapture) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	return len(b), nil
}
