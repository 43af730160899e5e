// Package middleware provides HTTP middleware for the Headlines API.
//
// # Available Middleware
//
//   - RequestID: tags each request with an X-Request-ID
//   - Logger: one structured access log line per request
//   - Recovery: converts panics into the 500 error envelope
//   - CORS: origin allow-list and preflight handling
//   - Compress: gzip for clients that accept it
//   - Auth: bearer token validation
//
// Compose them with Chain; the first middleware listed runs first:
//
//	h := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// # Context Values
//
//   - GetRequestID(ctx): request identifier
//   - GetUserID(ctx): authenticated user ID, set by Auth
package middleware
