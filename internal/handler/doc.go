// Package handler provides HTTP request handlers for the Headlines API.
//
// UserHandler serves the authenticated reader's favorites, preferences,
// and profile. Health reports store reachability for load balancers.
//
// # Response Format
//
// Every response is a JSON envelope:
//
//	{"status":"success","message":"...","results":N,"data":{...}}
//	{"status":"error","message":"..."}
//
// message and results are present only on the endpoints that set them.
// Service errors are converted by MapServiceError; anything it does not
// recognize becomes a 500 with a generic message and the cause is logged.
//
// # Authentication
//
// All user routes sit behind the auth middleware, which places the caller's
// ID in the request context. Handlers read it with middleware.GetUserID.
//
// # Example Usage
//
//	h := NewUserHandler(userService)
//	RegisterUserRoutes(mux, "/api", h, middleware.Auth(tokenValidator))
//	mux.HandleFunc("GET /health", Health(userStore))
package handler
