// Package jwt signs and validates RS256 access tokens for the Headlines API.
//
// Tokens are handled by github.com/golang-jwt/jwt/v5. Library errors are
// mapped onto this package's sentinels so callers can switch on them.
//
// # Token Generation
//
//	svc, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "keys/private.pem",
//	    Issuer:         "headlines-api",
//	    ExpirationMins: 60,
//	})
//	token, err := svc.Sign(jwt.Claims{UserID: "user:abc", Email: "a@example.com"})
//
// # Token Validation
//
// A server that only verifies tokens needs just the public key:
//
//	claims, err := svc.Validate(tokenString)
//	switch {
//	case errors.Is(err, jwt.ErrTokenExpired):
//	    // ask the client to sign in again
//	case err != nil:
//	    // reject
//	}
//	userID := claims.UserID
package jwt
