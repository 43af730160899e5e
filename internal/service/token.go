package service

import (
	"github.com/forgo/headlines/api/pkg/jwt"
)

// TokenService issues and verifies access tokens
type TokenService struct {
	jwtService *jwt.Service
}

// TokenServiceConfig holds configuration for the token service
type TokenServiceConfig struct {
	JWTService *jwt.Service
}

// NewTokenService creates a new token service
func NewTokenService(cfg TokenServiceConfig) *TokenService {
	return &TokenService{
		jwtService: cfg.JWTService,
	}
}

// AccessToken is a signed bearer token and its lifetime
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
	UserID      string `json:"user_id"`
}

// IssueAccessToken signs a bearer token for the given user
func (s *TokenService) IssueAccessToken(userID, email, name string) (*AccessToken, error) {
	claims := jwt.Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
	}
	claims.Subject = userID

	token, err := s.jwtService.Sign(claims)
	if err != nil {
		return nil, err
	}

	return &AccessToken{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwtService.GetExpiration().Seconds()),
		UserID:      userID,
	}, nil
}

// ValidateAccessToken validates an access token and returns the claims
func (s *TokenService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.jwtService.Validate(token)
}
