package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/headlines/api/pkg/jwt"
)

func createTestJWTService(t *testing.T) *jwt.Service {
	t.Helper()
	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	require.NoError(t, jwt.GenerateKeyPair(privPath, filepath.Join(dir, "public.pem")))

	svc, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: privPath,
		Issuer:         "test-issuer",
		ExpirationMins: 60,
	})
	require.NoError(t, err)
	return svc
}

func TestTokenService_IssueThenValidate(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(TokenServiceConfig{JWTService: createTestJWTService(t)})

	issued, err := svc.IssueAccessToken("user:ada", "ada@example.com", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", issued.TokenType)
	assert.Equal(t, 3600, issued.ExpiresIn)

	claims, err := svc.ValidateAccessToken(issued.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user:ada", claims.UserID)
	assert.Equal(t, "user:ada", claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
}

func TestTokenService_ValidateGarbage(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(TokenServiceConfig{JWTService: createTestJWTService(t)})

	_, err := svc.ValidateAccessToken("not.a.token")

	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestTokenService_IssueWithoutPrivateKey(t *testing.T) {
	t.Parallel()
	verifyOnly, err := jwt.NewService(jwt.Config{Issuer: "test-issuer"})
	require.NoError(t, err)
	svc := NewTokenService(TokenServiceConfig{JWTService: verifyOnly})

	_, err = svc.IssueAccessToken("user:ada", "", "")

	assert.ErrorIs(t, err, jwt.ErrInvalidKey)
}
