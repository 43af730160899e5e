package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"os"
	"path/filepath"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return privateKey
}

func serviceWithKey(key *rsa.PrivateKey, issuer string, expiration time.Duration) *Service {
	return &Service{
		privateKey: key,
		publicKey:  &key.PublicKey,
		issuer:     issuer,
		expiration: expiration,
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return serviceWithKey(newTestKey(t), "test-issuer", 15*time.Minute)
}

// ============================================================================
// Sign Tests
// ============================================================================

func TestSign_SetsStandardClaims(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	before := time.Now().Add(-time.Second)

	token, err := svc.Sign(Claims{UserID: "user:123", Email: "a@example.com"})
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "user:123", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	require.NotNil(t, claims.IssuedAt)
	assert.True(t, claims.IssuedAt.After(before))
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestSign_PreservesCustomExpiration(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	custom := time.Now().Add(2 * time.Hour).Truncate(time.Second)

	token, err := svc.Sign(Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(custom)},
		UserID:           "user:123",
	})
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.Equal(custom))
}

func TestSign_NilPrivateKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "test-issuer"}

	_, err := svc.Sign(Claims{UserID: "user:123"})

	assert.ErrorIs(t, err, ErrInvalidKey)
}

// ============================================================================
// Validate Tests
// ============================================================================

func TestValidate_NilPublicKey_ReturnsErrInvalidKey(t *testing.T) {
	t.Parallel()
	svc := &Service{issuer: "test-issuer"}

	_, err := svc.Validate("a.b.c")

	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestValidate_Malformed_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	for _, token := range []string{"", "abc", "a.b", "a.b.c.d"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestValidate_ExpiredToken_ReturnsErrTokenExpired(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token, err := svc.Sign(Claims{
		RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour))},
		UserID:           "user:123",
	})
	require.NoError(t, err)

	_, err = svc.Validate(token)

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_DifferentKey_ReturnsErrInvalidSignature(t *testing.T) {
	t.Parallel()
	signer := newTestService(t)
	verifier := newTestService(t)

	token, err := signer.Sign(Claims{UserID: "user:123"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidate_WrongIssuer_ReturnsErrInvalidToken(t *testing.T) {
	t.Parallel()
	key := newTestKey(t)
	signer := serviceWithKey(key, "someone-else", time.Minute)
	verifier := serviceWithKey(key, "test-issuer", time.Minute)

	token, err := signer.Sign(Claims{UserID: "user:123"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsHMAC(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
		RegisteredClaims: gojwt.RegisteredClaims{Issuer: "test-issuer"},
		UserID:           "user:123",
	})
	signed, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(signed)

	assert.Error(t, err)
}

// ============================================================================
// Key Loading Tests
// ============================================================================

func TestGenerateKeyPair_NewServiceRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privPath, pubPath))

	signer, err := NewService(Config{PrivateKeyPath: privPath, Issuer: "headlines", ExpirationMins: 5})
	require.NoError(t, err)
	verifier, err := NewService(Config{PublicKeyPath: pubPath, Issuer: "headlines"})
	require.NoError(t, err)

	token, err := signer.Sign(Claims{UserID: "user:abc"})
	require.NoError(t, err)
	claims, err := verifier.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user:abc", claims.UserID)
	assert.Equal(t, 5*time.Minute, signer.GetExpiration())
}

func TestNewService_NoKeys_ReturnsService(t *testing.T) {
	t.Parallel()

	svc, err := NewService(Config{Issuer: "headlines"})

	require.NoError(t, err)
	_, err = svc.Sign(Claims{})
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewService_MissingFiles_ReturnError(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "nope.pem")

	_, err := NewService(Config{PrivateKeyPath: missing})
	assert.Error(t, err)

	_, err = NewService(Config{PublicKeyPath: missing})
	assert.Error(t, err)
}

func TestNewService_InvalidPEM_ReturnsError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a key"), 0600))

	_, err := NewService(Config{PrivateKeyPath: path})

	assert.Error(t, err)
}
