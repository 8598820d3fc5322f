package auth

import (
	"testing"
	"time"

	"autoconnect/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	token, err := svc.IssueAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to validate token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "another_secret_key_used_by_someone_else")
	verifier := newTestJWTService(t, testSecret)

	token, err := issuer.IssueAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t, testSecret)
	issuedAt := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(defaultTTL + time.Minute) }
	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsOtherTokenTypes(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "unexpected token type")
}

func TestJWTService_RejectsNonUUIDSubject(t *testing.T) {
	svc := newTestJWTService(t, testSecret)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := raw.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token subject")
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
