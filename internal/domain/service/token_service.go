package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// Tokens are issued by the external identity provider in production; IssueAccessToken
// exists for local tooling and tests that share the same secret.
type TokenService interface {
	// IssueAccessToken signs a short-lived access token for userID.
	IssueAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
