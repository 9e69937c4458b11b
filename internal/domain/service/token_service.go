package service

import (
	"time"

	"github.com/nadoran78/mytable/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for identity tokens. The subject is the account's external uid.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues identity tokens and resolves them back to an identity.
type TokenService interface {
	// Issue signs a token for the account uid with the given roles.
	Issue(uid string, roles entity.Roles) (string, error)

	// Resolve verifies signature and expiry and returns the caller identity.
	// It has no side effects and fails with ErrInvalidToken for any malformed, unsigned or expired token.
	Resolve(token string) (entity.Identity, error)

	// TTL returns the validity window of issued tokens.
	TTL() time.Duration
}
