// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/service"
)

// jwtService signs and resolves HS256 identity tokens.
type jwtService struct {
	secret []byte        // Signing key, copied from config at construction.
	ttl    time.Duration // Validity window of issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.TokenSecret == "" {
		return nil, errors.New("auth.tokenSecret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.Auth.TokenSecret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token whose subject is the account uid.
func (s *jwtService) Issue(uid string, roles entity.Roles) (string, error) {
	now := s.now()
	claims := service.Claims{
		Roles: roles.ToStrings(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Resolve verifies the token and returns the identity it carries.
func (s *jwtService) Resolve(tokenString string) (entity.Identity, error) {
	if tokenString == "" {
		return entity.Identity{}, domainerrors.ErrInvalidToken
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return entity.Identity{}, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	if claims.Subject == "" {
		return entity.Identity{}, domainerrors.ErrInvalidToken.WrapMessage("token has no subject")
	}

	return entity.Identity{
		UID:   claims.Subject,
		Roles: entity.RolesFromStrings(claims.Roles),
	}, nil
}

// TTL returns the validity window of issued tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
