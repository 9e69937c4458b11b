package auth

import (
	"testing"
	"time"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, now func() time.Time) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		TokenSecret: "test_token_secret_key_very_long_for_testing",
		TokenTTL:    24 * time.Hour,
	}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	s := svc.(*jwtService)
	s.now = now

	return s
}

func TestJWTService_IssueAndResolve(t *testing.T) {
	issuedAt := time.Now()
	s := newTestJWTService(t, func() time.Time { return issuedAt })

	token, err := s.Issue("c0ffee", entity.Roles{entity.RoleCustomer})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := s.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "c0ffee", identity.UID)
	assert.True(t, identity.IsCustomer())
	assert.Equal(t, 24*time.Hour, s.TTL())

	// Resolving is side-effect free and repeatable.
	again, err := s.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, identity, again)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issuedAt := time.Now().Add(-48 * time.Hour)
	current := issuedAt
	s := newTestJWTService(t, func() time.Time { return current })

	token, err := s.Issue("c0ffee", entity.Roles{entity.RolePartner})
	require.NoError(t, err)

	current = issuedAt.Add(24*time.Hour + time.Second)
	_, err = s.Resolve(token)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_InvalidToken(t *testing.T) {
	s := newTestJWTService(t, time.Now)

	for _, token := range []string{"", "invalid.token.here", "abc"} {
		_, err := s.Resolve(token)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "token %q", token)
	}
}

func TestJWTService_RejectsForeignSignatures(t *testing.T) {
	s := newTestJWTService(t, time.Now)

	claims := jwt.MapClaims{"sub": "c0ffee", "exp": time.Now().Add(time.Hour).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	require.NoError(t, err)
	_, err = s.Resolve(forged)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Resolve(unsigned)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "c0ffee"}).
		SignedString([]byte("test_token_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	_, err = s.Resolve(noExpiry)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}
