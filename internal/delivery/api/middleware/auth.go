package middleware

import (
	"strings"

	"github.com/nadoran78/mytable/config"
	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/entity"
	domainerrors "github.com/nadoran78/mytable/internal/domain/errors"
	"github.com/nadoran78/mytable/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddleware resolves the identity token header and enforces roles.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	headerName string
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService
	Config   *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenSvc,
		headerName: params.Config.Auth.HeaderName,
	}
}

// Authenticate rejects requests without a valid token and stores the caller identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimSpace(c.Request().Header.Get(m.headerName))
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			return domainerrors.ErrInvalidToken
		}

		identity, err := m.tokenSvc.Resolve(token)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequireRole checks the authenticated caller holds role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrInvalidToken
			}

			if !identity.Roles.Contains(role) {
				return domainerrors.ErrAccessDenied
			}

			return next(c)
		}
	}
}
