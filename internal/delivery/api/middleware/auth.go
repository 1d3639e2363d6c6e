package middleware

import (
	"strings"

	"provenance/internal/delivery/api/response"
	deliverycontext "provenance/internal/delivery/context"
	"provenance/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix    = "Bearer "
	tokenQueryParam = "token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// AuthMiddleware resolves bearer tokens to a stored session.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: params.SessionUC}
}

// Authenticate requires a valid session token in the Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false, false)
}

// Optional attaches the caller when a valid token is present and lets anonymous requests through.
// A malformed or expired token is still rejected.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false, true)
}

// AuthenticateQuery is Authenticate that also accepts ?token=, for clients that cannot set headers
// on a websocket upgrade.
func (m *AuthMiddleware) AuthenticateQuery(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true, false)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, allowQuery, optional bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, present, wellFormed := extractToken(c, allowQuery)
		if !present {
			if optional {
				return next(c)
			}

			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}
		if !wellFormed {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		identity, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

func extractToken(c echo.Context, allowQuery bool) (token string, present, wellFormed bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header != "" {
		token = strings.TrimPrefix(header, bearerPrefix)
		if token == header || strings.TrimSpace(token) == "" {
			return "", true, false
		}

		return strings.TrimSpace(token), true, true
	}

	if allowQuery {
		if token = strings.TrimSpace(c.QueryParam(tokenQueryParam)); token != "" {
			return token, true, true
		}
	}

	return "", false, false
}
