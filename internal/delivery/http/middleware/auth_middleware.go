package middleware

import (
	"strings"

	"heatmap/internal/domain/authz"
	"heatmap/internal/domain/entity"
	domainerrors "heatmap/internal/domain/errors"
	"heatmap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// callerContextKey is the echo context key holding the request's Caller.
const callerContextKey = "caller"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access
// token and stores the resulting Caller on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrAuthenticationRequired.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrAuthenticationRequired.WrapMessage("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrAuthenticationRequired.WrapMessage("invalid or expired token")
		}

		SetCaller(c, authz.NewCaller(claims.UserID, claims.Role))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller := GetCaller(c)
			if !caller.Authenticated {
				return domainerrors.ErrAuthenticationRequired
			}

			if caller.Role != requiredRole {
				return domainerrors.ErrForbidden.WrapMessage("require '" + requiredRole.String() + "' role")
			}

			return next(c)
		}
	}
}

// SetCaller stores the authenticated caller on the echo context.
func SetCaller(c echo.Context, caller authz.Caller) {
	c.Set(callerContextKey, caller)
}

// GetCaller returns the request's caller, or the anonymous caller when the
// route carries no authentication.
func GetCaller(c echo.Context) authz.Caller {
	if caller, ok := c.Get(callerContextKey).(authz.Caller); ok {
		return caller
	}

	return authz.Anonymous()
}
