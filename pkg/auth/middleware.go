package auth

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/models"
)

// Middleware provides session middleware backed by the auth service.
type Middleware struct {
	authService *Service
}

func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// RequireSession extracts and validates the provider session token from the
// session cookie or a bearer token. If valid, the local user mirror is added
// to the context; otherwise it returns 401.
func (m *Middleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		tokenString := sessionToken(c)
		if tokenString == "" {
			return errcodes.Unauthorized("Authentication required")
		}

		claims, err := m.authService.ValidateToken(tokenString)
		if err != nil {
			return errcodes.Unauthorized("Invalid or expired session")
		}

		user, err := m.authService.RetrieveSessionUser(ctx, claims)
		if err != nil {
			return errcodes.Unauthorized("User not found")
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)

		return next(c)
	}
}

// OptionalSession extracts the session user if a valid token is present but
// doesn't require one. Read endpoints use this to apply per-user visibility.
func (m *Middleware) OptionalSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		tokenString := sessionToken(c)
		if tokenString != "" {
			claims, err := m.authService.ValidateToken(tokenString)
			if err == nil {
				user, err := m.authService.RetrieveSessionUser(ctx, claims)
				if err == nil {
					c.Set("user_id", user.ID)
					c.Set("user", user)
				}
			}
		}
		return next(c)
	}
}

// SessionUser returns the user stored on the context by the session
// middleware, or nil when the request is anonymous.
func SessionUser(c echo.Context) *models.User {
	user, ok := c.Get("user").(*models.User)
	if !ok {
		return nil
	}
	return user
}

func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
