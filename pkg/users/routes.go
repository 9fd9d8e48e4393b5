package users

import (
	"github.com/labstack/echo/v4"
	"github.com/quotablebooks/quotable/pkg/identity"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers the provider webhook endpoint on a
// pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, identityClient *identity.Client, webhookSecret string) {
	h := &webhookHandler{
		userService:    NewService(db),
		identityClient: identityClient,
		secret:         webhookSecret,
	}

	g.POST("/user", h.handleUserEvent)
}
