package cities

import (
	"github.com/labstack/echo/v4"
	"github.com/quotablebooks/quotable/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers city routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, sessionMiddleware *auth.Middleware) {
	h := &handler{cityService: NewService(db)}

	g.GET("", h.list)
	g.GET("/random", h.random)
	g.POST("", h.create, sessionMiddleware.RequireSession)
}
