package genres

import (
	"github.com/labstack/echo/v4"
	"github.com/quotablebooks/quotable/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers genre routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, sessionMiddleware *auth.Middleware) {
	h := &handler{genreService: NewService(db)}

	g.GET("", h.list)
	g.GET("/random", h.random)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create, sessionMiddleware.RequireSession)
}
