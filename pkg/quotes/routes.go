package quotes

import (
	"github.com/labstack/echo/v4"
	"github.com/quotablebooks/quotable/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutesWithGroup registers quote routes on a pre-configured group.
// The flattened book views take an optional session so private quotes show up
// for their owner.
func RegisterRoutesWithGroup(g *echo.Group, db *bun.DB, sessionMiddleware *auth.Middleware) {
	h := &handler{quoteService: NewService(db)}

	g.GET("", h.list)
	g.GET("/random", h.random)
	g.GET("/with-books", h.listWithBooks, sessionMiddleware.OptionalSession)
	g.GET("/:id", h.retrieve)
	g.GET("/:id/authors", h.listAuthors)
	g.GET("/:id/with-book", h.retrieveWithBook, sessionMiddleware.OptionalSession)
	g.POST("", h.create, sessionMiddleware.RequireSession)
	g.PATCH("/:id", h.update, sessionMiddleware.RequireSession)
	g.DELETE("/:id", h.delete, sessionMiddleware.RequireSession)
}
