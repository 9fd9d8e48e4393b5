package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/quotablebooks/quotable/pkg/auth"
	"github.com/quotablebooks/quotable/pkg/authors"
	"github.com/quotablebooks/quotable/pkg/binder"
	"github.com/quotablebooks/quotable/pkg/books"
	"github.com/quotablebooks/quotable/pkg/cities"
	"github.com/quotablebooks/quotable/pkg/config"
	"github.com/quotablebooks/quotable/pkg/countries"
	"github.com/quotablebooks/quotable/pkg/errcodes"
	"github.com/quotablebooks/quotable/pkg/genres"
	"github.com/quotablebooks/quotable/pkg/identity"
	"github.com/quotablebooks/quotable/pkg/publishers"
	"github.com/quotablebooks/quotable/pkg/quotes"
	"github.com/quotablebooks/quotable/pkg/quotetypes"
	"github.com/quotablebooks/quotable/pkg/states"
	"github.com/quotablebooks/quotable/pkg/tags"
	"github.com/quotablebooks/quotable/pkg/topics"
	"github.com/quotablebooks/quotable/pkg/users"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	health.RegisterRoutes(e)

	authService := auth.NewService(db, cfg.SessionSecret)
	sessionMiddleware := auth.NewMiddleware(authService)

	registerCatalogRoutes(e, db, sessionMiddleware)

	identityClient := identity.NewClient(cfg.IdentityAPIURL, cfg.IdentitySecretKey)
	webhooksGroup := e.Group("/webhooks")
	users.RegisterRoutesWithGroup(webhooksGroup, db, identityClient, cfg.WebhookSecret)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

// registerCatalogRoutes mounts every catalog entity group. Reads are public;
// each group protects its own mutations with the session middleware.
func registerCatalogRoutes(e *echo.Echo, db *bun.DB, sessionMiddleware *auth.Middleware) {
	authors.RegisterRoutesWithGroup(e.Group("/authors"), db, sessionMiddleware)
	books.RegisterRoutesWithGroup(e.Group("/books"), db, sessionMiddleware)
	cities.RegisterRoutesWithGroup(e.Group("/cities"), db, sessionMiddleware)
	countries.RegisterRoutesWithGroup(e.Group("/countries"), db, sessionMiddleware)
	genres.RegisterRoutesWithGroup(e.Group("/genres"), db, sessionMiddleware)
	publishers.RegisterRoutesWithGroup(e.Group("/publishers"), db, sessionMiddleware)
	quotes.RegisterRoutesWithGroup(e.Group("/quotes"), db, sessionMiddleware)
	quotetypes.RegisterRoutesWithGroup(e.Group("/types"), db, sessionMiddleware)
	states.RegisterRoutesWithGroup(e.Group("/states"), db, sessionMiddleware)
	tags.RegisterRoutesWithGroup(e.Group("/tags"), db, sessionMiddleware)
	topics.RegisterRoutesWithGroup(e.Group("/topics"), db, sessionMiddleware)
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
