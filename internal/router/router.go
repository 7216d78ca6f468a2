// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/careerpilot/internal/handler"
	"github.com/deppfellow/careerpilot/internal/middleware"
	"github.com/deppfellow/careerpilot/internal/server"
)

// NewRouter builds the Echo instance with the global middleware chain and
// every route.
//
// Middleware order matters:
//   - CORS first so preflight requests are answered before anything else
//   - RequestID before the tracing and logging layers that read it
//   - NewRelicMiddleware before EnhanceTracing and EnhanceContext, which
//     look up the transaction
//   - Recover last so panics are turned into errors closest to handlers
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerCareerRoutes(router, h)

	return router
}
