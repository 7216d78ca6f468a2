package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/careerpilot/internal/handler"
	"github.com/deppfellow/careerpilot/static"
)

// registerSystemRoutes registers endpoints outside the career API: welcome,
// liveness, detailed status and documentation.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)
	r.GET("/status", h.Health.CheckStatus)

	// openapi.json and openapi.html, embedded in the binary.
	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
