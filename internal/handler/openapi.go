package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/careerpilot/internal/server"
	"github.com/deppfellow/careerpilot/static"
)

// OpenAPIHandler serves the API documentation UI.
//
// The page is a static HTML file that loads its JS from a CDN and reads
// the OpenAPI document from /static/openapi.json. Both files are embedded
// in the binary.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// ServeOpenAPIUI serves openapi.html with caching disabled so doc updates
// show up on the next reload.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := static.FS.ReadFile(static.OpenAPIUI)

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, templateBytes); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
