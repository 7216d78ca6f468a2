package handler

import (
	"github.com/deppfellow/careerpilot/internal/server"
	"github.com/deppfellow/careerpilot/internal/service"
)

// Handlers groups every HTTP handler so router setup receives one value.
type Handlers struct {
	Health  *HealthHandler  // Root, liveness and detailed status.
	OpenAPI *OpenAPIHandler // Docs UI.
	Career  *CareerHandler  // Resume, job match, cover letter and interview endpoints.
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Career:  NewCareerHandler(s, services.Career),
	}
}
