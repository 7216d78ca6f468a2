package service

import (
	"github.com/deppfellow/careerpilot/internal/lib/analysis"
	"github.com/deppfellow/careerpilot/internal/server"
)

type Services struct {
	Career *CareerService
}

func NewServices(s *server.Server, analyzer analysis.Analyzer) (*Services, error) {
	return &Services{
		Career: NewCareerService(s, analyzer),
	}, nil
}
