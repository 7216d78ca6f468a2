package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/careerpilot/internal/handler"
	"github.com/deppfellow/careerpilot/internal/model"
)

// registerCareerRoutes registers the four career endpoints. Each goes
// through the typed Handle pipeline with a fresh payload per request.
func registerCareerRoutes(r *echo.Echo, h *handler.Handlers) {
	career := h.Career

	r.POST("/analyze-resume", handler.Handle(
		career.Handler,
		career.AnalyzeResume,
		http.StatusOK,
		handler.NewRequest[model.ResumeAnalysisRequest],
	))

	r.POST("/match-job", handler.Handle(
		career.Handler,
		career.MatchJob,
		http.StatusOK,
		handler.NewRequest[model.JobMatchRequest],
	))

	r.POST("/generate-cover-letter", handler.Handle(
		career.Handler,
		career.GenerateCoverLetter,
		http.StatusOK,
		handler.NewRequest[model.CoverLetterRequest],
	))

	r.POST("/analyze-answer", handler.Handle(
		career.Handler,
		career.AnalyzeAnswer,
		http.StatusOK,
		handler.NewRequest[model.InterviewFeedbackRequest],
	))
}
