package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/careerpilot/internal/errs"
	"github.com/deppfellow/careerpilot/internal/model"
	"github.com/deppfellow/careerpilot/internal/server"
	"github.com/deppfellow/careerpilot/internal/service"
)

// Operation labels prefix the message of a failed request,
// e.g. "Job matching failed: context deadline exceeded".
const (
	analyzeResumeOperation       = "Analysis"
	matchJobOperation            = "Job matching"
	generateCoverLetterOperation = "Cover letter generation"
	analyzeAnswerOperation       = "Answer analysis"
)

// CareerHandler serves the four career endpoints. Payloads arrive already
// validated by the Handle pipeline.
type CareerHandler struct {
	Handler
	careerService *service.CareerService
}

func NewCareerHandler(s *server.Server, careerService *service.CareerService) *CareerHandler {
	return &CareerHandler{
		Handler:       NewHandler(s),
		careerService: careerService,
	}
}

func (h *CareerHandler) AnalyzeResume(c echo.Context, req *model.ResumeAnalysisRequest) (*model.ResumeAnalysisResponse, error) {
	res, err := h.careerService.AnalyzeResume(c.Request().Context(), req)
	if err != nil {
		return nil, errs.NewOperationFailedError(analyzeResumeOperation, err)
	}
	return res, nil
}

func (h *CareerHandler) MatchJob(c echo.Context, req *model.JobMatchRequest) (*model.JobMatchResponse, error) {
	res, err := h.careerService.MatchJob(c.Request().Context(), req)
	if err != nil {
		return nil, errs.NewOperationFailedError(matchJobOperation, err)
	}
	return res, nil
}

func (h *CareerHandler) GenerateCoverLetter(c echo.Context, req *model.CoverLetterRequest) (*model.CoverLetterResponse, error) {
	res, err := h.careerService.GenerateCoverLetter(c.Request().Context(), req)
	if err != nil {
		return nil, errs.NewOperationFailedError(generateCoverLetterOperation, err)
	}
	return res, nil
}

func (h *CareerHandler) AnalyzeAnswer(c echo.Context, req *model.InterviewFeedbackRequest) (*model.InterviewFeedbackResponse, error) {
	res, err := h.careerService.AnalyzeAnswer(c.Request().Context(), req)
	if err != nil {
		return nil, errs.NewOperationFailedError(analyzeAnswerOperation, err)
	}
	return res, nil
}
