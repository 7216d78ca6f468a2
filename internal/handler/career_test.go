package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/careerpilot/internal/config"
	"github.com/deppfellow/careerpilot/internal/errs"
	"github.com/deppfellow/careerpilot/internal/model"
	"github.com/deppfellow/careerpilot/internal/server"
	"github.com/deppfellow/careerpilot/internal/service"
)

var errModelDown = errors.New("model down")

// failingAnalyzer fails every operation.
type failingAnalyzer struct{}

func (failingAnalyzer) AnalyzeResume(context.Context, string) (*model.ResumeAnalysisResponse, error) {
	return nil, errModelDown
}

func (failingAnalyzer) MatchJob(context.Context, string, string) (*model.JobMatchResponse, error) {
	return nil, errModelDown
}

func (failingAnalyzer) GenerateCoverLetter(context.Context, *model.CoverLetterRequest) (*model.CoverLetterResponse, error) {
	return nil, errModelDown
}

func (failingAnalyzer) AnalyzeAnswer(context.Context, string, string, string) (*model.InterviewFeedbackResponse, error) {
	return nil, errModelDown
}

func newFailingCareerHandler(t *testing.T) *CareerHandler {
	t.Helper()

	logger := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	services, err := service.NewServices(s, failingAnalyzer{})
	require.NoError(t, err)

	return NewHandlers(s, services).Career
}

func TestCareerHandler_OperationFailures(t *testing.T) {
	h := newFailingCareerHandler(t)
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

	_, resumeErr := h.AnalyzeResume(c, &model.ResumeAnalysisRequest{ResumeText: "X"})
	_, matchErr := h.MatchJob(c, &model.JobMatchRequest{ResumeText: "X", JobDescription: "Y"})
	_, letterErr := h.GenerateCoverLetter(c, &model.CoverLetterRequest{})
	_, answerErr := h.AnalyzeAnswer(c, &model.InterviewFeedbackRequest{Question: "Q", Answer: "A"})

	tests := map[string]error{
		"Analysis failed: model down":                resumeErr,
		"Job matching failed: model down":            matchErr,
		"Cover letter generation failed: model down": letterErr,
		"Answer analysis failed: model down":         answerErr,
	}

	for message, err := range tests {
		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, message, httpErr.Message)
		assert.ErrorIs(t, err, errModelDown)
	}
}

func TestHandle_FreshPayloadPerRequest(t *testing.T) {
	logger := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &logger, nil)
	require.NoError(t, err)

	var seen []string
	echoHandler := Handle(NewHandler(s), func(c echo.Context, req *model.InterviewFeedbackRequest) (*model.HealthInfo, error) {
		seen = append(seen, req.Category)
		return &model.HealthInfo{Status: "ok"}, nil
	}, http.StatusOK, NewRequest[model.InterviewFeedbackRequest])

	e := echo.New()
	for _, body := range []string{
		`{"question":"Q","answer":"A","category":"technical"}`,
		`{"question":"Q","answer":"A"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, echoHandler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, []string{"technical", ""}, seen)
}
