package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/careerpilot/internal/lib/analysis"
	"github.com/deppfellow/careerpilot/internal/logger"
	"github.com/deppfellow/careerpilot/internal/model"
	"github.com/deppfellow/careerpilot/internal/server"
)

// CareerService runs the career operations against the configured
// analyzer, each bounded by ai.timeout.
type CareerService struct {
	server   *server.Server
	analyzer analysis.Analyzer
	timeout  time.Duration
}

func NewCareerService(s *server.Server, analyzer analysis.Analyzer) *CareerService {
	return &CareerService{
		server:   s,
		analyzer: analyzer,
		timeout:  s.Config.AI.Timeout,
	}
}

func (cs *CareerService) AnalyzeResume(ctx context.Context, req *model.ResumeAnalysisRequest) (*model.ResumeAnalysisResponse, error) {
	return withTimeout(ctx, cs.server.Logger, cs.timeout, func(ctx context.Context) (*model.ResumeAnalysisResponse, error) {
		return cs.analyzer.AnalyzeResume(ctx, req.ResumeText)
	})
}

func (cs *CareerService) MatchJob(ctx context.Context, req *model.JobMatchRequest) (*model.JobMatchResponse, error) {
	return withTimeout(ctx, cs.server.Logger, cs.timeout, func(ctx context.Context) (*model.JobMatchResponse, error) {
		return cs.analyzer.MatchJob(ctx, req.ResumeText, req.JobDescription)
	})
}

func (cs *CareerService) GenerateCoverLetter(ctx context.Context, req *model.CoverLetterRequest) (*model.CoverLetterResponse, error) {
	return withTimeout(ctx, cs.server.Logger, cs.timeout, func(ctx context.Context) (*model.CoverLetterResponse, error) {
		return cs.analyzer.GenerateCoverLetter(ctx, req)
	})
}

func (cs *CareerService) AnalyzeAnswer(ctx context.Context, req *model.InterviewFeedbackRequest) (*model.InterviewFeedbackResponse, error) {
	return withTimeout(ctx, cs.server.Logger, cs.timeout, func(ctx context.Context) (*model.InterviewFeedbackResponse, error) {
		return cs.analyzer.AnalyzeAnswer(ctx, req.Question, req.Answer, req.Category)
	})
}

type outcome[T any] struct {
	value *T
	err   error
}

// withTimeout runs call in its own goroutine and gives up once the deadline
// passes, even if call ignores ctx. The channel is buffered so an abandoned
// call can still send and exit.
func withTimeout[T any](ctx context.Context, fallback *zerolog.Logger, timeout time.Duration, call func(context.Context) (*T, error)) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		value, err := call(ctx)
		done <- outcome[T]{value: value, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, errors.WithStack(res.err)
		}
		if res.value == nil {
			return nil, errors.New("analyzer returned no result")
		}
		return res.value, nil

	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.FromContext(ctx, fallback).Warn().
				Dur("timeout", timeout).
				Msg("analyzer call timed out")
		}
		return nil, errors.WithStack(ctx.Err())
	}
}
