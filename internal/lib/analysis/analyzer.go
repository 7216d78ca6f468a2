// Package analysis provides the career analysis capability behind the
// HTTP endpoints.
//
// Analyzer is the seam: the handler and service layers only see the
// interface, and the implementation is chosen from configuration at
// startup (a fixed-response stub or a Gemini-backed analyzer, optionally
// wrapped in a Redis result cache).
package analysis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/careerpilot/internal/config"
	"github.com/deppfellow/careerpilot/internal/model"
)

const (
	ProviderStub   = "stub"
	ProviderGemini = "gemini"
)

// Analyzer produces the result of each career operation.
//
// Implementations must honour ctx cancellation for any I/O they perform.
// The category of an interview answer is passed through but no
// implementation varies its output by it.
type Analyzer interface {
	AnalyzeResume(ctx context.Context, resumeText string) (*model.ResumeAnalysisResponse, error)
	MatchJob(ctx context.Context, resumeText, jobDescription string) (*model.JobMatchResponse, error)
	GenerateCoverLetter(ctx context.Context, req *model.CoverLetterRequest) (*model.CoverLetterResponse, error)
	AnalyzeAnswer(ctx context.Context, question, answer, category string) (*model.InterviewFeedbackResponse, error)
}

// NewFromConfig builds the analyzer selected by cfg.AI.Provider. When rdb
// is non-nil the analyzer is wrapped in a CachedAnalyzer.
func NewFromConfig(ctx context.Context, cfg *config.Config, rdb *redis.Client, logger *zerolog.Logger) (Analyzer, error) {
	var analyzer Analyzer

	switch cfg.AI.Provider {
	case ProviderStub:
		analyzer = NewStubAnalyzer()

	case ProviderGemini:
		gemini, err := NewGeminiAnalyzer(ctx, cfg.AI, logger)
		if err != nil {
			return nil, err
		}
		analyzer = gemini

	default:
		return nil, fmt.Errorf("unknown analysis provider %q", cfg.AI.Provider)
	}

	logger.Info().
		Str("provider", cfg.AI.Provider).
		Bool("cache", rdb != nil).
		Msg("analyzer initialized")

	if rdb != nil {
		analyzer = NewCachedAnalyzer(analyzer, rdb, CacheNamespace(cfg.AI), cfg.Cache.TTL, logger)
	}

	return analyzer, nil
}

// CacheNamespace identifies the analyzer configured by cfg in cache keys.
func CacheNamespace(cfg config.AIConfig) string {
	return cfg.Provider + ":" + cfg.Model
}
