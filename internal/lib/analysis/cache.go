package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/careerpilot/internal/logger"
	"github.com/deppfellow/careerpilot/internal/model"
)

// cacheKeyPrefix namespaces every key written by CachedAnalyzer.
const cacheKeyPrefix = "careerpilot:analysis:"

// CachedAnalyzer memoizes the results of another Analyzer in Redis.
//
// Keys are scoped by namespace, which identifies the wrapped analyzer
// (provider and model), so analyzers sharing one Redis never read each
// other's results. Inputs are hashed, never stored. Redis failures are
// logged and the call falls through to the wrapped analyzer: the cache can
// only make a request faster, never make it fail.
type CachedAnalyzer struct {
	next      Analyzer
	redis     *redis.Client
	namespace string
	ttl       time.Duration
	logger    *zerolog.Logger
}

func NewCachedAnalyzer(next Analyzer, rdb *redis.Client, namespace string, ttl time.Duration, logger *zerolog.Logger) *CachedAnalyzer {
	return &CachedAnalyzer{
		next:      next,
		redis:     rdb,
		namespace: namespace,
		ttl:       ttl,
		logger:    logger,
	}
}

func (c *CachedAnalyzer) AnalyzeResume(ctx context.Context, resumeText string) (*model.ResumeAnalysisResponse, error) {
	return cached(ctx, c, "analyze_resume", []string{resumeText}, func(ctx context.Context) (*model.ResumeAnalysisResponse, error) {
		return c.next.AnalyzeResume(ctx, resumeText)
	})
}

func (c *CachedAnalyzer) MatchJob(ctx context.Context, resumeText, jobDescription string) (*model.JobMatchResponse, error) {
	return cached(ctx, c, "match_job", []string{resumeText, jobDescription}, func(ctx context.Context) (*model.JobMatchResponse, error) {
		return c.next.MatchJob(ctx, resumeText, jobDescription)
	})
}

func (c *CachedAnalyzer) GenerateCoverLetter(ctx context.Context, req *model.CoverLetterRequest) (*model.CoverLetterResponse, error) {
	return cached(ctx, c, "generate_cover_letter", req, func(ctx context.Context) (*model.CoverLetterResponse, error) {
		return c.next.GenerateCoverLetter(ctx, req)
	})
}

func (c *CachedAnalyzer) AnalyzeAnswer(ctx context.Context, question, answer, category string) (*model.InterviewFeedbackResponse, error) {
	return cached(ctx, c, "analyze_answer", []string{question, answer, category}, func(ctx context.Context) (*model.InterviewFeedbackResponse, error) {
		return c.next.AnalyzeAnswer(ctx, question, answer, category)
	})
}

// cached looks up the result of operation for input, computing and storing
// it on a miss.
func cached[T any](ctx context.Context, c *CachedAnalyzer, operation string, input any, compute func(context.Context) (*T, error)) (*T, error) {
	key, err := cacheKey(c.namespace, operation, input)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx, c.logger).With().
		Str("operation", operation).
		Str("cache_key", key).
		Logger()

	raw, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var hit T
		if err := json.Unmarshal(raw, &hit); err == nil {
			log.Debug().Msg("analysis cache hit")
			return &hit, nil
		}
		log.Warn().Msg("discarding undecodable cache entry")

	case errors.Is(err, redis.Nil):
		log.Debug().Msg("analysis cache miss")

	default:
		log.Warn().Err(err).Msg("analysis cache read failed")
	}

	result, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		log.Warn().Err(err).Msg("could not encode analysis result for cache")
		return result, nil
	}

	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("analysis cache write failed")
	}

	return result, nil
}

// cacheKey hashes the JSON encoding of input so resume text never appears
// in Redis keys.
//
//	careerpilot:analysis:<namespace>:<operation>:<sha256>
func cacheKey(namespace, operation string, input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return cacheKeyPrefix + namespace + ":" + operation + ":" + hex.EncodeToString(sum[:]), nil
}
