package analysis

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/careerpilot/internal/config"
	"github.com/deppfellow/careerpilot/internal/model"
)

// countingAnalyzer records how often each operation reached it.
type countingAnalyzer struct {
	StubAnalyzer
	calls map[string]int
}

func newCountingAnalyzer() *countingAnalyzer {
	return &countingAnalyzer{calls: map[string]int{}}
}

func (c *countingAnalyzer) AnalyzeResume(ctx context.Context, resumeText string) (*model.ResumeAnalysisResponse, error) {
	c.calls["analyze_resume"]++
	return c.StubAnalyzer.AnalyzeResume(ctx, resumeText)
}

func (c *countingAnalyzer) MatchJob(ctx context.Context, resumeText, jobDescription string) (*model.JobMatchResponse, error) {
	c.calls["match_job"]++
	return c.StubAnalyzer.MatchJob(ctx, resumeText, jobDescription)
}

func (c *countingAnalyzer) GenerateCoverLetter(ctx context.Context, req *model.CoverLetterRequest) (*model.CoverLetterResponse, error) {
	c.calls["generate_cover_letter"]++
	return c.StubAnalyzer.GenerateCoverLetter(ctx, req)
}

func (c *countingAnalyzer) AnalyzeAnswer(ctx context.Context, question, answer, category string) (*model.InterviewFeedbackResponse, error) {
	c.calls["analyze_answer"]++
	return c.StubAnalyzer.AnalyzeAnswer(ctx, question, answer, category)
}

const testNamespace = "stub:test-model"

func newRedisClient(t *testing.T, mr *miniredis.Miniredis) *redis.Client {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func setupCache(t *testing.T) (*CachedAnalyzer, *countingAnalyzer, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	logger := zerolog.Nop()
	next := newCountingAnalyzer()
	return NewCachedAnalyzer(next, newRedisClient(t, mr), testNamespace, time.Hour, &logger), next, mr
}

func TestCachedAnalyzer_HitSkipsWrappedAnalyzer(t *testing.T) {
	cache, next, _ := setupCache(t)
	ctx := context.Background()

	first, err := cache.AnalyzeResume(ctx, "resume")
	require.NoError(t, err)
	second, err := cache.AnalyzeResume(ctx, "resume")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls["analyze_resume"])

	_, err = cache.AnalyzeResume(ctx, "another resume")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls["analyze_resume"])
}

func TestCachedAnalyzer_AllOperations(t *testing.T) {
	cache, next, mr := setupCache(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := cache.MatchJob(ctx, "r", "jd")
		require.NoError(t, err)
		_, err = cache.GenerateCoverLetter(ctx, coverLetterRequest(""))
		require.NoError(t, err)
		_, err = cache.AnalyzeAnswer(ctx, "q", "a", "")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, next.calls["match_job"])
	assert.Equal(t, 1, next.calls["generate_cover_letter"])
	assert.Equal(t, 1, next.calls["analyze_answer"])

	keys := mr.Keys()
	assert.Len(t, keys, 3)
	for _, k := range keys {
		assert.True(t, strings.HasPrefix(k, cacheKeyPrefix+testNamespace+":"))
		assert.Equal(t, time.Hour, mr.TTL(k))
	}
}

func TestCachedAnalyzer_KeysDoNotContainInput(t *testing.T) {
	cache, _, mr := setupCache(t)

	_, err := cache.AnalyzeResume(context.Background(), "secret-resume-text")
	require.NoError(t, err)

	for _, k := range mr.Keys() {
		assert.NotContains(t, k, "secret-resume-text")
	}
}

func TestCachedAnalyzer_RedisDownFallsThrough(t *testing.T) {
	cache, next, mr := setupCache(t)
	mr.Close()

	res, err := cache.AnalyzeResume(context.Background(), "resume")
	require.NoError(t, err)
	assert.Equal(t, 78, res.Score)
	assert.Equal(t, 1, next.calls["analyze_resume"])
}

func TestCachedAnalyzer_CorruptEntryRecomputed(t *testing.T) {
	cache, next, mr := setupCache(t)

	key, err := cacheKey(testNamespace, "analyze_resume", []string{"resume"})
	require.NoError(t, err)
	require.NoError(t, mr.Set(key, "{not json"))

	res, err := cache.AnalyzeResume(context.Background(), "resume")
	require.NoError(t, err)
	assert.Equal(t, 78, res.Score)
	assert.Equal(t, 1, next.calls["analyze_resume"])
}

func TestCachedAnalyzer_NamespacesDoNotCollide(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := newRedisClient(t, mr)
	logger := zerolog.Nop()
	ctx := context.Background()

	stubNamespace := CacheNamespace(config.AIConfig{Provider: ProviderStub, Model: "gemini-2.5-flash"})
	geminiNamespace := CacheNamespace(config.AIConfig{Provider: ProviderGemini, Model: "gemini-2.5-flash"})
	require.NotEqual(t, stubNamespace, geminiNamespace)

	stub := NewCachedAnalyzer(NewStubAnalyzer(), rdb, stubNamespace, time.Hour, &logger)
	gemini, generator := newTestGemini(`{"score": 41, "strengths": [], "weaknesses": [], "suggestions": []}`, nil)
	geminiCache := NewCachedAnalyzer(gemini, rdb, geminiNamespace, time.Hour, &logger)

	res, err := stub.AnalyzeResume(ctx, "resume")
	require.NoError(t, err)
	assert.Equal(t, 78, res.Score)

	res, err = geminiCache.AnalyzeResume(ctx, "resume")
	require.NoError(t, err)
	assert.Equal(t, 41, res.Score)
	assert.Len(t, generator.prompts, 1)
	assert.Len(t, mr.Keys(), 2)

	// A model change is a new namespace too.
	other, otherGenerator := newTestGemini(`{"score": 12}`, nil)
	otherModel := NewCachedAnalyzer(other, rdb, CacheNamespace(config.AIConfig{Provider: ProviderGemini, Model: "gemini-2.5-pro"}), time.Hour, &logger)

	res, err = otherModel.AnalyzeResume(ctx, "resume")
	require.NoError(t, err)
	assert.Equal(t, 12, res.Score)
	assert.Len(t, otherGenerator.prompts, 1)
}

func TestCachedAnalyzer_LogsWithRequestLogger(t *testing.T) {
	mr := miniredis.RunT(t)
	startup := zerolog.Nop()
	cache := NewCachedAnalyzer(NewStubAnalyzer(), newRedisClient(t, mr), testNamespace, time.Hour, &startup)

	var buf bytes.Buffer
	requestLogger := zerolog.New(&buf).With().Str("request_id", "req-42").Logger()
	ctx := requestLogger.WithContext(context.Background())

	_, err := cache.AnalyzeResume(ctx, "resume")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "analysis cache miss")
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}
