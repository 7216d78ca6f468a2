package analysis

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func newTestGemini(reply string, err error) (*GeminiAnalyzer, *fakeGenerator) {
	logger := zerolog.Nop()
	gen := &fakeGenerator{reply: reply, err: err}
	return newGeminiAnalyzer(gen, &logger), gen
}

func TestGeminiAnalyzer_AnalyzeResume(t *testing.T) {
	reply := "```json\n{\"strengths\":[\"Go\"],\"weaknesses\":null,\"suggestions\":[\"Add metrics\"],\"score\":140}\n```"
	g, gen := newTestGemini(reply, nil)

	res, err := g.AnalyzeResume(context.Background(), "Senior Go engineer")
	require.NoError(t, err)

	assert.Equal(t, 100, res.Score, "score is clamped")
	assert.Equal(t, []string{"Go"}, res.Strengths)
	assert.Equal(t, []string{}, res.Weaknesses)
	assert.Equal(t, []string{"Add metrics"}, res.Suggestions)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Senior Go engineer")
}

func TestGeminiAnalyzer_MatchJob(t *testing.T) {
	reply := `Here you go: {"match_score": -5, "matched_skills": ["Go"], "missing_skills": ["Rust"], "overall_assessment": "Close."} Thanks!`
	g, gen := newTestGemini(reply, nil)

	res, err := g.MatchJob(context.Background(), "resume body", "jd body")
	require.NoError(t, err)

	assert.Equal(t, 0, res.MatchScore)
	assert.Equal(t, []string{"Rust"}, res.MissingSkills)
	assert.Equal(t, []string{}, res.Recommendations)
	assert.Equal(t, "Close.", res.OverallAssessment)
	assert.Contains(t, gen.prompts[0], "resume body")
	assert.Contains(t, gen.prompts[0], "jd body")
}

func TestGeminiAnalyzer_GenerateCoverLetter(t *testing.T) {
	g, _ := newTestGemini(`{"paragraphs":["I build platforms.","I would love to join Globex."]}`, nil)

	res, err := g.GenerateCoverLetter(context.Background(), coverLetterRequest("555-0100"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.CoverLetter, "Dear Hiring Manager,\n\nI build platforms."))
	assert.True(t, strings.HasSuffix(res.CoverLetter, "Best regards,\nJordan Lee\njordan@example.com\n555-0100"))
}

func TestGeminiAnalyzer_GenerateCoverLetter_NoParagraphs(t *testing.T) {
	g, _ := newTestGemini(`{"paragraphs":[]}`, nil)

	_, err := g.GenerateCoverLetter(context.Background(), coverLetterRequest(""))
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiAnalyzer_AnalyzeAnswer(t *testing.T) {
	g, gen := newTestGemini(`{"feedback":"Solid.","score":64,"suggestions":["Use STAR"]}`, nil)

	res, err := g.AnalyzeAnswer(context.Background(), "Tell me about a conflict", "I listened first", "behavioral")
	require.NoError(t, err)

	assert.Equal(t, "Solid.", res.Feedback)
	assert.Equal(t, 64, res.Score)
	assert.NotContains(t, gen.prompts[0], "behavioral")
}

func TestGeminiAnalyzer_Errors(t *testing.T) {
	upstream := errors.New("quota exceeded")
	g, _ := newTestGemini("", upstream)

	_, err := g.AnalyzeResume(context.Background(), "X")
	assert.ErrorIs(t, err, upstream)

	g, _ = newTestGemini("not json at all", nil)
	_, err = g.AnalyzeResume(context.Background(), "X")
	assert.ErrorContains(t, err, "failed to decode model response")
}

func TestGeminiAnalyzer_DecodeFailureUsesRequestLogger(t *testing.T) {
	g, _ := newTestGemini("not json", nil)

	var buf bytes.Buffer
	requestLogger := zerolog.New(&buf).With().Str("request_id", "req-7").Logger()
	ctx := requestLogger.WithContext(context.Background())

	_, err := g.MatchJob(ctx, "r", "jd")
	require.Error(t, err)

	assert.Contains(t, buf.String(), "model response is not valid JSON")
	assert.Contains(t, buf.String(), `"request_id":"req-7"`)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":{"b":2}}`, extractJSON(`prefix {"a":{"b":2}} suffix`))
	assert.Equal(t, "plain", extractJSON("  plain  "))
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-1))
	assert.Equal(t, 55, clampScore(55))
	assert.Equal(t, 100, clampScore(101))
}
