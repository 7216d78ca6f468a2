package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/deppfellow/careerpilot/internal/config"
	"github.com/deppfellow/careerpilot/internal/logger"
	"github.com/deppfellow/careerpilot/internal/model"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("no text content in model response")

// textGenerator sends one prompt to a language model and returns its text
// reply.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// geminiClient is the genai-backed textGenerator.
type geminiClient struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func (g *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	temperature := g.temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  4096,
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GeminiAnalyzer answers every operation by prompting a Gemini model for a
// JSON document and decoding it into the response record.
type GeminiAnalyzer struct {
	generator textGenerator
	prompts   *PromptBuilder
	logger    *zerolog.Logger
}

// NewGeminiAnalyzer creates a genai client for the Gemini API.
func NewGeminiAnalyzer(ctx context.Context, cfg config.AIConfig, logger *zerolog.Logger) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiAnalyzer(&geminiClient{
		client:      client,
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
	}, logger), nil
}

func newGeminiAnalyzer(generator textGenerator, logger *zerolog.Logger) *GeminiAnalyzer {
	return &GeminiAnalyzer{
		generator: generator,
		prompts:   NewPromptBuilder(),
		logger:    logger,
	}
}

func (g *GeminiAnalyzer) AnalyzeResume(ctx context.Context, resumeText string) (*model.ResumeAnalysisResponse, error) {
	var res model.ResumeAnalysisResponse
	if err := g.generateJSON(ctx, "analyze_resume", g.prompts.BuildResumeAnalysisPrompt(resumeText), &res); err != nil {
		return nil, err
	}

	res.Score = clampScore(res.Score)
	res.Strengths = nonNil(res.Strengths)
	res.Weaknesses = nonNil(res.Weaknesses)
	res.Suggestions = nonNil(res.Suggestions)

	return &res, nil
}

func (g *GeminiAnalyzer) MatchJob(ctx context.Context, resumeText, jobDescription string) (*model.JobMatchResponse, error) {
	var res model.JobMatchResponse
	if err := g.generateJSON(ctx, "match_job", g.prompts.BuildJobMatchPrompt(resumeText, jobDescription), &res); err != nil {
		return nil, err
	}

	res.MatchScore = clampScore(res.MatchScore)
	res.MatchedSkills = nonNil(res.MatchedSkills)
	res.MissingSkills = nonNil(res.MissingSkills)
	res.Recommendations = nonNil(res.Recommendations)

	return &res, nil
}

func (g *GeminiAnalyzer) GenerateCoverLetter(ctx context.Context, req *model.CoverLetterRequest) (*model.CoverLetterResponse, error) {
	var body struct {
		Paragraphs []string `json:"paragraphs"`
	}

	prompt := g.prompts.BuildCoverLetterPrompt(req.JobTitle, req.CompanyName, req.JobDescription, req.ResumeText)
	if err := g.generateJSON(ctx, "generate_cover_letter", prompt, &body); err != nil {
		return nil, err
	}
	if len(body.Paragraphs) == 0 {
		return nil, ErrEmptyResponse
	}

	letter, err := RenderGeneratedCoverLetter(req, body.Paragraphs)
	if err != nil {
		return nil, err
	}

	return &model.CoverLetterResponse{CoverLetter: letter}, nil
}

func (g *GeminiAnalyzer) AnalyzeAnswer(ctx context.Context, question, answer, _ string) (*model.InterviewFeedbackResponse, error) {
	var res model.InterviewFeedbackResponse
	if err := g.generateJSON(ctx, "analyze_answer", g.prompts.BuildAnswerFeedbackPrompt(question, answer), &res); err != nil {
		return nil, err
	}

	res.Score = clampScore(res.Score)
	res.Suggestions = nonNil(res.Suggestions)

	return &res, nil
}

// generateJSON prompts the model and decodes its reply into target.
func (g *GeminiAnalyzer) generateJSON(ctx context.Context, operation, prompt string, target any) error {
	text, err := g.generator.GenerateText(ctx, prompt)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(extractJSON(text)), target); err != nil {
		logger.FromContext(ctx, g.logger).Error().
			Err(err).
			Str("operation", operation).
			Int("response_length", len(text)).
			Msg("model response is not valid JSON")
		return fmt.Errorf("failed to decode model response: %w", err)
	}

	return nil
}

// extractJSON strips markdown fences and surrounding prose from a model
// reply, keeping the outermost JSON object.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}

func clampScore(score int) int {
	return max(0, min(100, score))
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
