package analysis

import (
	"context"

	"github.com/deppfellow/careerpilot/internal/model"
)

// StubAnalyzer returns fixed results. It performs no computation and never
// fails, which makes every endpoint deterministic.
type StubAnalyzer struct{}

func NewStubAnalyzer() *StubAnalyzer {
	return &StubAnalyzer{}
}

func (s *StubAnalyzer) AnalyzeResume(_ context.Context, _ string) (*model.ResumeAnalysisResponse, error) {
	return &model.ResumeAnalysisResponse{
		Strengths: []string{
			"Strong technical skills in React and TypeScript",
			"Good project management experience",
			"Clear communication skills demonstrated",
		},
		Weaknesses: []string{
			"Limited leadership experience",
			"Could add more quantifiable achievements",
			"Missing certifications section",
		},
		Suggestions: []string{
			"Add specific metrics and achievements (e.g., 'Increased performance by 25%')",
			"Include relevant certifications",
			"Add a summary section at the top",
			"Use more action verbs in descriptions",
		},
		Score: 78,
	}, nil
}

func (s *StubAnalyzer) MatchJob(_ context.Context, _, _ string) (*model.JobMatchResponse, error) {
	return &model.JobMatchResponse{
		MatchScore: 82,
		MatchedSkills: []string{
			"React.js",
			"TypeScript",
			"JavaScript",
			"Git",
			"REST APIs",
			"HTML/CSS",
		},
		MissingSkills: []string{
			"Python",
			"Docker",
			"AWS",
			"Machine Learning",
		},
		Recommendations: []string{
			"Consider learning Python for backend development",
			"Get familiar with Docker for containerization",
			"Learn AWS services for cloud deployment",
			"Take an introductory course in Machine Learning",
		},
		OverallAssessment: "You have a strong foundation in frontend development and would be a good fit for this role. " +
			"Focus on learning the missing backend and cloud skills to increase your match score.",
	}, nil
}

func (s *StubAnalyzer) GenerateCoverLetter(_ context.Context, req *model.CoverLetterRequest) (*model.CoverLetterResponse, error) {
	letter, err := RenderCoverLetter(req)
	if err != nil {
		return nil, err
	}
	return &model.CoverLetterResponse{CoverLetter: letter}, nil
}

func (s *StubAnalyzer) AnalyzeAnswer(_ context.Context, _, _, _ string) (*model.InterviewFeedbackResponse, error) {
	return &model.InterviewFeedbackResponse{
		Feedback: "Good answer! You covered the main points well. " +
			"Consider adding more specific examples and metrics to make your response stronger. " +
			"Your communication was clear and structured.",
		Score: 85,
		Suggestions: []string{
			"Add specific examples from your experience",
			"Include quantifiable results when possible",
			"Structure your response using the STAR method",
			"Practice speaking more confidently",
		},
	}, nil
}
