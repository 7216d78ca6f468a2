// Package model holds the request and response records exchanged over the
// HTTP API.
//
// Every record is transient: it lives for one request and is never
// persisted. Request types implement validation.Validatable.
package model

import "github.com/deppfellow/careerpilot/internal/validation"

// RootInfo is returned by GET /.
type RootInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthInfo is returned by GET /health.
type HealthInfo struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ResumeAnalysisRequest is the body of POST /analyze-resume.
type ResumeAnalysisRequest struct {
	ResumeText string `json:"resume_text" validate:"notblank"`
}

func (r *ResumeAnalysisRequest) Validate() error {
	return validation.Struct(r)
}

// ResumeAnalysisResponse scores a resume and lists what to keep and fix.
type ResumeAnalysisResponse struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	Score       int      `json:"score"`
}

// JobMatchRequest is the body of POST /match-job.
type JobMatchRequest struct {
	ResumeText     string `json:"resume_text" validate:"notblank"`
	JobDescription string `json:"job_description" validate:"notblank"`
}

func (r *JobMatchRequest) Validate() error {
	return validation.Struct(r)
}

// JobMatchResponse compares a resume with a job description.
type JobMatchResponse struct {
	MatchScore        int      `json:"match_score"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	Recommendations   []string `json:"recommendations"`
	OverallAssessment string   `json:"overall_assessment"`
}

// CoverLetterRequest is the body of POST /generate-cover-letter.
//
// Field order matters: validation reports the first empty field in
// declaration order.
type CoverLetterRequest struct {
	ResumeText     string `json:"resume_text" validate:"notblank"`
	JobDescription string `json:"job_description" validate:"notblank"`
	CompanyName    string `json:"company_name" validate:"notblank"`
	JobTitle       string `json:"job_title" validate:"notblank"`
	YourName       string `json:"your_name" validate:"notblank"`
	YourEmail      string `json:"your_email" validate:"notblank"`
	YourPhone      string `json:"your_phone"`
}

func (r *CoverLetterRequest) Validate() error {
	return validation.Struct(r)
}

// CoverLetterResponse carries the rendered letter.
type CoverLetterResponse struct {
	CoverLetter string `json:"cover_letter"`
}

// InterviewFeedbackRequest is the body of POST /analyze-answer.
// Category is accepted but not validated.
type InterviewFeedbackRequest struct {
	Question string `json:"question" validate:"notblank"`
	Answer   string `json:"answer" validate:"notblank"`
	Category string `json:"category"`
}

func (r *InterviewFeedbackRequest) Validate() error {
	return validation.Struct(r)
}

// InterviewFeedbackResponse grades an interview answer.
type InterviewFeedbackResponse struct {
	Feedback    string   `json:"feedback"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}
