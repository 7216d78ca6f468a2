package analysis

import (
	"fmt"
)

// PromptBuilder renders the instructions sent to the language model. Each
// prompt asks for a single JSON object matching the response record of the
// operation.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const jsonOnly = `Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.
Base all reasoning only on the provided text. Do not make up experience that is not explicitly mentioned.`

// BuildResumeAnalysisPrompt creates the prompt for resume analysis.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert career coach reviewing a candidate's resume.

CANDIDATE RESUME:
%s

Identify the strongest points of the resume, its weaknesses, and concrete suggestions to improve it.
Assign an overall quality score from 0 to 100.

Return your response in the following JSON format:
{
  "strengths": [string],
  "weaknesses": [string],
  "suggestions": [string],
  "score": <integer 0-100>
}

%s`, resumeText, jsonOnly)
}

// BuildJobMatchPrompt creates the prompt comparing a resume with a job
// description.
func (pb *PromptBuilder) BuildJobMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert technical recruiter evaluating how well a candidate's resume matches a job description.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

List the skills required by the job that the resume demonstrates, the required skills it is missing,
and recommendations to close the gap. Assign a match score from 0 to 100.

Return your response in the following JSON format:
{
  "match_score": <integer 0-100>,
  "matched_skills": [string],
  "missing_skills": [string],
  "recommendations": [string],
  "overall_assessment": "<2-3 sentences>"
}

%s`, jobDescription, resumeText, jsonOnly)
}

// BuildCoverLetterPrompt creates the prompt for the body of a cover letter.
// Greeting and signature are added afterwards.
func (pb *PromptBuilder) BuildCoverLetterPrompt(jobTitle, companyName, jobDescription, resumeText string) string {
	return fmt.Sprintf(`You are an expert career writer drafting a cover letter for the %s position at %s.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

Write the body of the letter as three or four short paragraphs in first person.
Do not include a greeting, a closing, a signature or contact details.

Return your response in the following JSON format:
{
  "paragraphs": [string]
}

%s`, jobTitle, companyName, jobDescription, resumeText, jsonOnly)
}

// BuildAnswerFeedbackPrompt creates the prompt grading an interview answer.
func (pb *PromptBuilder) BuildAnswerFeedbackPrompt(question, answer string) string {
	return fmt.Sprintf(`You are an experienced interviewer giving feedback on a candidate's answer.

INTERVIEW QUESTION:
%s

CANDIDATE ANSWER:
%s

Give concise feedback on the answer, a score from 0 to 100, and concrete suggestions to improve it.

Return your response in the following JSON format:
{
  "feedback": "<3-5 sentences>",
  "score": <integer 0-100>,
  "suggestions": [string]
}

%s`, question, answer, jsonOnly)
}
