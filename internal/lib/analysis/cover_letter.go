package analysis

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/deppfellow/careerpilot/internal/model"
)

// coverLetterTemplate is the fixed letter. Substitution points are the job
// title, the company name (twice) and the signature block. There is no
// newline after the phone line, so an empty phone leaves the letter ending
// in "\n" right after the email.
const coverLetterTemplate = `Dear Hiring Manager,

I am writing to express my strong interest in the {{.JobTitle}} position at {{.CompanyName}}. With my background in software development and passion for creating innovative solutions, I am excited about the opportunity to contribute to your team.

My experience includes developing scalable web applications using modern technologies such as React, TypeScript, and Node.js. I have successfully delivered projects that improved user experience and system performance, demonstrating my ability to work effectively in fast-paced environments.

I am particularly drawn to {{.CompanyName}} because of your commitment to innovation and excellence. Your focus on creating impactful solutions aligns perfectly with my professional goals and technical expertise.

I would welcome the opportunity to discuss how my skills and experience can contribute to your team's success. Thank you for considering my application.

{{template "closing" .}}`

// closingTemplate is shared with generated letters so the signature block
// always sits in the same place.
const closingTemplate = `{{define "closing"}}Best regards,
{{.YourName}}
{{.YourEmail}}
{{.YourPhone}}{{end}}`

const greeting = "Dear Hiring Manager,"

var (
	coverLetterTmpl = template.Must(template.New("cover_letter").Parse(coverLetterTemplate + closingTemplate))
	closingTmpl     = template.Must(template.New("closing_only").Parse(`{{template "closing" .}}` + closingTemplate))
)

// RenderCoverLetter fills the fixed cover letter template with the fields
// of req. Values are inserted verbatim.
func RenderCoverLetter(req *model.CoverLetterRequest) (string, error) {
	var body bytes.Buffer
	if err := coverLetterTmpl.Execute(&body, req); err != nil {
		return "", fmt.Errorf("failed to render cover letter: %w", err)
	}
	return body.String(), nil
}

// RenderGeneratedCoverLetter wraps generated body paragraphs with the
// standard greeting and signature block.
func RenderGeneratedCoverLetter(req *model.CoverLetterRequest, paragraphs []string) (string, error) {
	var closing bytes.Buffer
	if err := closingTmpl.Execute(&closing, req); err != nil {
		return "", fmt.Errorf("failed to render cover letter closing: %w", err)
	}

	parts := make([]string, 0, len(paragraphs)+2)
	parts = append(parts, greeting)
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, closing.String())

	return strings.Join(parts, "\n\n"), nil
}
