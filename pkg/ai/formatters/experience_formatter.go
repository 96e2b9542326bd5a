package formatters

import (
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// ExperienceFormatter rewrites one experience description as action-oriented bullets.
type ExperienceFormatter struct {
	language string
}

func NewExperienceFormatter(language string) *ExperienceFormatter {
	return &ExperienceFormatter{language: language}
}

func (ef *ExperienceFormatter) Prompt(exp model.Experience) string {
	var b strings.Builder
	b.WriteString("Rewrite the following job description for a resume to be Applicant Tracking System friendly and action-oriented.\n")
	b.WriteString("Use bullet points starting with strong action verbs. Highlight achievements and quantify results if possible.\n")
	fmt.Fprintf(&b, "Role: %s at %s\n", exp.Position, exp.Company)
	fmt.Fprintf(&b, "Raw Description: %s\n", exp.Description)
	b.WriteString("---\nProvide only the improved bullet points, one per line. No preamble. Use \"•\" as the bullet point marker.")
	if ef.language != "" {
		fmt.Fprintf(&b, "\nWrite the bullet points in %s.", ef.language)
	}
	return b.String()
}

func (ef *ExperienceFormatter) Parse(out string) (string, error) {
	s := cleanText(out)
	if s == "" {
		return "", errors.New("empty description")
	}
	return s, nil
}
