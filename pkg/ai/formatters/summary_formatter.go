package formatters

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// SummaryFormatter builds the professional summary prompt and reads its answer.
type SummaryFormatter struct {
	language string
}

func NewSummaryFormatter(language string) *SummaryFormatter {
	return &SummaryFormatter{language: language}
}

func (sf *SummaryFormatter) Prompt(r model.ResumeData) string {
	education, _ := json.Marshal(r.Education)
	experience, _ := json.Marshal(r.Experiences)

	var b strings.Builder
	b.WriteString("Based on the following candidate information, write a professional, high-impact 3-sentence summary for a resume. Focus on achievements, skills, and career goals.\n")
	fmt.Fprintf(&b, "Name: %s\n", r.FullName)
	fmt.Fprintf(&b, "Skills: %s\n", r.Skills)
	fmt.Fprintf(&b, "Education: %s\n", education)
	fmt.Fprintf(&b, "Experience: %s\n", experience)
	b.WriteString("---\nProvide only the summary text. No preamble.")
	if sf.language != "" {
		fmt.Fprintf(&b, "\nWrite the summary in %s.", sf.language)
	}
	return b.String()
}

func (sf *SummaryFormatter) Parse(out string) (string, error) {
	s := cleanText(out)
	if s == "" {
		return "", errors.New("empty summary")
	}
	return s, nil
}
