package formatters

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/pkg/ai/llm"

	"github.com/xeipuuv/gojsonschema"
)

// CompatibilityFormatter asks for a structured resume/job description match.
type CompatibilityFormatter struct {
	language string
}

func NewCompatibilityFormatter(language string) *CompatibilityFormatter {
	return &CompatibilityFormatter{language: language}
}

// Schema is the exact answer shape requested from the model.
func (cf *CompatibilityFormatter) Schema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeObject,
		Properties: map[string]*llm.Schema{
			"score":           {Type: llm.TypeNumber},
			"feedback":        {Type: llm.TypeString},
			"missingKeywords": {Type: llm.TypeArray, Items: &llm.Schema{Type: llm.TypeString}},
		},
		Required: []string{"score", "feedback", "missingKeywords"},
	}
}

func (cf *CompatibilityFormatter) Prompt(r model.ResumeData, jobDescription string) string {
	// the match score itself is never sent back to the model
	r.MatchScore = nil
	r.JobDescription = ""
	resume, _ := json.Marshal(r)

	var b strings.Builder
	b.WriteString("Analyze the following resume against the job description for Applicant Tracking System compatibility.\n\n")
	fmt.Fprintf(&b, "RESUME:\n%s\n\n", resume)
	fmt.Fprintf(&b, "JOB DESCRIPTION:\n%s\n\n", jobDescription)
	b.WriteString("Provide a score from 0 to 100, specific feedback, and a list of missing keywords.\n")
	b.WriteString("Respond with ONLY a JSON object with keys score, feedback and missingKeywords.")
	if cf.language != "" {
		fmt.Fprintf(&b, "\nWrite the feedback in %s.", cf.language)
	}
	return b.String()
}

// Parse validates the answer against Schema and clamps the score to 0..100.
func (cf *CompatibilityFormatter) Parse(out string) (model.MatchResult, error) {
	s := cleanText(out)
	if obj, ok := extractJSONObject(s); ok {
		s = obj
	}

	schema := gojsonschema.NewGoLoader(cf.Schema().Map())
	res, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(s))
	if err != nil {
		return model.MatchResult{}, fmt.Errorf("ai-service returned non-json content: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return model.MatchResult{}, fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
	}

	var m model.MatchResult
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return model.MatchResult{}, err
	}
	if math.IsNaN(m.Score) {
		m.Score = 0
	}
	m.Score = math.Max(0, math.Min(100, m.Score))
	if m.MissingKeywords == nil {
		m.MissingKeywords = []string{}
	}
	return m, nil
}
