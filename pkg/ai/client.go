package ai

import (
	"context"
	"time"

	"resume-builder/internal/model"
	"resume-builder/pkg/ai/formatters"
	"resume-builder/pkg/ai/llm"
	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"
)

// Fallback feedback returned when the compatibility check cannot be completed.
const CompatibilityErrorFeedback = "Error analyzing resume."

// Client runs the three resume rewrite/analysis operations over a Generator.
// It never returns an error: any failure of the backend degrades to a
// fallback value and is logged.
type Client struct {
	gen     llm.Generator
	log     logger.Logger
	metrics *metrics.Manager

	summary       *formatters.SummaryFormatter
	experience    *formatters.ExperienceFormatter
	compatibility *formatters.CompatibilityFormatter
}

// Option configures a Client.
type Option func(*Client)

func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l.Named("ai")
		}
	}
}

func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLanguage sets the output language appended to every prompt.
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.summary = formatters.NewSummaryFormatter(language)
		c.experience = formatters.NewExperienceFormatter(language)
		c.compatibility = formatters.NewCompatibilityFormatter(language)
	}
}

func NewClient(gen llm.Generator, opts ...Option) *Client {
	if gen == nil {
		gen = llm.Unavailable{}
	}
	c := &Client{
		gen:           gen,
		log:           logger.Nop(),
		summary:       formatters.NewSummaryFormatter(""),
		experience:    formatters.NewExperienceFormatter(""),
		compatibility: formatters.NewCompatibilityFormatter(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnhanceSummary writes a short narrative summary. On failure the current
// summary is returned unchanged.
func (c *Client) EnhanceSummary(ctx context.Context, r model.ResumeData) string {
	start := time.Now()
	out, err := c.gen.Generate(ctx, llm.Request{Prompt: c.summary.Prompt(r)})
	if err == nil {
		out, err = c.summary.Parse(out)
	}
	if err != nil {
		c.fail(ctx, "summary", start, err)
		return r.Summary
	}
	c.ok("summary", start)
	return out
}

// EnhanceExperienceDescription rewrites one description as bullets. On
// failure the original description is returned unchanged.
func (c *Client) EnhanceExperienceDescription(ctx context.Context, exp model.Experience) string {
	start := time.Now()
	out, err := c.gen.Generate(ctx, llm.Request{Prompt: c.experience.Prompt(exp)})
	if err == nil {
		out, err = c.experience.Parse(out)
	}
	if err != nil {
		c.fail(ctx, "experience", start, err, logger.String("experience_id", exp.ID))
		return exp.Description
	}
	c.ok("experience", start)
	return out
}

// AnalyzeCompatibility scores r against jobDescription. On failure it returns
// a zero score, no keywords and CompatibilityErrorFeedback.
func (c *Client) AnalyzeCompatibility(ctx context.Context, r model.ResumeData, jobDescription string) model.MatchResult {
	start := time.Now()
	out, err := c.gen.Generate(ctx, llm.Request{
		Prompt: c.compatibility.Prompt(r, jobDescription),
		Schema: c.compatibility.Schema(),
	})
	var m model.MatchResult
	if err == nil {
		m, err = c.compatibility.Parse(out)
	}
	if err != nil {
		c.fail(ctx, "compatibility", start, err)
		return model.MatchResult{Score: 0, Feedback: CompatibilityErrorFeedback, MissingKeywords: []string{}}
	}
	c.ok("compatibility", start)
	return m
}

func (c *Client) ok(op string, start time.Time) {
	c.metrics.RecordAICall(op, "ok", time.Since(start))
}

func (c *Client) fail(ctx context.Context, op string, start time.Time, err error, fields ...logger.Field) {
	c.metrics.RecordAICall(op, "fallback", time.Since(start))
	fields = append(fields, logger.String("operation", op), logger.Error(err))
	c.log.Warn(ctx, "text generation failed, using fallback", fields...)
}
