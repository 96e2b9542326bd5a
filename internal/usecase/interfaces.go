package usecase

import (
	"context"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Renderer prints an HTML document to PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// DraftStore persists the active draft and the submissions list.
type DraftStore interface {
	LoadDraft(ctx context.Context) (model.ResumeData, bool)
	SaveDraft(ctx context.Context, draft model.ResumeData) error
	ClearDraft(ctx context.Context) error
	LoadSubmissions(ctx context.Context) domain.Submissions
	SaveSubmissions(ctx context.Context, list domain.Submissions) error
}

// TextGenerator rewrites resume text and scores a resume against a job
// description. Implementations must not fail: they return a fallback value
// instead.
type TextGenerator interface {
	EnhanceSummary(ctx context.Context, r model.ResumeData) string
	EnhanceExperienceDescription(ctx context.Context, exp model.Experience) string
	AnalyzeCompatibility(ctx context.Context, r model.ResumeData, jobDescription string) model.MatchResult
}

// Notifier receives submission list changes.
type Notifier interface {
	Notify(ctx context.Context, ev domain.SubmissionEvent) error
}
