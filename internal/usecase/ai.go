package usecase

import (
	"context"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// begin marks field as having an outstanding AI call. The returned func
// clears the mark.
func (e *Editor) begin(field string) (func(), error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.inflight[field]; busy {
		return nil, domain.ErrBusy
	}
	e.inflight[field] = struct{}{}
	return func() {
		e.mu.Lock()
		delete(e.inflight, field)
		e.mu.Unlock()
	}, nil
}

// Busy reports whether an AI call is outstanding for field.
func (e *Editor) Busy(field string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, busy := e.inflight[field]
	return busy
}

// mergeInto applies fn to the draft only when it is still the resume the
// call was started for. A new resume or a loaded submission drops the result.
func (e *Editor) mergeInto(resumeID string, fn func(d *model.ResumeData)) {
	_ = e.mutate(func(d *model.ResumeData) error {
		if d.ID == resumeID {
			fn(d)
		}
		return nil
	})
}

// EnhanceSummary replaces the summary with a generated one. The generator
// falls back to the current summary on failure.
func (e *Editor) EnhanceSummary(ctx context.Context) (model.ResumeData, error) {
	release, err := e.begin("summary")
	if err != nil {
		return model.ResumeData{}, err
	}
	defer release()

	snap := e.Draft()
	text := e.ai.EnhanceSummary(ctx, snap)
	e.mergeInto(snap.ID, func(d *model.ResumeData) { d.Summary = text })
	return e.Draft(), nil
}

// EnhanceExperience rewrites the description of experience id. An empty
// description is left alone. If the record was removed while the call was
// outstanding the result is dropped.
func (e *Editor) EnhanceExperience(ctx context.Context, id string) (model.ResumeData, error) {
	snap := e.Draft()
	var exp *model.Experience
	for i := range snap.Experiences {
		if snap.Experiences[i].ID == id {
			exp = &snap.Experiences[i]
			break
		}
	}
	if exp == nil {
		return model.ResumeData{}, domain.ErrNotFound
	}
	if exp.Description == "" {
		return snap, nil
	}

	release, err := e.begin("experience:" + id)
	if err != nil {
		return model.ResumeData{}, err
	}
	defer release()

	text := e.ai.EnhanceExperienceDescription(ctx, *exp)
	e.mergeInto(snap.ID, func(d *model.ResumeData) {
		for i := range d.Experiences {
			if d.Experiences[i].ID == id {
				d.Experiences[i].Description = text
			}
		}
	})
	return e.Draft(), nil
}

// AnalyzeCompatibility scores the draft against its job description and
// attaches the result. Nothing happens while the job description is empty.
func (e *Editor) AnalyzeCompatibility(ctx context.Context) (model.ResumeData, error) {
	snap := e.Draft()
	if snap.JobDescription == "" {
		return snap, nil
	}

	release, err := e.begin("compatibility")
	if err != nil {
		return model.ResumeData{}, err
	}
	defer release()

	result := e.ai.AnalyzeCompatibility(ctx, snap, snap.JobDescription)
	e.mergeInto(snap.ID, func(d *model.ResumeData) { d.MatchScore = &result })
	return e.Draft(), nil
}
