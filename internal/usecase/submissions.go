package usecase

import (
	"context"
	"encoding/json"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/logger"
)

// Submissions returns the full list.
func (e *Editor) Submissions() domain.Submissions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(domain.Submissions{}, e.submissions...)
}

// SearchSubmissions filters by name or email, case-insensitively.
func (e *Editor) SearchSubmissions(term string) domain.Submissions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submissions.Search(term)
}

// Submit copies the draft into the submissions list, stamped with the current
// time. Submitting the same draft again replaces its earlier entry. The list
// is written before it is committed in memory, so a failed write leaves
// everything as it was.
func (e *Editor) Submit(ctx context.Context) (model.ResumeData, error) {
	e.listMu.Lock()
	defer e.listMu.Unlock()

	e.mu.Lock()
	snap := e.draft.Clone()
	list := e.submissions
	e.mu.Unlock()

	snap.SubmittedAt = e.now().UTC().Format(time.RFC3339)
	snap.MatchScore = nil
	next := list.Upsert(snap)

	if err := e.store.SaveSubmissions(ctx, next); err != nil {
		e.log.Error(ctx, "submit failed", logger.String("resume_id", snap.ID), logger.Error(err))
		return model.ResumeData{}, err
	}

	e.mu.Lock()
	e.submissions = next
	e.mu.Unlock()

	e.metrics.RecordSubmission("submit")
	e.notify(ctx, domain.SubmissionEvent{Type: domain.EventSubmitted, ID: snap.ID, FullName: snap.FullName, Email: snap.Email})
	return snap, nil
}

// LoadSubmission replaces the draft with a copy of the submission id.
func (e *Editor) LoadSubmission(id string) (model.ResumeData, error) {
	e.mu.Lock()
	sub, ok := e.submissions.Find(id)
	e.mu.Unlock()
	if !ok {
		return model.ResumeData{}, domain.ErrNotFound
	}
	if err := e.mutate(func(d *model.ResumeData) error {
		*d = sub
		return nil
	}); err != nil {
		return model.ResumeData{}, err
	}
	return sub.Clone(), nil
}

// DeleteSubmission removes id from the list. The draft is not affected.
// Callers confirm with the user first.
func (e *Editor) DeleteSubmission(ctx context.Context, id string) error {
	e.listMu.Lock()
	defer e.listMu.Unlock()

	e.mu.Lock()
	list := e.submissions
	e.mu.Unlock()

	next, found := list.Remove(id)
	if !found {
		return domain.ErrNotFound
	}
	if err := e.store.SaveSubmissions(ctx, next); err != nil {
		e.log.Error(ctx, "delete submission failed", logger.String("resume_id", id), logger.Error(err))
		return err
	}

	e.mu.Lock()
	e.submissions = next
	e.mu.Unlock()

	e.metrics.RecordSubmission("delete")
	e.notify(ctx, domain.SubmissionEvent{Type: domain.EventDeleted, ID: id})
	return nil
}

// RestoreSubmissions replaces the whole list, e.g. from an import file that
// was validated beforehand.
func (e *Editor) RestoreSubmissions(ctx context.Context, list domain.Submissions) error {
	e.listMu.Lock()
	defer e.listMu.Unlock()

	next := make(domain.Submissions, 0, len(list))
	for _, r := range list {
		r = r.Clone()
		r.Normalize()
		next = next.Upsert(r)
	}
	if err := e.store.SaveSubmissions(ctx, next); err != nil {
		e.log.Error(ctx, "restore submissions failed", logger.Int("count", len(next)), logger.Error(err))
		return err
	}

	e.mu.Lock()
	e.submissions = next
	e.mu.Unlock()

	e.metrics.RecordSubmission("restore")
	e.notify(ctx, domain.SubmissionEvent{Type: domain.EventRestored, Count: len(next)})
	return nil
}

// Export is a downloadable snapshot of the submissions list.
type Export struct {
	FileName string
	Body     []byte
}

// ExportSubmissions serializes the list as indented JSON under a dated file name.
func (e *Editor) ExportSubmissions() (Export, error) {
	list := e.Submissions()
	body, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return Export{}, err
	}
	return Export{FileName: domain.ExportFileName(e.now()), Body: body}, nil
}

func (e *Editor) notify(ctx context.Context, ev domain.SubmissionEvent) {
	if e.notifier == nil {
		return
	}
	ev.At = e.now().UTC()
	if err := e.notifier.Notify(ctx, ev); err != nil {
		e.log.Warn(ctx, "publishing submission event failed", logger.String("type", ev.Type), logger.Error(err))
	}
}
