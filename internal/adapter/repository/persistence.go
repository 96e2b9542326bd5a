package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"
)

// Fixed, versionless storage keys.
const (
	DraftKey       = "applicant_tracking_system_resume_active_form"
	SubmissionsKey = "applicant_tracking_system_resume_submissions"
)

// Persistence maps the active draft and the submissions list onto a Store.
// Loads never fail: a missing or unreadable slot yields the default value.
type Persistence struct {
	store   Store
	log     logger.Logger
	metrics *metrics.Manager
}

func NewPersistence(store Store, log logger.Logger, m *metrics.Manager) *Persistence {
	return &Persistence{store: store, log: log.Named("persistence"), metrics: m}
}

// LoadDraft returns the stored draft. ok is false when the slot is empty or
// could not be parsed.
func (p *Persistence) LoadDraft(ctx context.Context) (draft model.ResumeData, ok bool) {
	raw, err := p.store.Get(ctx, DraftKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.loadFailed(ctx, "draft", "read", err)
		}
		return model.ResumeData{}, false
	}
	if err := json.Unmarshal(raw, &draft); err != nil {
		p.loadFailed(ctx, "draft", "parse", err)
		return model.ResumeData{}, false
	}
	if draft.ID == "" {
		p.loadFailed(ctx, "draft", "parse", errors.New("draft has no id"))
		return model.ResumeData{}, false
	}
	draft.Normalize()
	return draft, true
}

func (p *Persistence) SaveDraft(ctx context.Context, draft model.ResumeData) error {
	return p.write(ctx, "draft", DraftKey, draft)
}

func (p *Persistence) ClearDraft(ctx context.Context) error {
	return p.store.Delete(ctx, DraftKey)
}

// LoadSubmissions returns the stored list, or an empty list on any failure.
func (p *Persistence) LoadSubmissions(ctx context.Context) domain.Submissions {
	raw, err := p.store.Get(ctx, SubmissionsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.loadFailed(ctx, "submissions", "read", err)
		}
		return domain.Submissions{}
	}
	var list domain.Submissions
	if err := json.Unmarshal(raw, &list); err != nil {
		p.loadFailed(ctx, "submissions", "parse", err)
		return domain.Submissions{}
	}
	if list == nil {
		list = domain.Submissions{}
	}
	for i := range list {
		list[i].Normalize()
	}
	return list
}

func (p *Persistence) SaveSubmissions(ctx context.Context, list domain.Submissions) error {
	if list == nil {
		list = domain.Submissions{}
	}
	return p.write(ctx, "submissions", SubmissionsKey, list)
}

func (p *Persistence) write(ctx context.Context, slot, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	if err := p.store.Set(ctx, key, b); err != nil {
		if errors.Is(err, ErrQuotaExceeded) {
			p.metrics.RecordStorageFailure(slot, "quota")
			return fmt.Errorf("%w: %w", domain.ErrStorageFull, err)
		}
		p.metrics.RecordStorageFailure(slot, "write")
		return fmt.Errorf("write %s: %w", slot, err)
	}
	return nil
}

func (p *Persistence) loadFailed(ctx context.Context, slot, kind string, err error) {
	p.metrics.RecordStorageFailure(slot, kind)
	p.log.Warn(ctx, "storage slot unreadable, using default", logger.String("slot", slot), logger.Error(err))
}
