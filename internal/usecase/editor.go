package usecase

import (
	"context"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"

	"github.com/google/uuid"
)

const defaultAutosaveDelay = 500 * time.Millisecond

// SaveStatus tracks the last debounced draft write.
type SaveStatus string

const (
	SaveIdle   SaveStatus = "idle"
	SaveSaving SaveStatus = "saving"
	SaveSaved  SaveStatus = "saved"
	SaveFailed SaveStatus = "failed"
)

// Options configures an Editor. Zero values pick defaults.
type Options struct {
	AutosaveDelay time.Duration
	Now           func() time.Time
	NewID         func() string
	Notifier      Notifier
	Logger        logger.Logger
	Metrics       *metrics.Manager
}

// Editor holds the active draft and the submissions list. The draft is
// replaced wholesale on every change, so a snapshot taken from Draft never
// changes afterwards.
type Editor struct {
	mu          sync.Mutex
	draft       model.ResumeData
	submissions domain.Submissions
	status      SaveStatus
	inflight    map[string]struct{}

	// saveMu orders draft writes, listMu orders submission list writes.
	saveMu sync.Mutex
	listMu sync.Mutex

	store    DraftStore
	ai       TextGenerator
	autosave *debouncer
	notifier Notifier
	now      func() time.Time
	newID    func() string
	log      logger.Logger
	metrics  *metrics.Manager
}

// NewEditor restores the draft and submissions from store. A missing or
// unreadable draft starts a fresh one.
func NewEditor(ctx context.Context, store DraftStore, gen TextGenerator, opts Options) *Editor {
	e := &Editor{
		store:    store,
		ai:       gen,
		status:   SaveIdle,
		inflight: map[string]struct{}{},
		notifier: opts.Notifier,
		now:      opts.Now,
		newID:    opts.NewID,
		log:      opts.Logger,
		metrics:  opts.Metrics,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = func() string { return uuid.NewString() }
	}
	if e.log == nil {
		e.log = logger.Nop()
	}
	e.log = e.log.Named("editor")

	delay := opts.AutosaveDelay
	if delay <= 0 {
		delay = defaultAutosaveDelay
	}
	e.autosave = newDebouncer(delay, func() { e.saveDraft(context.Background()) })

	if draft, ok := store.LoadDraft(ctx); ok {
		e.draft = draft
	} else {
		e.draft = model.NewResume(e.newID())
	}
	e.submissions = store.LoadSubmissions(ctx)
	return e
}

// Draft returns a copy of the current draft.
func (e *Editor) Draft() model.ResumeData {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

func (e *Editor) SaveStatus() SaveStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Close writes any pending autosave.
func (e *Editor) Close() {
	e.autosave.Flush()
}

// mutate applies fn to a copy of the draft and installs the copy. When fn
// fails the draft is left untouched.
func (e *Editor) mutate(fn func(d *model.ResumeData) error) error {
	e.mu.Lock()
	next := e.draft.Clone()
	if err := fn(&next); err != nil {
		e.mu.Unlock()
		return err
	}
	e.draft = next
	e.mu.Unlock()
	e.autosave.Trigger()
	return nil
}

func (e *Editor) set(fn func(d *model.ResumeData)) {
	_ = e.mutate(func(d *model.ResumeData) error {
		fn(d)
		return nil
	})
}

func (e *Editor) SetTemplate(v model.TemplateKind) {
	e.set(func(d *model.ResumeData) { d.Template = model.ParseTemplateKind(string(v)) })
}
func (e *Editor) SetFullName(v string) { e.set(func(d *model.ResumeData) { d.FullName = v }) }
func (e *Editor) SetEmail(v string)    { e.set(func(d *model.ResumeData) { d.Email = v }) }
func (e *Editor) SetPhone(v string)    { e.set(func(d *model.ResumeData) { d.Phone = v }) }
func (e *Editor) SetLocation(v string) { e.set(func(d *model.ResumeData) { d.Location = v }) }
func (e *Editor) SetLinkedIn(v string) { e.set(func(d *model.ResumeData) { d.LinkedIn = v }) }
func (e *Editor) SetWebsite(v string)  { e.set(func(d *model.ResumeData) { d.Website = v }) }
func (e *Editor) SetSummary(v string)  { e.set(func(d *model.ResumeData) { d.Summary = v }) }
func (e *Editor) SetSkills(v string)   { e.set(func(d *model.ResumeData) { d.Skills = v }) }
func (e *Editor) SetLanguages(v string) {
	e.set(func(d *model.ResumeData) { d.Languages = v })
}
func (e *Editor) SetJobDescription(v string) {
	e.set(func(d *model.ResumeData) { d.JobDescription = v })
}

// saveDraft is the debounced write. Drafts without a name, an email or any
// experience are never written.
func (e *Editor) saveDraft(ctx context.Context) {
	e.saveMu.Lock()
	defer e.saveMu.Unlock()

	e.mu.Lock()
	snap := e.draft.Clone()
	if !snap.IsPersistable() {
		e.mu.Unlock()
		e.metrics.RecordAutosave("skipped")
		return
	}
	e.status = SaveSaving
	e.mu.Unlock()

	err := e.store.SaveDraft(ctx, snap)

	e.mu.Lock()
	if err != nil {
		e.status = SaveFailed
	} else {
		e.status = SaveSaved
	}
	e.mu.Unlock()

	if err != nil {
		e.metrics.RecordAutosave("failed")
		e.log.Error(ctx, "autosave failed", logger.String("resume_id", snap.ID), logger.Error(err))
		return
	}
	e.metrics.RecordAutosave("ok")
	e.log.Debug(ctx, "draft saved", logger.String("resume_id", snap.ID))
}

// NewResume discards the draft and starts an empty one with a new id. The
// stored draft is removed as well. Callers confirm with the user first.
func (e *Editor) NewResume(ctx context.Context) (model.ResumeData, error) {
	e.autosave.Cancel()
	e.saveMu.Lock()
	defer e.saveMu.Unlock()

	e.mu.Lock()
	e.draft = model.NewResume(e.newID())
	e.status = SaveIdle
	fresh := e.draft.Clone()
	e.mu.Unlock()

	if err := e.store.ClearDraft(ctx); err != nil {
		e.log.Warn(ctx, "clearing stored draft failed", logger.Error(err))
		return fresh, err
	}
	return fresh, nil
}
