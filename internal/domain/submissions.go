package domain

import (
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/model"
)

// Submissions is the ordered history of submitted resume snapshots. Methods
// never modify the receiver; they return a new list.
type Submissions []model.ResumeData

// Upsert replaces the entry sharing r.ID or appends r when none exists.
func (s Submissions) Upsert(r model.ResumeData) Submissions {
	out := make(Submissions, 0, len(s)+1)
	replaced := false
	for _, cur := range s {
		if cur.ID == r.ID {
			out = append(out, r)
			replaced = true
			continue
		}
		out = append(out, cur)
	}
	if !replaced {
		out = append(out, r)
	}
	return out
}

// Remove drops the entry with the given id. The boolean reports whether it existed.
func (s Submissions) Remove(id string) (Submissions, bool) {
	out := make(Submissions, 0, len(s))
	found := false
	for _, cur := range s {
		if cur.ID == id {
			found = true
			continue
		}
		out = append(out, cur)
	}
	return out, found
}

func (s Submissions) Find(id string) (model.ResumeData, bool) {
	for _, cur := range s {
		if cur.ID == id {
			return cur.Clone(), true
		}
	}
	return model.ResumeData{}, false
}

// Search matches term case-insensitively against full name and email.
// An empty term returns every entry.
func (s Submissions) Search(term string) Submissions {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make(Submissions, 0, len(s))
	for _, cur := range s {
		if term == "" ||
			strings.Contains(strings.ToLower(cur.FullName), term) ||
			strings.Contains(strings.ToLower(cur.Email), term) {
			out = append(out, cur)
		}
	}
	return out
}

// ExportFileName names a submissions export taken at now. The date is the
// UTC calendar day.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("resume_database_export_%s.json", now.UTC().Format("2006-01-02"))
}
