package usecase

import (
	"fmt"

	"resume-builder/internal/model"
)

// Field names a scalar attribute of the draft. The values match the JSON
// names used by stored documents.
type Field string

const (
	FieldTemplate       Field = "template"
	FieldFullName       Field = "fullName"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldLocation       Field = "location"
	FieldLinkedIn       Field = "linkedin"
	FieldWebsite        Field = "website"
	FieldSummary        Field = "summary"
	FieldSkills         Field = "skills"
	FieldLanguages      Field = "languages"
	FieldJobDescription Field = "jobDescription"
)

// FieldEdit sets one scalar field.
type FieldEdit struct {
	Field Field  `json:"field"`
	Value string `json:"value"`
}

func applyField(d *model.ResumeData, f Field, v string) bool {
	switch f {
	case FieldTemplate:
		d.Template = model.ParseTemplateKind(v)
	case FieldFullName:
		d.FullName = v
	case FieldEmail:
		d.Email = v
	case FieldPhone:
		d.Phone = v
	case FieldLocation:
		d.Location = v
	case FieldLinkedIn:
		d.LinkedIn = v
	case FieldWebsite:
		d.Website = v
	case FieldSummary:
		d.Summary = v
	case FieldSkills:
		d.Skills = v
	case FieldLanguages:
		d.Languages = v
	case FieldJobDescription:
		d.JobDescription = v
	default:
		return false
	}
	return true
}

// Apply runs a batch of edits as one change. An unknown field rejects the
// whole batch.
func (e *Editor) Apply(edits ...FieldEdit) error {
	return e.mutate(func(d *model.ResumeData) error {
		for _, ed := range edits {
			if !applyField(d, ed.Field, ed.Value) {
				return fmt.Errorf("%w: %q", ErrUnknownField, ed.Field)
			}
		}
		return nil
	})
}
