package usecase

import (
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Section names a child record collection of the draft.
type Section string

const (
	SectionExperiences    Section = "experiences"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionReferences     Section = "references"
)

func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionExperiences, SectionEducation, SectionProjects, SectionCertifications, SectionReferences:
		return Section(s), nil
	}
	return "", ErrUnknownSection
}

func replaceByID[T any](items []T, id string, idOf func(T) string, v T) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			out := append([]T(nil), items...)
			out[i] = v
			return out, true
		}
	}
	return items, false
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	out := make([]T, 0, len(items))
	found := false
	for _, it := range items {
		if idOf(it) == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	return out, found
}

func experienceID(v model.Experience) string       { return v.ID }
func educationID(v model.Education) string         { return v.ID }
func projectID(v model.Project) string             { return v.ID }
func certificationID(v model.Certification) string { return v.ID }
func referenceID(v model.Reference) string         { return v.ID }

// Add appends an empty record to section and returns its new id.
func (e *Editor) Add(section Section) (string, error) {
	id := e.newID()
	err := e.mutate(func(d *model.ResumeData) error {
		switch section {
		case SectionExperiences:
			d.Experiences = append(d.Experiences, model.Experience{ID: id})
		case SectionEducation:
			d.Education = append(d.Education, model.Education{ID: id})
		case SectionProjects:
			d.Projects = append(d.Projects, model.Project{ID: id})
		case SectionCertifications:
			d.Certifications = append(d.Certifications, model.Certification{ID: id})
		case SectionReferences:
			d.References = append(d.References, model.Reference{ID: id})
		default:
			return ErrUnknownSection
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Remove drops the record with id from section.
func (e *Editor) Remove(section Section, id string) error {
	return e.mutate(func(d *model.ResumeData) error {
		var found bool
		switch section {
		case SectionExperiences:
			d.Experiences, found = removeByID(d.Experiences, id, experienceID)
		case SectionEducation:
			d.Education, found = removeByID(d.Education, id, educationID)
		case SectionProjects:
			d.Projects, found = removeByID(d.Projects, id, projectID)
		case SectionCertifications:
			d.Certifications, found = removeByID(d.Certifications, id, certificationID)
		case SectionReferences:
			d.References, found = removeByID(d.References, id, referenceID)
		default:
			return ErrUnknownSection
		}
		if !found {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (e *Editor) AddExperience() string {
	id, _ := e.Add(SectionExperiences)
	return id
}

func (e *Editor) AddEducation() string {
	id, _ := e.Add(SectionEducation)
	return id
}

func (e *Editor) AddProject() string {
	id, _ := e.Add(SectionProjects)
	return id
}

func (e *Editor) AddCertification() string {
	id, _ := e.Add(SectionCertifications)
	return id
}

func (e *Editor) AddReference() string {
	id, _ := e.Add(SectionReferences)
	return id
}

// UpdateExperience replaces the experience with v.ID. Siblings are untouched.
func (e *Editor) UpdateExperience(v model.Experience) error {
	return e.mutate(func(d *model.ResumeData) error {
		var ok bool
		if d.Experiences, ok = replaceByID(d.Experiences, v.ID, experienceID, v); !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (e *Editor) UpdateEducation(v model.Education) error {
	return e.mutate(func(d *model.ResumeData) error {
		var ok bool
		if d.Education, ok = replaceByID(d.Education, v.ID, educationID, v); !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (e *Editor) UpdateProject(v model.Project) error {
	return e.mutate(func(d *model.ResumeData) error {
		var ok bool
		if d.Projects, ok = replaceByID(d.Projects, v.ID, projectID, v); !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (e *Editor) UpdateCertification(v model.Certification) error {
	return e.mutate(func(d *model.ResumeData) error {
		var ok bool
		if d.Certifications, ok = replaceByID(d.Certifications, v.ID, certificationID, v); !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (e *Editor) UpdateReference(v model.Reference) error {
	return e.mutate(func(d *model.ResumeData) error {
		var ok bool
		if d.References, ok = replaceByID(d.References, v.ID, referenceID, v); !ok {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (e *Editor) RemoveExperience(id string) error    { return e.Remove(SectionExperiences, id) }
func (e *Editor) RemoveEducation(id string) error     { return e.Remove(SectionEducation, id) }
func (e *Editor) RemoveProject(id string) error       { return e.Remove(SectionProjects, id) }
func (e *Editor) RemoveCertification(id string) error { return e.Remove(SectionCertifications, id) }
func (e *Editor) RemoveReference(id string) error     { return e.Remove(SectionReferences, id) }
