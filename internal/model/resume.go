package model

// Go models for the resume draft and its child records. JSON names match the
// documents already held in storage, so drafts written by older builds keep
// loading.

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	ID       string `json:"id"`
	School   string `json:"school"`
	Degree   string `json:"degree"`
	Location string `json:"location"`
	GradDate string `json:"gradDate"`
	GPA      string `json:"gpa,omitempty"`
	Grades   string `json:"grades,omitempty"`
}

type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type Reference struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// MatchResult is the outcome of a compatibility check against a job description.
type MatchResult struct {
	Score           float64  `json:"score"`
	Feedback        string   `json:"feedback"`
	MissingKeywords []string `json:"missingKeywords"`
}

type ResumeData struct {
	ID             string          `json:"id"`
	Template       TemplateKind    `json:"template"`
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Location       string          `json:"location"`
	LinkedIn       string          `json:"linkedin"`
	Website        string          `json:"website"`
	Summary        string          `json:"summary"`
	Experiences    []Experience    `json:"experiences"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	References     []Reference     `json:"references"`
	Skills         string          `json:"skills"`
	Languages      string          `json:"languages"`
	JobDescription string          `json:"jobDescription,omitempty"`
	SubmittedAt    string          `json:"submittedAt,omitempty"`
	MatchScore     *MatchResult    `json:"atsScore,omitempty"`
}

// NewResume returns an empty draft with the given identifier.
func NewResume(id string) ResumeData {
	return ResumeData{
		ID:             id,
		Template:       TemplateStandard,
		Experiences:    []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		References:     []Reference{},
	}
}

// IsPersistable reports whether the draft carries enough data to be worth
// writing to storage.
func (r ResumeData) IsPersistable() bool {
	return r.FullName != "" || r.Email != "" || len(r.Experiences) > 0
}

// Clone returns a deep copy. Collections are never nil in the copy.
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Experiences = append(make([]Experience, 0, len(r.Experiences)), r.Experiences...)
	out.Education = append(make([]Education, 0, len(r.Education)), r.Education...)
	out.Projects = append(make([]Project, 0, len(r.Projects)), r.Projects...)
	out.Certifications = append(make([]Certification, 0, len(r.Certifications)), r.Certifications...)
	out.References = append(make([]Reference, 0, len(r.References)), r.References...)
	if r.MatchScore != nil {
		m := *r.MatchScore
		m.MissingKeywords = append([]string{}, r.MatchScore.MissingKeywords...)
		out.MatchScore = &m
	}
	return out
}

// Normalize fills nil collections and an empty template after decoding
// documents that omitted them.
func (r *ResumeData) Normalize() {
	if r.Experiences == nil {
		r.Experiences = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.References == nil {
		r.References = []Reference{}
	}
	r.Template = ParseTemplateKind(string(r.Template))
}
