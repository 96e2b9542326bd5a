// Package render turns a resume snapshot into a standalone HTML document in
// one of the fixed layouts.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"resume-builder/internal/model"
)

//go:embed templates/*.html templates/style.css
var templateFS embed.FS

// Document is a rendered resume.
type Document struct {
	Kind model.TemplateKind
	HTML string
}

// Layout renders one template kind.
type Layout interface {
	Kind() model.TemplateKind
	Render(r model.ResumeData) (Document, error)
}

type pageData struct {
	Resume model.ResumeData
	CSS    template.CSS
}

// htmlLayout executes a named template from the shared set. The stylesheet is
// inlined into <head> so the output renders without any side files.
type htmlLayout struct {
	kind model.TemplateKind
	name string
	tmpl *template.Template
	css  template.CSS
}

func (l htmlLayout) Kind() model.TemplateKind { return l.kind }

func (l htmlLayout) Render(r model.ResumeData) (Document, error) {
	var buf bytes.Buffer
	if err := l.tmpl.ExecuteTemplate(&buf, l.name, pageData{Resume: r, CSS: l.css}); err != nil {
		return Document{}, fmt.Errorf("render %s: %w", l.kind, err)
	}
	return Document{Kind: l.kind, HTML: buf.String()}, nil
}

type (
	standardLayout   struct{ htmlLayout }
	technologyLayout struct{ htmlLayout }
	businessLayout   struct{ htmlLayout }
	creativeLayout   struct{ htmlLayout }
)

// Renderer holds the parsed layouts. It is safe for concurrent use.
type Renderer struct {
	standard   standardLayout
	technology technologyLayout
	business   businessLayout
	creative   creativeLayout
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("resume").Funcs(funcMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	css, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return nil, err
	}
	mk := func(kind model.TemplateKind, name string) htmlLayout {
		return htmlLayout{kind: kind, name: name, tmpl: tmpl, css: template.CSS(css)}
	}
	return &Renderer{
		standard:   standardLayout{mk(model.TemplateStandard, "standard")},
		technology: technologyLayout{mk(model.TemplateTechnology, "technology")},
		business:   businessLayout{mk(model.TemplateBusiness, "business")},
		creative:   creativeLayout{mk(model.TemplateCreative, "creative")},
	}, nil
}

// Layout resolves kind. Anything outside the known set gets the standard layout.
func (r *Renderer) Layout(kind model.TemplateKind) Layout {
	switch model.ParseTemplateKind(string(kind)) {
	case model.TemplateTechnology:
		return r.technology
	case model.TemplateBusiness:
		return r.business
	case model.TemplateCreative:
		return r.creative
	case model.TemplateStandard:
		return r.standard
	}
	return r.standard
}

// Render draws resume with the layout named by its Template field.
func (r *Renderer) Render(resume model.ResumeData) (Document, error) {
	return r.Layout(resume.Template).Render(resume)
}
