package usecase

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// Documents renders resumes to HTML and, when a PDF renderer is configured, to PDF.
type Documents struct {
	layouts *render.Renderer
	pdf     Renderer
}

func NewDocuments(layouts *render.Renderer, pdf Renderer) *Documents {
	return &Documents{layouts: layouts, pdf: pdf}
}

func (d *Documents) HTML(r model.ResumeData) (render.Document, error) {
	return d.layouts.Render(r)
}

func (d *Documents) PDF(ctx context.Context, r model.ResumeData) ([]byte, error) {
	if d.pdf == nil {
		return nil, errors.New("pdf rendering is not configured")
	}
	doc, err := d.layouts.Render(r)
	if err != nil {
		return nil, err
	}
	b, err := d.pdf.RenderHTMLToPDF(ctx, doc.HTML)
	if err != nil {
		return nil, fmt.Errorf("print %s resume: %w", doc.Kind, err)
	}
	return b, nil
}
