// Package llm holds the provider-neutral contract between the AI client and
// the text generation backends.
package llm

import (
	"context"
	"errors"
)

// Generator sends one prompt to a model and returns its raw text answer.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is a single-shot generation request. When Schema is set the
// backend asks the model for a JSON object constrained to it.
type Request struct {
	Prompt string
	Schema *Schema
}

// Schema is the subset of JSON Schema the backends can express.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// Schema types.
const (
	TypeObject = "object"
	TypeString = "string"
	TypeNumber = "number"
	TypeArray  = "array"
)

// Map renders the schema as a JSON Schema document.
func (s *Schema) Map() map[string]interface{} {
	if s == nil {
		return nil
	}
	m := map[string]interface{}{"type": s.Type}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for k, v := range s.Properties {
			props[k] = v.Map()
		}
		m["properties"] = props
	}
	if s.Items != nil {
		m["items"] = s.Items.Map()
	}
	if len(s.Required) > 0 {
		m["required"] = append([]string(nil), s.Required...)
	}
	return m
}

// ErrUnavailable is returned by Unavailable.
var ErrUnavailable = errors.New("text generation is not configured")

// Unavailable is the backend used when no provider is configured. Every call
// fails, so callers always take their fallback path.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, Request) (string, error) {
	return "", ErrUnavailable
}
