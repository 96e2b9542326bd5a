// Package chat talks to the internal ai-service over its /v1/chat endpoint.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/pkg/ai/llm"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const defaultBaseURL = "http://ai-service:8000"

type Generator struct {
	http *resty.Client
}

func NewGenerator(baseURL string) *Generator {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)
	return &Generator{http: client}
}

// Generate posts {"agent":"auto","input":...}. The service has no structured
// output mode, so a schema is appended to the prompt as plain text.
func (g *Generator) Generate(ctx context.Context, req llm.Request) (string, error) {
	input := req.Prompt
	if req.Schema != nil {
		schema, _ := json.Marshal(req.Schema.Map())
		input += "\n\nReturn ONLY a single JSON object. Do NOT include any extra text, backticks, or code fences.\n\nJSON-SCHEMA:\n" + string(schema)
	}

	resp, err := g.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"agent": "auto", "input": input}).
		Post("/v1/chat")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode())
	}

	out := gjson.Get(resp.String(), "output")
	if !out.Exists() || strings.TrimSpace(out.String()) == "" {
		return "", errors.New("ai-service returned no output")
	}
	return out.String(), nil
}
