package openrouter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/pkg/ai/llm"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "google/gemini-2.5-flash"
)

// Generator talks to the OpenRouter chat completions API.
type Generator struct {
	http  *resty.Client
	model string
}

func NewGenerator(apiKey, model, baseURL string) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openrouter api key is required")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)
	return &Generator{http: client, model: model}, nil
}

func (g *Generator) Generate(ctx context.Context, req llm.Request) (string, error) {
	body := map[string]interface{}{
		"model": g.model,
		"messages": []map[string]string{
			{"role": "user", "content": req.Prompt},
		},
	}
	if req.Schema != nil {
		body["response_format"] = map[string]interface{}{
			"type": "json_schema",
			"json_schema": map[string]interface{}{
				"name":   "response",
				"schema": req.Schema.Map(),
			},
		}
	}

	resp, err := g.http.R().SetContext(ctx).SetBody(body).Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		return "", fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode(), msg)
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("openrouter returned no content")
	}
	return text, nil
}
