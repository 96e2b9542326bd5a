package openrouter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume-builder/pkg/ai/llm"
)

func TestGenerate(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("auth header = %q", r.Header.Get("Authorization"))
		}
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"score\":10}"}}]}`))
	}))
	defer srv.Close()

	g, err := NewGenerator("key", "test-model", srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	out, err := g.Generate(context.Background(), llm.Request{Prompt: "hi", Schema: &llm.Schema{Type: llm.TypeObject}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != `{"score":10}` {
		t.Errorf("out = %q", out)
	}
	if got["model"] != "test-model" {
		t.Errorf("model = %v", got["model"])
	}
	if _, ok := got["response_format"]; !ok {
		t.Error("response_format missing for schema request")
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	g, _ := NewGenerator("key", "", srv.URL)
	if _, err := g.Generate(context.Background(), llm.Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected error for 429")
	}
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGenerator("", "", ""); err == nil {
		t.Fatal("expected error")
	}
}
