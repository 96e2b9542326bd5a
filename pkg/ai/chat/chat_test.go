package chat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/pkg/ai/llm"
)

func TestGenerate(t *testing.T) {
	var body struct {
		Agent string `json:"agent"`
		Input string `json:"input"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat" {
			t.Errorf("path = %s", r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &body)
		_, _ = w.Write([]byte(`{"agent":"auto","output":"• Shipped it"}`))
	}))
	defer srv.Close()

	out, err := NewGenerator(srv.URL).Generate(context.Background(), llm.Request{
		Prompt: "rewrite",
		Schema: &llm.Schema{Type: llm.TypeObject},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "• Shipped it" {
		t.Errorf("out = %q", out)
	}
	if body.Agent != "auto" || !strings.HasPrefix(body.Input, "rewrite") || !strings.Contains(body.Input, "JSON-SCHEMA") {
		t.Errorf("unexpected request body: %+v", body)
	}
}

func TestGenerateNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewGenerator(srv.URL).Generate(context.Background(), llm.Request{Prompt: "x"}); err == nil {
		t.Fatal("expected error")
	}
}
