package ai

import (
	"context"
	"testing"

	"resume-builder/pkg/ai/chat"
	"resume-builder/pkg/ai/llm"
)

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	g, err := NewGenerator(ctx, ProviderConfig{Provider: "none"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(llm.Unavailable); !ok {
		t.Errorf("none provider = %T", g)
	}

	g, err = NewGenerator(ctx, ProviderConfig{Provider: "chat", BaseURL: "http://localhost:1"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(*chat.Generator); !ok {
		t.Errorf("chat provider = %T", g)
	}

	if _, err := NewGenerator(ctx, ProviderConfig{Provider: "gemini"}); err == nil {
		t.Error("gemini without key should fail")
	}
	if _, err := NewGenerator(ctx, ProviderConfig{Provider: "mystery"}); err == nil {
		t.Error("unknown provider should fail")
	}
}
