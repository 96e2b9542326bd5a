package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/model"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("resumectl %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

// useStorage points every command at a fresh file store. Each command opens
// its own runtime, so the store has to outlive a single process-level run.
func useStorage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("RESUME_CONFIG", "")
	t.Setenv("RESUME_STORAGE_DRIVER", "file")
	t.Setenv("RESUME_STORAGE_DIR", filepath.Join(dir, "store"))
	t.Setenv("RESUME_AI_PROVIDER", "none")
	return dir
}

const importFixture = `[
  {"id":"a","template":"Technology","fullName":"Ada Lovelace","email":"ada@example.com","experiences":[{"id":"e1","company":"Analytical Engines","position":"Engineer","description":"wrote the first program"}],"education":[],"submittedAt":"2024-03-09T14:30:00Z"},
  {"id":"b","fullName":"Grace Hopper","email":"grace@example.com","experiences":[],"education":[]}
]`

func TestImportExportRoundTrip(t *testing.T) {
	dir := useStorage(t)
	in := filepath.Join(dir, "import.json")
	if err := os.WriteFile(in, []byte(importFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	if out := execute(t, "import", in); !strings.Contains(out, "restored 2 submissions") {
		t.Fatalf("unexpected import output: %q", out)
	}

	exported := filepath.Join(dir, "export.json")
	if out := execute(t, "export", "--out", exported); !strings.Contains(out, "wrote 2 submissions") {
		t.Fatalf("unexpected export output: %q", out)
	}
	raw, err := os.ReadFile(exported)
	if err != nil {
		t.Fatal(err)
	}
	list, err := model.ValidateSubmissions(raw)
	if err != nil {
		t.Fatalf("export does not re-import: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("unexpected export order or content: %+v", list)
	}
	if list[0].Template != model.TemplateTechnology || list[0].Experiences[0].Description != "wrote the first program" {
		t.Fatalf("record a changed in the round trip: %+v", list[0])
	}

	execute(t, "delete", "a", "--yes")
	execute(t, "export", "--out", exported)
	raw, err = os.ReadFile(exported)
	if err != nil {
		t.Fatal(err)
	}
	list, err = model.ValidateSubmissions(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != "b" {
		t.Fatalf("delete left %+v", list)
	}
}

func TestImportRejectsInvalidFile(t *testing.T) {
	dir := useStorage(t)
	in := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(in, []byte(`[{"fullName":"no id"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"import", in})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestRenderHTML(t *testing.T) {
	dir := useStorage(t)
	in := filepath.Join(dir, "draft.json")
	draft := `{"id":"r1","fullName":"Jane Doe","experiences":[{"id":"e1","company":"Acme","position":"Engineer","description":"led a migration\nimproved uptime"}]}`
	if err := os.WriteFile(in, []byte(draft), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "resume.html")
	execute(t, "render", in, "--template", "business", "--out", out)

	html, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Jane Doe", "Acme", "led a migration", "improved uptime"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("rendered html lacks %q", want)
		}
	}
}
