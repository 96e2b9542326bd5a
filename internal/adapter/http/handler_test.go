package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	. "github.com/smartystreets/goconvey/convey"
)

type stubAI struct{}

func (stubAI) EnhanceSummary(context.Context, model.ResumeData) string { return "Generated." }
func (stubAI) EnhanceExperienceDescription(_ context.Context, exp model.Experience) string {
	return "• " + exp.Description
}
func (stubAI) AnalyzeCompatibility(context.Context, model.ResumeData, string) model.MatchResult {
	return model.MatchResult{Score: 55, Feedback: "fine", MissingKeywords: []string{}}
}

type stubPDF struct{}

func (stubPDF) RenderHTMLToPDF(context.Context, string) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func newTestApp(t *testing.T, quota int) (*fiber.App, *usecase.Editor) {
	t.Helper()
	store := repository.NewPersistence(repository.NewMemoryStore(quota), logger.Nop(), nil)
	editor := usecase.NewEditor(context.Background(), store, stubAI{}, usecase.Options{
		AutosaveDelay: time.Hour,
		Now:           func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) },
	})
	layouts, err := render.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	h := NewHandler(editor, usecase.NewDocuments(layouts, stubPDF{}), logger.Nop())
	return NewApp(h, Options{AIRateLimit: 100, Metrics: metrics.NewManager()}), editor
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func TestDraftRoutes(t *testing.T) {
	Convey("Given a running app", t, func() {
		app, editor := newTestApp(t, 1<<20)

		Convey("Field edits are applied", func() {
			resp, body := do(t, app, http.MethodPatch, "/api/draft", `[{"field":"fullName","value":"Jane Doe"},{"field":"template","value":"business"}]`)
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			var d model.ResumeData
			So(json.Unmarshal([]byte(body), &d), ShouldBeNil)
			So(d.FullName, ShouldEqual, "Jane Doe")
			So(d.Template, ShouldEqual, model.TemplateBusiness)
		})

		Convey("An unknown field is a bad request", func() {
			resp, body := do(t, app, http.MethodPatch, "/api/draft", `[{"field":"hobby","value":"x"}]`)
			So(resp.StatusCode, ShouldEqual, fiber.StatusBadRequest)
			So(body, ShouldContainSubstring, "unknown field")
		})

		Convey("Records can be added, updated and removed", func() {
			resp, body := do(t, app, http.MethodPost, "/api/draft/experiences", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusCreated)
			var added struct{ ID string }
			So(json.Unmarshal([]byte(body), &added), ShouldBeNil)

			resp, _ = do(t, app, http.MethodPut, "/api/draft/experiences/"+added.ID, `{"company":"Acme"}`)
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			So(editor.Draft().Experiences[0].Company, ShouldEqual, "Acme")

			resp, _ = do(t, app, http.MethodPut, "/api/draft/experiences/nope", `{"company":"X"}`)
			So(resp.StatusCode, ShouldEqual, fiber.StatusNotFound)

			resp, _ = do(t, app, http.MethodDelete, "/api/draft/experiences/"+added.ID, "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusNoContent)
			So(editor.Draft().Experiences, ShouldBeEmpty)
		})

		Convey("An unknown section is a bad request", func() {
			resp, _ := do(t, app, http.MethodPost, "/api/draft/hobbies", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusBadRequest)
		})

		Convey("Starting over needs confirmation", func() {
			resp, _ := do(t, app, http.MethodPost, "/api/draft/new", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusPreconditionFailed)
			resp, _ = do(t, app, http.MethodPost, "/api/draft/new?confirm=true", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusCreated)
		})

		Convey("The preview renders the selected layout", func() {
			editor.SetFullName("Jane Doe")
			resp, body := do(t, app, http.MethodGet, "/api/draft/preview", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "text/html")
			So(body, ShouldContainSubstring, "Jane Doe")
		})

		Convey("The PDF is served as an attachment", func() {
			resp, body := do(t, app, http.MethodGet, "/api/draft/pdf", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			So(resp.Header.Get("Content-Disposition"), ShouldContainSubstring, "attachment")
			So(body, ShouldStartWith, "%PDF")
		})

		Convey("A job description can be uploaded as a file", func() {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			fw, _ := mw.CreateFormFile("file", "job.txt")
			_, _ = fw.Write([]byte("  Senior Go engineer  "))
			_ = mw.Close()
			req := httptest.NewRequest(http.MethodPost, "/api/draft/job-description", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			So(editor.Draft().JobDescription, ShouldEqual, "Senior Go engineer")
		})

		Convey("An unreadable job description file is a bad request", func() {
			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			fw, _ := mw.CreateFormFile("file", "job.pdf")
			_, _ = fw.Write([]byte("not a pdf at all"))
			_ = mw.Close()
			req := httptest.NewRequest(http.MethodPost, "/api/draft/job-description", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			resp, err := app.Test(req, -1)
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, fiber.StatusBadRequest)
			So(editor.Draft().JobDescription, ShouldEqual, "")
		})

		Convey("AI routes merge their result", func() {
			editor.SetJobDescription("Go")
			resp, body := do(t, app, http.MethodPost, "/api/draft/ai/compatibility", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			So(body, ShouldContainSubstring, `"atsScore"`)

			resp, _ = do(t, app, http.MethodPost, "/api/draft/ai/experiences/missing", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusNotFound)
		})

		Convey("The status route reports the autosave state", func() {
			_, body := do(t, app, http.MethodGet, "/api/draft/status", "")
			So(body, ShouldContainSubstring, `"idle"`)
		})
	})
}

func TestSubmissionRoutes(t *testing.T) {
	Convey("Given a submitted draft", t, func() {
		app, editor := newTestApp(t, 1<<20)
		editor.SetFullName("Jane Doe")
		editor.SetEmail("jane@example.com")
		resp, _ := do(t, app, http.MethodPost, "/api/draft/submit", "")
		So(resp.StatusCode, ShouldEqual, fiber.StatusCreated)
		id := editor.Draft().ID

		Convey("It can be searched", func() {
			_, body := do(t, app, http.MethodGet, "/api/submissions?q=JANE", "")
			So(body, ShouldContainSubstring, "jane@example.com")
			_, body = do(t, app, http.MethodGet, "/api/submissions?q=bob", "")
			So(body, ShouldEqual, "[]")
		})

		Convey("The export carries a dated file name", func() {
			resp, body := do(t, app, http.MethodGet, "/api/submissions/export", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			So(resp.Header.Get("Content-Disposition"), ShouldContainSubstring, "resume_database_export_2024-03-09.json")
			So(body, ShouldContainSubstring, "\n  {")
		})

		Convey("An import is validated before it replaces the list", func() {
			resp, _ := do(t, app, http.MethodPost, "/api/submissions/import", `[{"fullName":"no id"}]`)
			So(resp.StatusCode, ShouldEqual, fiber.StatusBadRequest)
			So(editor.Submissions(), ShouldHaveLength, 1)

			resp, body := do(t, app, http.MethodPost, "/api/submissions/import", `[{"id":"a","fullName":"A","email":"a@x.io","experiences":[],"education":[]},{"id":"b","fullName":"B","email":"b@x.io","experiences":[],"education":[]}]`)
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			So(body, ShouldContainSubstring, `"count":2`)
			So(editor.Submissions(), ShouldHaveLength, 2)
		})

		Convey("Deleting needs confirmation", func() {
			resp, _ := do(t, app, http.MethodDelete, "/api/submissions/"+id, "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusPreconditionFailed)
			resp, _ = do(t, app, http.MethodDelete, "/api/submissions/"+id+"?confirm=true", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusNoContent)
			So(editor.Submissions(), ShouldBeEmpty)
		})

		Convey("Loading replaces the draft", func() {
			_, _ = editor.NewResume(context.Background())
			resp, _ := do(t, app, http.MethodPost, "/api/submissions/"+id+"/load", "")
			So(resp.StatusCode, ShouldEqual, fiber.StatusOK)
			So(editor.Draft().FullName, ShouldEqual, "Jane Doe")
		})
	})

	Convey("Given storage that cannot hold the list", t, func() {
		app, editor := newTestApp(t, 64)
		editor.SetFullName("Jane Doe with a name long enough to overflow the quota")
		resp, body := do(t, app, http.MethodPost, "/api/draft/submit", "")
		So(resp.StatusCode, ShouldEqual, fiber.StatusInsufficientStorage)
		So(body, ShouldContainSubstring, "storage is full")
		So(editor.Submissions(), ShouldBeEmpty)
	})
}

func TestMetricsRoute(t *testing.T) {
	app, _ := newTestApp(t, 1<<20)
	do(t, app, http.MethodGet, "/api/draft", "")
	resp, body := do(t, app, http.MethodGet, "/metrics", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "resume_http_requests_total") {
		t.Fatalf("missing request counter in:\n%s", body)
	}
}

func TestUpdatedRecordKeepsItsID(t *testing.T) {
	app, editor := newTestApp(t, 1<<20)

	// Without Immutable the router hands out strings backed by the
	// request buffer, so the handler must copy what it keeps.
	layouts, err := render.NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	store := repository.NewPersistence(repository.NewMemoryStore(1<<20), logger.Nop(), nil)
	bareEditor := usecase.NewEditor(context.Background(), store, stubAI{}, usecase.Options{AutosaveDelay: time.Hour})
	bare := fiber.New()
	NewHandler(bareEditor, usecase.NewDocuments(layouts, stubPDF{}), logger.Nop()).RegisterRoutes(bare, 100)

	cases := []struct {
		name   string
		app    *fiber.App
		editor *usecase.Editor
	}{
		{"configured app", app, editor},
		{"bare router", bare, bareEditor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := tc.editor.AddExperience()
			resp, _ := do(t, tc.app, http.MethodPut, "/api/draft/experiences/"+id, `{"company":"Acme"}`)
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("update status = %d", resp.StatusCode)
			}

			filler := strings.Repeat("x", len(id))
			for i := 0; i < 5; i++ {
				do(t, tc.app, http.MethodGet, "/api/submissions/export?q="+strings.Repeat("z", 64), "")
				do(t, tc.app, http.MethodPut, "/api/draft/experiences/"+filler, `{"company":"Other"}`)
			}

			if got := tc.editor.Draft().Experiences[0].ID; got != id {
				t.Fatalf("stored experience id changed: %q -> %q", id, got)
			}
			resp, _ = do(t, tc.app, http.MethodDelete, "/api/draft/experiences/"+id, "")
			if resp.StatusCode != fiber.StatusNoContent {
				t.Fatalf("remove by original id status = %d", resp.StatusCode)
			}
		})
	}
}
