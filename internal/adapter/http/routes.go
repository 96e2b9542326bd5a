package http

import (
	"errors"
	"time"

	"resume-builder/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options tunes the app built by NewApp.
type Options struct {
	AIRateLimit int
	Metrics     *metrics.Manager
}

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(h *Handler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "resume-builder",
		Immutable: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(healthcheck.New())
	if opts.Metrics != nil {
		app.Use(Metrics(opts.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics.Handler()))
	}
	h.RegisterRoutes(app, opts.AIRateLimit)
	return app
}

func (h *Handler) RegisterRoutes(app *fiber.App, aiRateLimit int) {
	draft := app.Group("/api/draft")
	draft.Get("/", h.GetDraft)
	draft.Patch("/", h.PatchDraft)
	draft.Get("/status", h.GetStatus)
	draft.Get("/preview", h.Preview)
	draft.Get("/pdf", h.PDF)
	draft.Post("/new", h.NewResume)
	draft.Post("/submit", h.Submit)
	draft.Post("/job-description", h.UploadJobDescription)

	ai := draft.Group("/ai", RateLimiter(aiRateLimit, time.Minute))
	ai.Post("/summary", h.EnhanceSummary)
	ai.Post("/experiences/:id", h.EnhanceExperience)
	ai.Post("/compatibility", h.AnalyzeCompatibility)

	draft.Post("/:section", h.AddRecord)
	draft.Put("/:section/:id", h.UpdateRecord)
	draft.Delete("/:section/:id", h.RemoveRecord)

	subs := app.Group("/api/submissions")
	subs.Get("/", h.ListSubmissions)
	subs.Get("/export", h.ExportSubmissions)
	subs.Post("/import", h.ImportSubmissions)
	subs.Post("/:id/load", h.LoadSubmission)
	subs.Delete("/:id", h.DeleteSubmission)
}
