// Package app wires configuration into a ready editor. Both binaries start
// from Build.
package app

import (
	"context"
	"fmt"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"
)

type Runtime struct {
	Config    *config.Config
	Log       logger.Logger
	Metrics   *metrics.Manager
	Editor    *usecase.Editor
	Documents *usecase.Documents

	closers []func()
}

// Build opens storage, picks the AI backend and restores the editor state.
func Build(ctx context.Context, cfg *config.Config, log logger.Logger) (*Runtime, error) {
	rt := &Runtime{Config: cfg, Log: log, Metrics: metrics.NewManager()}

	store, err := rt.openStore(ctx)
	if err != nil {
		rt.Close()
		return nil, err
	}
	persistence := repository.NewPersistence(store, log, rt.Metrics)

	gen, err := ai.NewGenerator(ctx, ai.ProviderConfig{
		Provider: cfg.AIProvider,
		Model:    cfg.AIModel,
		APIKey:   cfg.AIAPIKey,
		BaseURL:  cfg.AIBaseURL,
	})
	if err != nil {
		log.Warn(ctx, "ai backend unavailable, using fallbacks", logger.String("provider", cfg.AIProvider), logger.Error(err))
		gen = nil
	}
	client := ai.NewClient(gen, ai.WithLogger(log), ai.WithMetrics(rt.Metrics), ai.WithLanguage(cfg.AILanguage))

	opts := usecase.Options{
		AutosaveDelay: cfg.AutosaveDelay(),
		Logger:        log,
		Metrics:       rt.Metrics,
	}
	if cfg.AMQPURL != "" {
		n, err := infra.NewAMQPNotifier(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Warn(ctx, "submission events disabled", logger.Error(err))
		} else {
			opts.Notifier = n
			rt.closers = append(rt.closers, func() { _ = n.Close() })
		}
	}

	layouts, err := render.NewRenderer()
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.Documents = usecase.NewDocuments(layouts, infra.NewChromedpRenderer(cfg.ChromePath, cfg.PDFTimeout()))

	rt.Editor = usecase.NewEditor(ctx, persistence, client, opts)
	// Flush runs before the closers registered above.
	rt.closers = append([]func(){rt.Editor.Close}, rt.closers...)
	return rt, nil
}

func (rt *Runtime) openStore(ctx context.Context) (repository.Store, error) {
	cfg := rt.Config
	switch cfg.StorageDriver {
	case "memory":
		return repository.NewMemoryStore(cfg.StorageQuotaBytes), nil
	case "file", "":
		return repository.NewFileStore(cfg.StorageDir, cfg.StorageQuotaBytes)
	case "postgres":
		pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		rt.closers = append(rt.closers, pool.Close)
		if err := migration.RunMigrations(ctx, pool); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return repository.NewPostgresStore(pool, cfg.StorageQuotaBytes), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Close flushes a pending autosave and releases connections.
func (rt *Runtime) Close() {
	for _, c := range rt.closers {
		c()
	}
	rt.closers = nil
}
