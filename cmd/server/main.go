package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/app"
	"resume-builder/internal/config"
	"resume-builder/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(logger.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	rt, err := app.Build(ctx, cfg, lg)
	if err != nil {
		lg.Error(ctx, "startup failed", logger.Error(err))
		os.Exit(1)
	}
	defer rt.Close()

	h := httpadapter.NewHandler(rt.Editor, rt.Documents, lg)
	srv := httpadapter.NewApp(h, httpadapter.Options{AIRateLimit: cfg.AIRateLimit, Metrics: rt.Metrics})

	go func() {
		lg.Info(ctx, "listening", logger.String("addr", cfg.Addr), logger.String("storage", cfg.StorageDriver), logger.String("ai", cfg.AIProvider))
		if err := srv.Listen(cfg.Addr); err != nil {
			lg.Error(ctx, "server stopped", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	lg.Info(context.Background(), "shutting down")
	if err := srv.ShutdownWithTimeout(10 * time.Second); err != nil {
		lg.Warn(context.Background(), "shutdown", logger.Error(err))
	}
}
