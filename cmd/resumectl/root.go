package main

import (
	"context"
	"fmt"

	"resume-builder/internal/app"
	"resume-builder/internal/config"
	"resume-builder/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const appName = "resumectl"

var (
	debug   bool
	jsonLog bool

	rootCmd = &cobra.Command{
		Use:          appName,
		Short:        "resumectl renders resumes and manages stored submissions",
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() { _ = godotenv.Load() })

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")
}

func loadConfig(ctx context.Context) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	if jsonLog {
		cfg.LogJSON = true
	}
	lg, err := logger.New(logger.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}
	return cfg, lg, nil
}

// openRuntime opens the configured storage. Callers must Close it.
func openRuntime(ctx context.Context) (*app.Runtime, error) {
	cfg, lg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return app.Build(ctx, cfg, lg)
}
