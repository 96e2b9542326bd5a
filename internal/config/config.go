// Package config defines service configuration and its loader.
package config

import "time"

// Config contains process configuration. Keys are flat; env vars use the
// RESUME_ prefix, e.g. RESUME_STORAGE_DRIVER.
type Config struct {
	LogLevel string `koanf:"log_level"`
	LogJSON  bool   `koanf:"log_json"`

	// Addr configures the HTTP listen address, e.g. ":3000".
	Addr string `koanf:"addr"`

	// AutosaveDelayMS is the quiet period before a draft edit is written.
	AutosaveDelayMS int `koanf:"autosave_delay_ms"`

	// StorageDriver selects memory, file or postgres.
	StorageDriver     string `koanf:"storage_driver"`
	StorageDir        string `koanf:"storage_dir"`
	StorageQuotaBytes int    `koanf:"storage_quota_bytes"`
	DatabaseURL       string `koanf:"database_url"`

	// AIProvider selects gemini, openrouter, chat or none.
	AIProvider  string `koanf:"ai_provider"`
	AIModel     string `koanf:"ai_model"`
	AIAPIKey    string `koanf:"ai_api_key"`
	AIBaseURL   string `koanf:"ai_base_url"`
	AILanguage  string `koanf:"ai_language"`
	AIRateLimit int    `koanf:"ai_rate_limit"`

	ChromePath  string `koanf:"chrome_path"`
	PDFTimeoutS int    `koanf:"pdf_timeout_s"`

	ExportBucket    string `koanf:"export_bucket"`
	ExportEndpoint  string `koanf:"export_endpoint"`
	ExportRegion    string `koanf:"export_region"`
	ExportAccessKey string `koanf:"export_access_key"`
	ExportSecretKey string `koanf:"export_secret_key"`

	AMQPURL      string `koanf:"amqp_url"`
	AMQPExchange string `koanf:"amqp_exchange"`
}

// New returns a Config holding defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":3000",
		AutosaveDelayMS:   500,
		StorageDriver:     "file",
		StorageDir:        "data",
		StorageQuotaBytes: 5 << 20,
		AIProvider:        "none",
		AILanguage:        "English",
		AIRateLimit:       10,
		PDFTimeoutS:       60,
		ExportRegion:      "auto",
		AMQPExchange:      "resume_events",
	}
}

func (c *Config) AutosaveDelay() time.Duration {
	return time.Duration(c.AutosaveDelayMS) * time.Millisecond
}

func (c *Config) PDFTimeout() time.Duration {
	return time.Duration(c.PDFTimeoutS) * time.Second
}
