package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Batch mode directories
	InputDir  string
	OutputDir string

	// Indexstore connection (optional; outlines are published when set)
	IndexstoreURL    string
	IndexstoreAPIKey string

	// Auth
	OutlinerAPIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Persona ranking
	TopSections    int
	TopSubsections int
	MMRLambda      float64

	// Job state
	JobTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		InputDir:  envOr("OUTLINER_INPUT_DIR", "/app/input"),
		OutputDir: envOr("OUTLINER_OUTPUT_DIR", "/app/output"),

		IndexstoreURL:    os.Getenv("INDEXSTORE_URL"),
		IndexstoreAPIKey: os.Getenv("INDEXSTORE_API_KEY"),

		OutlinerAPIKey: os.Getenv("OUTLINER_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		TopSections:    envInt("TOP_SECTIONS", 5),
		TopSubsections: envInt("TOP_SUBSECTIONS", 3),
		MMRLambda:      envFloat("MMR_LAMBDA", 0.7),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.TopSections <= 0 {
		cfg.TopSections = 5
	}
	if cfg.TopSubsections <= 0 {
		cfg.TopSubsections = 3
	}
	if cfg.MMRLambda <= 0 || cfg.MMRLambda > 1 {
		cfg.MMRLambda = 0.7
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

// Validate checks requirements for serve mode. Batch mode runs without
// any of these set.
func (c Config) Validate() error {
	if c.OutlinerAPIKey == "" {
		return fmt.Errorf("OUTLINER_API_KEY is required")
	}
	if c.IndexstoreURL != "" && c.IndexstoreAPIKey == "" {
		return fmt.Errorf("INDEXSTORE_API_KEY is required when INDEXSTORE_URL is set")
	}
	return nil
}

// IndexstoreEnabled reports whether outline publication is configured.
func (c Config) IndexstoreEnabled() bool {
	return c.IndexstoreURL != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
