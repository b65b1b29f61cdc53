package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Layout extraction
	Pdf2txtPath       string
	ConversionTimeout time.Duration
	NativeFallback    bool

	// Geometry profile
	ProfileName string
	ProfileFile string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("LEGISCONV_API_KEY"),

		WorkerCount:  envInt("WORKER_COUNT", 2),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		Pdf2txtPath:       envOr("PDF2TXT_PATH", "pdf2txt.py"),
		ConversionTimeout: envDuration("CONVERSION_TIMEOUT", 0),
		NativeFallback:    envBool("PDF_NATIVE_FALLBACK", true),

		ProfileName: envOr("LAYOUT_PROFILE", DefaultProfile),
		ProfileFile: os.Getenv("LAYOUT_PROFILE_FILE"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.ConversionTimeout < 0 {
		cfg.ConversionTimeout = 0
	}

	return cfg
}

// Validate checks settings needed by the HTTP service.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("LEGISCONV_API_KEY is required")
	}
	if _, err := c.Profile(); err != nil {
		return err
	}
	return nil
}

// Profile resolves the configured geometry profile, reading ProfileFile
// over the named built-in when it is set.
func (c Config) Profile() (Profile, error) {
	if c.ProfileFile != "" {
		return LoadProfile(c.ProfileFile, c.ProfileName)
	}
	return BuiltinProfile(c.ProfileName)
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

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
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
