package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the client and the stub server.
// Values come from the environment (optionally a .env file) and may be
// overridden by command-line flags.
type Config struct {
	BackendURL         string
	PredictTimeout     time.Duration
	SupersessionPolicy string

	PosterBaseURL     string
	PosterSize        string
	PosterPlaceholder string

	PreviewWidth int
	LogFile      string

	StubAddr     string
	StubFixtures string
}

// Default returns a Config populated with standard defaults.
func Default() Config {
	return Config{
		BackendURL:         DefaultBackendURL,
		PredictTimeout:     DefaultPredictTimeout,
		SupersessionPolicy: DefaultSupersessionPolicy,
		PosterBaseURL:      DefaultPosterBaseURL,
		PosterSize:         DefaultPosterSize,
		PosterPlaceholder:  DefaultPosterPlaceholder,
		PreviewWidth:       DefaultPreviewWidth,
		LogFile:            DefaultLogFile,
		StubAddr:           DefaultStubAddr,
	}
}

// Load reads .env (if present) and the process environment on top of the defaults.
func Load() (Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv applies environment overrides to the defaults.
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.BackendURL = GetEnvOrDefault("BACKEND_URL", cfg.BackendURL)
	cfg.SupersessionPolicy = GetEnvOrDefault("SUPERSESSION_POLICY", cfg.SupersessionPolicy)
	cfg.PosterBaseURL = GetEnvOrDefault("POSTER_BASE_URL", cfg.PosterBaseURL)
	cfg.PosterSize = GetEnvOrDefault("POSTER_SIZE", cfg.PosterSize)
	cfg.PosterPlaceholder = GetEnvOrDefault("POSTER_PLACEHOLDER", cfg.PosterPlaceholder)
	cfg.StubAddr = GetEnvOrDefault("STUB_ADDR", cfg.StubAddr)
	cfg.StubFixtures = GetEnvOrDefault("STUB_FIXTURES", cfg.StubFixtures)

	// LOG_FILE may be set to an empty value to turn logging off
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}

	if v := os.Getenv("PREDICT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return cfg, fmt.Errorf("invalid PREDICT_TIMEOUT %q: expected a non-negative duration", v)
		}
		cfg.PredictTimeout = d
	}

	if v := os.Getenv("PREVIEW_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid PREVIEW_WIDTH %q: expected a non-negative integer", v)
		}
		cfg.PreviewWidth = n
	}

	return cfg, nil
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}
