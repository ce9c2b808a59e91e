package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"BACKEND_URL", "PREDICT_TIMEOUT", "SUPERSESSION_POLICY", "PREVIEW_WIDTH", "POSTER_SIZE"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("backend url = %q", cfg.BackendURL)
	}
	if cfg.PredictTimeout != 0 {
		t.Errorf("timeout = %v, want none", cfg.PredictTimeout)
	}
	if cfg.SupersessionPolicy != DefaultSupersessionPolicy {
		t.Errorf("policy = %q", cfg.SupersessionPolicy)
	}
	if cfg.PreviewWidth != DefaultPreviewWidth {
		t.Errorf("preview width = %d", cfg.PreviewWidth)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://recognizer:9000")
	t.Setenv("PREDICT_TIMEOUT", "45s")
	t.Setenv("SUPERSESSION_POLICY", "last-response")
	t.Setenv("PREVIEW_WIDTH", "0")
	t.Setenv("LOG_FILE", "")
	t.Setenv("POSTER_SIZE", "w342")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BackendURL != "http://recognizer:9000" {
		t.Errorf("backend url = %q", cfg.BackendURL)
	}
	if cfg.PredictTimeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.PredictTimeout)
	}
	if cfg.SupersessionPolicy != "last-response" {
		t.Errorf("policy = %q", cfg.SupersessionPolicy)
	}
	if cfg.PreviewWidth != 0 {
		t.Errorf("preview width = %d", cfg.PreviewWidth)
	}
	if cfg.LogFile != "" {
		t.Errorf("log file = %q, want disabled", cfg.LogFile)
	}
	if cfg.PosterSize != "w342" {
		t.Errorf("poster size = %q", cfg.PosterSize)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"PREDICT_TIMEOUT", "soon"},
		{"PREDICT_TIMEOUT", "-5s"},
		{"PREVIEW_WIDTH", "wide"},
		{"PREVIEW_WIDTH", "-1"},
	}

	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
