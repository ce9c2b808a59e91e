package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Fixture is a canned /predict reply chosen by matching the uploaded filename
type Fixture struct {
	// Match is a case-insensitive substring of the uploaded filename
	Match   string          `json:"match"`
	Status  int             `json:"status,omitempty"`
	DelayMS int             `json:"delay_ms,omitempty"`
	Body    json.RawMessage `json:"body"`
}

// Fixtures is an ordered rule list; the first match wins
type Fixtures struct {
	Rules   []Fixture `json:"rules"`
	Default Fixture   `json:"default"`
}

// Delay returns how long the stub waits before answering
func (f Fixture) Delay() time.Duration {
	return time.Duration(f.DelayMS) * time.Millisecond
}

// StatusCode returns the reply status, defaulting to 200
func (f Fixture) StatusCode() int {
	if f.Status == 0 {
		return http.StatusOK
	}
	return f.Status
}

// Pick returns the fixture for an uploaded filename
func (fx *Fixtures) Pick(filename string) Fixture {
	name := strings.ToLower(filename)
	for _, rule := range fx.Rules {
		if rule.Match != "" && strings.Contains(name, strings.ToLower(rule.Match)) {
			return rule
		}
	}
	return fx.Default
}

// DefaultFixtures mirrors the reply shapes of the real recognition service:
// a recognized actor with credits, a face below the confidence threshold,
// and a failure reported through the error field.
func DefaultFixtures() *Fixtures {
	return &Fixtures{
		Rules: []Fixture{
			{
				Match: "error",
				Body:  json.RawMessage(`{"actor": "Unknown", "movies": [], "confidence": 0.0, "error": "No face detected"}`),
			},
			{
				Match: "unknown",
				Body:  json.RawMessage(`{"actor": "Unknown", "movies": [], "confidence": 41.37}`),
			},
			{
				Match:   "slow",
				DelayMS: 3000,
				Body:    json.RawMessage(`{"actor": "Meryl Streep", "confidence": 88.1, "movies": [{"title": "The Devil Wears Prada", "media_type": "movie", "poster_path": "/8912AsVuS7Sj915apArUFbv6F9L.jpg", "overview": "A smart but sensible new graduate lands a job as an assistant to a demanding fashion magazine editor."}]}`),
			},
			{
				Match: "garbage",
				Body:  json.RawMessage(`"<html>upstream error</html>"`),
			},
		},
		Default: Fixture{
			Body: json.RawMessage(`{
				"actor": "Tom Hanks",
				"confidence": 92.5,
				"movies": [
					{"title": "Forrest Gump", "media_type": "movie", "poster_path": "/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg", "overview": "A man with a low IQ has accomplished great things in his life and been present during significant historic events."},
					{"title": "Cast Away", "media_type": "movie", "poster_path": "/7lLJgKnAicAcR5UEuo8xhSMj18w.jpg", "overview": ""},
					{"title": "Band of Brothers", "media_type": "tv"}
				]
			}`),
		},
	}
}

// LoadFixtures reads a fixture file. An empty path yields the defaults.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return DefaultFixtures(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	var fx Fixtures
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if len(fx.Default.Body) == 0 {
		fx.Default = DefaultFixtures().Default
	}
	return &fx, nil
}
