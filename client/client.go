package client

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PredictPath is the recognition endpoint on the backend
const PredictPath = "/predict"

// Client is a thin HTTP client for the recognition backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new recognition client.
// A zero timeout means requests wait for the backend indefinitely.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8001"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// PredictURL returns the full URL uploads are posted to
func (c *Client) PredictURL() string {
	return c.baseURL + PredictPath
}
