package stubserver

import (
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"facerecog/client"
	"facerecog/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterPredictRoutes registers the recognition endpoint.
func RegisterPredictRoutes(r *gin.Engine, h *PredictHandler) {
	r.POST(client.PredictPath, h.handlePredict)
}

// RegisterHealthRoutes registers health check endpoints.
func RegisterHealthRoutes(r *gin.Engine, h *PredictHandler) {
	r.GET("/api/health", h.handleHealth)
}

// PredictHandler answers uploads with canned fixtures
type PredictHandler struct {
	fixtures *Fixtures
	logger   *zap.Logger
	served   atomic.Int64
}

// emptyUploadBody is what the real service returns when decoding fails
const emptyUploadBody = `{"actor": "Unknown", "movies": [], "confidence": 0.0, "error": "empty upload"}`

// handlePredict reads the "file" part and replies with the matching fixture
func (h *PredictHandler) handlePredict(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart part \"file\" is required: " + err.Error()})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload: " + err.Error()})
		return
	}
	defer f.Close()

	n, err := io.Copy(io.Discard, f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload: " + err.Error()})
		return
	}

	served := h.served.Add(1)
	logger := h.logger.With(
		zap.String("file", fh.Filename),
		zap.Int64("bytes", n),
		zap.Int64("served", served),
	)

	if n == 0 {
		logger.Info("empty upload")
		c.Data(http.StatusOK, "application/json", []byte(emptyUploadBody))
		return
	}

	fixture := h.fixtures.Pick(fh.Filename)
	if d := fixture.Delay(); d > 0 {
		select {
		case <-time.After(d):
		case <-c.Request.Context().Done():
			logger.Info("client went away during delay")
			return
		}
	}

	logger.Info("prediction served", zap.String("match", fixture.Match), zap.Int("status", fixture.StatusCode()))
	c.Data(fixture.StatusCode(), "application/json", fixture.Body)
}

// Served returns how many uploads have been answered
func (h *PredictHandler) Served() int64 {
	return h.served.Load()
}

func (h *PredictHandler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "served": h.Served()})
}
