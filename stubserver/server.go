package stubserver

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter constructs a Gin engine serving the recognition contract from fixtures.
func NewRouter(fixtures *Fixtures, logger *zap.Logger) *gin.Engine {
	if fixtures == nil {
		fixtures = DefaultFixtures()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	// Minimal middleware: recovery; requests are logged by the handlers
	r.Use(gin.Recovery())

	h := &PredictHandler{fixtures: fixtures, logger: logger}
	RegisterPredictRoutes(r, h)
	RegisterHealthRoutes(r, h)
	return r
}
