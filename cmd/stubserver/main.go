package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"facerecog/client"
	"facerecog/config"
	"facerecog/logging"
	"facerecog/stubserver"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := logging.NewConsoleLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	addr := flag.String("addr", cfg.StubAddr, "Listen address")
	fixturesPath := flag.String("fixtures", cfg.StubFixtures, "JSON fixture file (empty uses built-in fixtures)")
	flag.Parse()

	fixtures, err := stubserver.LoadFixtures(*fixturesPath)
	if err != nil {
		logger.Fatal("failed to load fixtures", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              *addr,
		Handler:           stubserver.NewRouter(fixtures, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("stub recognition server listening",
			zap.String("addr", *addr),
			zap.String("predict", client.PredictPath),
			zap.Int("rules", len(fixtures.Rules)),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	logger.Info("stub recognition server stopped")
}
