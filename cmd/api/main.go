package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stock-sentiment-api/internal/analysis"
	"stock-sentiment-api/internal/logger"
	"stock-sentiment-api/internal/sentiment"
	"stock-sentiment-api/internal/server"
	"stock-sentiment-api/internal/store"
	"stock-sentiment-api/internal/upstream"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := store.LoadConfig(configPath)
	must(err)

	must(logger.Init(logger.FromEnv()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The scorer is built once and shared across all requests; the
	// classifier strategy is expensive to warm up remotely and both
	// strategies are immutable after construction.
	scorer, err := sentiment.New(cfg)
	must(err)
	logger.Info(ctx, "Scorer ready", "strategy", cfg.Scorer.Strategy, "scale", string(scorer.Scale()))

	source := upstream.NewCachingSource(
		upstream.NewGateway(cfg),
		time.Duration(cfg.Upstream.CacheTTLMinutes)*time.Minute,
	)
	engine := analysis.NewEngine(cfg, scorer)
	svc := analysis.NewService(cfg, engine, source)

	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: server.New(cfg, svc).Router(),
	}

	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	logger.Info(ctx, "Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithErr(ctx, "HTTP shutdown failed", err)
	}
	_ = logger.Shutdown(shutdownCtx)
}
