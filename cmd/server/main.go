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

	"github.com/gin-gonic/gin"
	"github.com/kartikbazzad/cardbase/internal/dataset"
	"github.com/kartikbazzad/cardbase/internal/handlers"
	"github.com/kartikbazzad/cardbase/internal/health"
	"github.com/kartikbazzad/cardbase/internal/metrics"
	"github.com/kartikbazzad/cardbase/internal/middleware"
	"github.com/kartikbazzad/cardbase/internal/query"
	"github.com/kartikbazzad/cardbase/pkg/config"
	"github.com/kartikbazzad/cardbase/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds server configuration, loadable from CARDBASE_* env vars.
type Config struct {
	Port string `mapstructure:"port"`
	Data struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"data"`
	CORS struct {
		Origin string `mapstructure:"origin"`
	} `mapstructure:"cors"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	Rate struct {
		Perminute int `mapstructure:"perminute"`
		Burst     int `mapstructure:"burst"`
	} `mapstructure:"rate"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Port = "8000"
	cfg.Data.Path = "data/cards.json"
	cfg.CORS.Origin = "*"
	cfg.Log.Level = "INFO"
	cfg.Log.Format = "json"
	cfg.Rate.Perminute = 600
	cfg.Rate.Burst = 60
	return cfg
}

func main() {
	cfg := defaultConfig()
	if err := config.Load("CARDBASE_", &cfg); err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags default to the env-loaded values and win when set.
	port := flag.String("port", cfg.Port, "Server port")
	dataPath := flag.String("data-path", cfg.Data.Path, "Path to the cards JSON document")
	corsOrigin := flag.String("cors-origin", cfg.CORS.Origin, "Allowed CORS origin")
	rateLimit := flag.Int("rate-limit", cfg.Rate.Perminute, "Requests per minute per client IP (0 disables)")
	logLevel := flag.String("log-level", cfg.Log.Level, "Log level (DEBUG, INFO, WARN, ERROR)")
	logFormat := flag.String("log-format", cfg.Log.Format, "Log format (json, text)")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: *logFormat})

	// The dataset is loaded exactly once, before the server accepts any
	// request. A missing or malformed document is fatal: the process must
	// not serve without a complete dataset.
	ds, err := dataset.Load(*dataPath)
	if err != nil {
		logger.Error("failed to load card dataset", "path", *dataPath, "error", err)
		os.Exit(1)
	}
	logger.Info("card dataset loaded", "path", *dataPath, "cards", ds.Len())
	metrics.DatasetCards.Set(float64(ds.Len()))

	engine := query.NewEngine(ds)
	cardHandler := handlers.NewCardHandler(engine)
	statsHandler := handlers.NewStatsHandler(engine)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORSMiddleware(*corsOrigin))
	if *rateLimit > 0 {
		router.Use(middleware.RateLimitMiddleware(*rateLimit, cfg.Rate.Burst))
	}

	handlers.RegisterRoutes(router, cardHandler, statsHandler)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/health", health.Handler(map[string]health.Checker{
		"dataset": engine.Ready,
	}))
	mux.Handle("/ready", health.NewReadiness(engine.Ready))
	mux.Handle("/", router)

	httpServer := &http.Server{
		Addr:         ":" + *port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("cardbase server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
