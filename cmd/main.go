// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_vocab_srs/internal/bridge"
	"go_5_vocab_srs/internal/config"
	"go_5_vocab_srs/internal/embedding"
	"go_5_vocab_srs/internal/graph"
	"go_5_vocab_srs/internal/handlers"
	"go_5_vocab_srs/internal/health"
	"go_5_vocab_srs/internal/learning"
	"go_5_vocab_srs/internal/middleware"
	"go_5_vocab_srs/internal/repository"
	"go_5_vocab_srs/internal/search"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	cfg, err := config.LoadConfig("../configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	cardRepo := repository.NewGormCardRepository()
	interactionRepo := repository.NewGormInteractionRepository()
	edgeRepo := repository.NewGormEdgeRepository()
	vocabRepo := repository.NewGormVocabRepository()

	provider := embedding.NewHTTPProvider(cfg.Embedding)
	embeddingSvc := embedding.NewService(cfg, provider)
	graphSvc := graph.NewService(db, cfg, edgeRepo, vocabRepo, embeddingSvc)
	searchSvc := search.NewService(db, cfg, vocabRepo, embeddingSvc)
	learningSvc := learning.NewService(db, cfg, cardRepo, interactionRepo, edgeRepo, vocabRepo, graphSvc)
	srsBridge := bridge.New(cfg, learningSvc)

	aggregator := health.NewAggregator(
		health.DatabaseChecker(db),
		health.CheckerFunc(embeddingSvc.Health),
		health.CheckerFunc(graphSvc.Health),
		health.CheckerFunc(searchSvc.Health),
		health.CheckerFunc(learningSvc.Health),
		health.CheckerFunc(srsBridge.Health),
	)

	interactionHandler := handlers.NewInteractionHandler(learningSvc, logger)
	scheduleHandler := handlers.NewScheduleHandler(learningSvc, srsBridge, logger)
	predictionHandler := handlers.NewPredictionHandler(learningSvc, logger)
	searchHandler := handlers.NewSearchHandler(searchSvc, logger)
	embedHandler := handlers.NewEmbedHandler(embeddingSvc, logger)
	healthHandler := handlers.NewHealthHandler(aggregator, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewStructuredLogger(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/interactions", func(r chi.Router) {
			r.Post("/", interactionHandler.PostInteractions)
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", scheduleHandler.GetSchedule)
			r.Post("/", scheduleHandler.PostSchedule)
			r.Put("/", scheduleHandler.PutSchedule)
		})

		r.Route("/predictions", func(r chi.Router) {
			r.Get("/", predictionHandler.GetConfusionPairs)
			r.Post("/", predictionHandler.PostPrediction)
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/", searchHandler.GetSearch)
			r.Post("/", searchHandler.PostSearch)
		})

		r.Route("/embed", func(r chi.Router) {
			r.Post("/", embedHandler.PostEmbed)
			r.Put("/", embedHandler.PutSimilarity)
		})

		r.Get("/health", healthHandler.GetHealth)
	})

	// Health Check (ロードバランサ向けの簡易版)
	r.Get("/health", healthHandler.GetHealth)

	// 5. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
