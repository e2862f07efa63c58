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

	"codetrack/internal/config"
	"codetrack/internal/handlers"
	"codetrack/internal/middleware"
	"codetrack/internal/repository"
	"codetrack/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定読み込みまでの一時ロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
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
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
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

	// Database (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
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

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 変更通知 (Redis pub/sub)。無効時はno-opに縮退。
	var notifier repository.ProgressNotifier
	if config.Cfg.Redis.Enabled {
		notifier, err = repository.NewRedisNotifier(&config.Cfg.Redis)
		if err != nil {
			slog.Warn("Redis notifier unavailable, falling back to no-op", slog.Any("error", err))
			notifier = repository.NewNoopNotifier()
		}
	} else {
		notifier = repository.NewNoopNotifier()
	}

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()
	streakRepo := repository.NewGormStreakRepository()
	attemptRepo := repository.NewGormAttemptRepository()
	catalogRepo := repository.NewGormCatalogRepository()

	mailer := service.NewMailer(&config.Cfg)

	authService := service.NewAuthService(db, userRepo, tokenRepo, mailer, &config.Cfg)
	streakService := service.NewStreakService(db, streakRepo, notifier, &config.Cfg)
	analyticsService := service.NewAnalyticsService(db, attemptRepo, catalogRepo, streakRepo)
	recommendationService := service.NewRecommendationService(db, attemptRepo, catalogRepo, analyticsService, &config.Cfg)
	attemptService := service.NewAttemptService(db, attemptRepo, catalogRepo, streakService, notifier)
	catalogService := service.NewCatalogService(db, catalogRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	attemptHandler := handlers.NewAttemptHandler(attemptService, logger)
	progressHandler := handlers.NewProgressHandler(streakService, analyticsService, logger)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	eventsHandler := handlers.NewEventsHandler(notifier, logger)

	// ストリークリマインダージョブ
	reminder := service.NewReminderScheduler(db, streakRepo, userRepo, mailer, &config.Cfg, logger)
	reminder.Start()
	defer reminder.Stop()

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.PostRegister)
			r.Get("/verify", authHandler.GetVerify)
			r.Post("/login", authHandler.PostLogin)
		})

		// カタログは参照専用の公開API
		r.Get("/topics", catalogHandler.GetTopics)
		r.Route("/problems", func(r chi.Router) {
			r.Get("/", catalogHandler.GetProblems)
			r.Get("/{problemID}", catalogHandler.GetProblem)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				// 開発用: X-User-ID ヘッダでユーザーを指定する
				slog.Warn("Authentication disabled, using dev user context middleware")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Get("/me", authHandler.GetMe)

			r.Route("/attempts", func(r chi.Router) {
				r.Post("/", attemptHandler.PostAttempt)
				r.Get("/", attemptHandler.GetAttempts)
			})

			r.Route("/progress", func(r chi.Router) {
				r.Post("/activity", progressHandler.PostActivity)
				r.Get("/streak", progressHandler.GetStreak)
				r.Put("/goal", progressHandler.PutGoal)
				r.Get("/topics", progressHandler.GetTopicBreakdown)
				r.Get("/calendar", progressHandler.GetCalendar)
				r.Get("/events", eventsHandler.GetEvents)
			})

			r.Get("/recommendations", recommendationHandler.GetRecommendations)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
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
