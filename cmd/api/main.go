package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/01moynul/studybuddy-golang/internal/ai"
	"github.com/01moynul/studybuddy-golang/internal/config"
	"github.com/01moynul/studybuddy-golang/internal/dashboard"
	"github.com/01moynul/studybuddy-golang/internal/database"
	"github.com/01moynul/studybuddy-golang/internal/handlers"
	"github.com/01moynul/studybuddy-golang/internal/logger"
	"github.com/01moynul/studybuddy-golang/internal/repository"
	"github.com/01moynul/studybuddy-golang/internal/routes"
	"github.com/01moynul/studybuddy-golang/internal/scheduler"
	"github.com/01moynul/studybuddy-golang/internal/study"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Configuration & Logging ---
	cfg, err := config.Init()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. --- Database Connection (Read/Write) ---
	db, err := database.OpenDB(ctx, cfg.DB, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	store := repository.NewStore(db)

	// 3. --- AI Service Initialization ---
	generator, err := ai.NewFlashcardGenerator(ctx, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.MaxCards, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize AI service", zap.Error(err))
	}
	defer generator.Close()

	// --- Application Setup ---
	app := &handlers.Handlers{
		Dashboard:      dashboard.NewService(store, zlog.Named("dashboard")),
		Study:          study.NewService(store, study.NewStoreTransactor(store), generator, zlog.Named("study")),
		Accounts:       store,
		Log:            zlog,
		UploadDir:      cfg.HTTP.UploadDir,
		BaseURL:        cfg.HTTP.BaseURL,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
	}

	// 4. --- Background Workers (Cron) ---
	jobs := scheduler.New(store, zlog.Named("scheduler"))
	if err := jobs.Start(cfg.Credits.ResetCron); err != nil {
		zlog.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer jobs.Stop()

	// --- Router Setup ---
	router := routes.SetupRouter(app, []byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, zlog)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept", "Origin", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
	}).Handler(router)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      corsHandler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	// --- Start Server ---
	go func() {
		zlog.Info("starting StudyBuddy API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
