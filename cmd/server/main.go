package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/GuidaStefano/WhatToWatchNow/internal/api"
	"github.com/GuidaStefano/WhatToWatchNow/internal/config"
	"github.com/GuidaStefano/WhatToWatchNow/internal/service"
	"github.com/GuidaStefano/WhatToWatchNow/internal/store"
	"github.com/GuidaStefano/WhatToWatchNow/pkg/auth"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment")
	}
	cfg := config.Load(logger)
	validate := validator.New()

	tokenManager, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenDuration)
	if err != nil {
		logger.Error("Failed to create token manager", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close PostgreSQL connection", slog.String("error", err.Error()))
		}
	}()
	logger.Info("PostgreSQL connection established")

	movieStore, err := store.NewPostgresMovieStore(db, logger)
	if err != nil {
		logger.Error("Failed to initialize movie store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	userStore, err := store.NewPostgresUserStore(db, logger)
	if err != nil {
		logger.Error("Failed to initialize user store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	reviewStore, err := store.NewPostgresReviewStore(db, logger)
	if err != nil {
		logger.Error("Failed to initialize review store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	movieService := service.NewMovieService(movieStore, logger)
	userService := service.NewUserService(userStore, logger)
	reviewService := service.NewReviewService(reviewStore, userStore, logger)

	handler := api.NewHTTPHandler(movieService, userService, reviewService, logger, validate, tokenManager)
	router := api.NewHTTPRouter(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", slog.String("port", cfg.Port), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server ListenAndServe() failed", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
}
