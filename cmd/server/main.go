package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lumina-storefront/internal/config"
	"lumina-storefront/internal/database"
	"lumina-storefront/internal/handlers"
	"lumina-storefront/internal/logger"
	"lumina-storefront/internal/middleware"
	"lumina-storefront/internal/repository"
	"lumina-storefront/internal/router"
	"lumina-storefront/internal/services"
	"lumina-storefront/internal/websocket"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	lg, err := logger.New(logger.Options{Service: "lumina-storefront", Env: cfg.Env, Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	lg.Info("🚀 Starting Lumina Storefront...")
	lg.Info("✓ Environment variables loaded", zap.String("env", cfg.Env))

	// ──── Step 2: Initialize Catalog ────
	productRepo := repository.NewProductRepo()
	lg.Info("✓ Catalog loaded", zap.Int("products", len(productRepo.List())))

	// ──── Step 3: Initialize Gemini Client ────
	geminiService := services.NewGeminiService(cfg.GeminiConcurrentReqs)
	advisor := services.NewShoppingAdvisor(geminiService, productRepo, cfg.GeminiModel, cfg.GeminiTemperature, lg)
	lg.Info("✓ Gemini advisor initialized", zap.String("model", cfg.GeminiModel))

	// ──── Step 4: Initialize Redis Client (optional) ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		lg.Fatal("✗ Redis connection failed", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
		lg.Info("✓ Redis connected")
	} else {
		lg.Info("✓ Redis not configured, session events delivered in-process")
	}

	// ──── Step 5: Initialize Session Store ────
	sessionRepo := repository.NewSessionRepo(cfg.SessionTTL)
	sessionRepo.StartCleanup(time.Minute)
	lg.Info("✓ Session store started", zap.Duration("ttl", cfg.SessionTTL))

	// ──── Step 6: Start WebSocket Hub ────
	sessionAuth := middleware.NewSessionAuth(cfg.SessionSecret)
	wsHub := websocket.NewHub(redisClient, sessionAuth, sessionRepo, lg)
	lg.Info("✓ WebSocket hub started")

	// ──── Initialize Handlers ────
	catalogHandler := handlers.NewCatalogHandler(productRepo)
	sessionHandler := handlers.NewSessionHandler(sessionRepo, productRepo, advisor, wsHub, sessionAuth, lg)
	cartHandler := handlers.NewCartHandler(sessionRepo)
	quickViewHandler := handlers.NewQuickViewHandler(sessionRepo)
	assistantHandler := handlers.NewAssistantHandler(sessionRepo)

	assistantLimiter := middleware.NewRateLimiter(cfg.AssistantRequestsPerMin, time.Minute)

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		sessionAuth,
		assistantLimiter,
		catalogHandler,
		sessionHandler,
		cartHandler,
		quickViewHandler,
		assistantHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		lg.Info("Shutting down...")
		sessionRepo.Stop()
		assistantLimiter.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	lg.Info(fmt.Sprintf("✓ Lumina Storefront ready on http://localhost:%s", cfg.Port))
	lg.Info(fmt.Sprintf("  API: http://localhost:%s/api/v1", cfg.Port))
	lg.Info(fmt.Sprintf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		lg.Fatal("Server error", zap.Error(err))
	}
}
