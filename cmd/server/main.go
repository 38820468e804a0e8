package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"benkhawiya-backend/internal/catalog"
	"benkhawiya-backend/internal/config"
	"benkhawiya-backend/internal/database"
	"benkhawiya-backend/internal/handlers"
	"benkhawiya-backend/internal/middleware"
	"benkhawiya-backend/internal/repository"
	"benkhawiya-backend/internal/router"
	"benkhawiya-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Benkhawiya Healing Platform API...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Validate Practice Catalog ────
	cat := catalog.New()
	if err := cat.Validate(); err != nil {
		log.Fatalf("✗ Catalog validation failed: %v", err)
	}
	log.Println("✓ Practice catalog loaded")

	// ──── Step 3: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 4: Initialize Redis ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	// ──── Step 5: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	accountRepo := repository.NewAccountRepo(pool)
	completionRepo := repository.NewCompletionRepo(pool)
	metricRepo := repository.NewProgressMetricRepo(pool)

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.SecretKey, accountRepo)
	authService := services.NewAuthService(accountRepo, jwtAuth)
	practiceService := services.NewPracticeService(cat, completionRepo, metricRepo)

	// ──── Initialize Handlers ────
	healthHandler := handlers.NewHealthHandler(pool, cfg.Env)
	authHandler := handlers.NewAuthHandler(authService)
	practiceHandler := handlers.NewPracticeHandler(cat, practiceService)
	userHandler := handlers.NewUserHandler(authService, practiceService)

	// ──── Step 6: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		redisClient,
		healthHandler,
		authHandler,
		practiceHandler,
		userHandler,
		cfg.CORSOrigins,
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

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Benkhawiya backend ready on http://localhost:%s (%s)", cfg.Port, cfg.Env)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
