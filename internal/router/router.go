package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"benkhawiya-backend/internal/handlers"
	"benkhawiya-backend/internal/middleware"
)

// Per-IP fixed-window limits, matching the production rate policy.
const (
	registerPerMinute = 5
	loginPerMinute    = 10
	readsPerMinute    = 30
	writesPerMinute   = 20
)

func New(
	jwtAuth *middleware.JWTAuth,
	redisClient *redis.Client,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	practiceHandler *handlers.PracticeHandler,
	userHandler *handlers.UserHandler,
	corsOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigins))

	registerLimiter := middleware.NewRateLimiter(redisClient, "register", registerPerMinute, time.Minute)
	loginLimiter := middleware.NewRateLimiter(redisClient, "login", loginPerMinute, time.Minute)
	readLimiter := middleware.NewRateLimiter(redisClient, "reads", readsPerMinute, time.Minute)
	writeLimiter := middleware.NewRateLimiter(redisClient, "writes", writesPerMinute, time.Minute)

	// Public surface
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)

	r.Route("/auth", func(r chi.Router) {
		r.With(registerLimiter.Middleware).Post("/register", authHandler.Register)
		r.With(loginLimiter.Middleware).Post("/login", authHandler.Login)
	})

	// Practice routes
	r.Route("/practices", func(r chi.Router) {
		r.Use(jwtAuth.Middleware)
		r.With(readLimiter.Middleware).Get("/", practiceHandler.List)
		r.With(readLimiter.Middleware).Get("/daily", practiceHandler.Daily)
		r.With(writeLimiter.Middleware).Post("/complete", practiceHandler.Complete)
	})

	// User read models and settings
	r.Route("/user", func(r chi.Router) {
		r.Use(jwtAuth.Middleware)
		r.With(readLimiter.Middleware).Get("/profile", userHandler.Profile)
		r.With(readLimiter.Middleware).Get("/progress", userHandler.Progress)
		r.With(readLimiter.Middleware).Get("/streak", userHandler.Streak)
		r.With(writeLimiter.Middleware).Post("/progress/metrics", userHandler.RecordMetrics)
		r.With(loginLimiter.Middleware).Put("/level", userHandler.UpdateLevel)
	})

	return r
}
