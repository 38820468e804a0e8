package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const apiVersion = "2.0.0"

type HealthHandler struct {
	pool *pgxpool.Pool
	env  string
}

func NewHealthHandler(pool *pgxpool.Pool, env string) *HealthHandler {
	return &HealthHandler{pool: pool, env: env}
}

// Root describes the API. No auth required.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Benkhawiya Healing Platform API",
		"version":     apiVersion,
		"status":      "active",
		"environment": h.env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Health probes store connectivity. An orchestrator polls this for
// liveness, so a failed probe must produce a 503 rather than an error
// page.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	var one int
	if err := h.pool.QueryRow(r.Context(), "SELECT 1").Scan(&one); err != nil {
		log.Printf("Health check failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"database":    "connected",
		"version":     apiVersion,
		"environment": h.env,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
