package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"benkhawiya-backend/internal/catalog"
	"benkhawiya-backend/internal/middleware"
	"benkhawiya-backend/internal/models"
	"benkhawiya-backend/internal/services"
)

type PracticeHandler struct {
	catalog         *catalog.Catalog
	practiceService *services.PracticeService
}

func NewPracticeHandler(cat *catalog.Catalog, practiceService *services.PracticeService) *PracticeHandler {
	return &PracticeHandler{catalog: cat, practiceService: practiceService}
}

// List returns every practice available at the caller's level.
func (h *PracticeHandler) List(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	practices := h.catalog.ForLevel(account.UserLevel)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"practices":       practices,
		"user_level":      account.UserLevel,
		"total_practices": len(practices),
	})
}

// Daily returns today's selected practice for the caller.
func (h *PracticeHandler) Daily(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	practice, err := h.practiceService.Daily(r.Context(), account)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"practice":       practice,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"user_level":     account.UserLevel,
		"suggested_time": "morning",
	})
}

func (h *PracticeHandler) Complete(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	var req models.CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	record, total, err := h.practiceService.Complete(r.Context(), account, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "completed",
		"practice_id":       record.PracticeID,
		"total_completions": total,
		"completion_time":   record.CompletedAt.UTC().Format(time.RFC3339),
	})
}
