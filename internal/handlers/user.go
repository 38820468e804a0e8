package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"benkhawiya-backend/internal/middleware"
	"benkhawiya-backend/internal/models"
	"benkhawiya-backend/internal/services"
)

type UserHandler struct {
	authService     *services.AuthService
	practiceService *services.PracticeService
}

func NewUserHandler(authService *services.AuthService, practiceService *services.PracticeService) *UserHandler {
	return &UserHandler{authService: authService, practiceService: practiceService}
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":       account.ID,
		"email":         account.Email,
		"display_name":  account.DisplayName,
		"user_level":    account.UserLevel,
		"healing_focus": account.HealingFocus,
		"created_at":    account.CreatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *UserHandler) Progress(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	summary, err := h.practiceService.Progress(r.Context(), account)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *UserHandler) Streak(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	detail, err := h.practiceService.Streak(r.Context(), account)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *UserHandler) RecordMetrics(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	var req models.ProgressMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.practiceService.RecordMetrics(r.Context(), account, req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "recorded",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "Progress metrics recorded successfully",
	})
}

func (h *UserHandler) UpdateLevel(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())

	var req models.UpdateLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.authService.UpdateLevel(r.Context(), account, req.UserLevel); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "updated",
		"user_level": req.UserLevel,
	})
}
