package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitapulse/health-tracker/internal/api/validation"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/service"
	"github.com/vitapulse/health-tracker/pkg/problem"
)

type DietLogHandler struct {
	service service.DietService
}

func NewDietLogHandler(service service.DietService) *DietLogHandler {
	return &DietLogHandler{service: service}
}

// Create handles POST /v1/users/{userId}/diet-logs
// @Summary Log meal or water
// @Description Record a meal with macro breakdown, or a water intake increment (defaults to 0.25 L).
// @Tags diet-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateDietLogRequest true "Diet log entry"
// @Success 201 {object} domain.DietLogResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/diet-logs [post]
func (h *DietLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateDietLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Log(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.ValidationError("Meal entries require a name", nil).Write(w)
			return
		}
		problem.InternalError("Failed to create diet log").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/users/{userId}/diet-logs
// @Summary List diet logs
// @Description Fetch paginated diet history, newest first.
// @Tags diet-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DietLogListResponse
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/diet-logs [get]
func (h *DietLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var filter domain.DietLogFilter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.BadRequest("limit must be a positive integer").Write(w)
			return
		}
		filter.Limit = limit
	}
	filter.Cursor = r.URL.Query().Get("cursor")

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list diet logs").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Summary handles GET /v1/users/{userId}/diet-logs/summary
// @Summary Diet summary
// @Description Today's nutrition totals (user-local calendar day) plus 7-day weekday-labelled histories per metric.
// @Tags diet-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.DietSummaryResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/diet-logs/summary [get]
func (h *DietLogHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	response, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build diet summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
