package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitapulse/health-tracker/internal/api/validation"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/service"
	"github.com/vitapulse/health-tracker/pkg/problem"
)

type MetricHandler struct {
	service service.MetricService
}

func NewMetricHandler(service service.MetricService) *MetricHandler {
	return &MetricHandler{service: service}
}

// Record handles POST /v1/users/{userId}/metrics
// @Summary Record metric
// @Description Record one health metric sample. Timestamp defaults to now. Values are stored as-is; no physiological range checks.
// @Tags metrics
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.RecordMetricRequest true "Metric sample"
// @Success 201 {object} domain.MetricSampleResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/metrics [post]
func (h *MetricHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.RecordMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	sample, err := h.service.Record(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.ValidationError("Metric value must be a finite number", nil).Write(w)
			return
		}
		problem.InternalError("Failed to record metric").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sample.ToResponse())
}

// History handles GET /v1/users/{userId}/metrics/{metricType}/history
// @Summary Metric history
// @Description The most recent samples of a metric type, returned oldest to newest with chart-ready date labels.
// @Tags metrics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param metricType path string true "Metric type key" example(steps)
// @Param limit query integer false "Number of samples (1-100)" default(14)
// @Success 200 {object} domain.MetricHistoryResponse
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/metrics/{metricType}/history [get]
func (h *MetricHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	metricType, ok := parseMetricType(r)
	if !ok {
		problem.BadRequest("Invalid metric type").Write(w)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.BadRequest("limit must be a positive integer").Write(w)
			return
		}
	}

	response, err := h.service.History(r.Context(), userID, metricType, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch metric history").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Latest handles GET /v1/users/{userId}/metrics/{metricType}/latest
// @Summary Latest metric value
// @Description The most recent sample of a metric type. When no sample exists the value is zero and has_data is false.
// @Tags metrics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param metricType path string true "Metric type key" example(steps)
// @Success 200 {object} domain.LatestMetricResponse
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/metrics/{metricType}/latest [get]
func (h *MetricHandler) Latest(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	metricType, ok := parseMetricType(r)
	if !ok {
		problem.BadRequest("Invalid metric type").Write(w)
		return
	}

	response, err := h.service.Latest(r.Context(), userID, metricType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to fetch latest metric").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Reset handles DELETE /v1/users/{userId}/data
// @Summary Reset user data
// @Description Permanently delete all metric samples and diet logs for the user.
// @Tags metrics
// @Param userId path string true "User UUID" format(uuid)
// @Success 204 "Data deleted"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/data [delete]
func (h *MetricHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if err := h.service.Reset(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to reset user data").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseMetricType(r *http.Request) (domain.MetricType, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "metricType"))
	if raw == "" || len(raw) > 64 {
		return "", false
	}
	return domain.MetricType(raw), true
}
