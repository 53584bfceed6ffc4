package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitapulse/health-tracker/internal/api/validation"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/service"
	"github.com/vitapulse/health-tracker/pkg/problem"
)

type AssistantHandler struct {
	service service.AssistantService
}

func NewAssistantHandler(service service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

// Chat handles POST /v1/users/{userId}/assistant
// @Summary Ask the health assistant
// @Description Send a message to the assistant with optional conversation history and an optional base64 image.
// @Tags assistant
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.AssistantRequest true "Chat message"
// @Success 200 {object} domain.AssistantResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 502 {object} problem.Problem "Assistant upstream failed"
// @Failure 503 {object} problem.Problem "Assistant not configured"
// @Router /users/{userId}/assistant [post]
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.service.Chat(r.Context(), userID, &req)
	if err != nil {
		h.writeChatError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Feedback handles POST /v1/users/{userId}/assistant/feedback
// @Summary Rate an assistant reply
// @Description Score a previous assistant reply by its trace id.
// @Tags assistant
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.AssistantFeedbackRequest true "Feedback"
// @Success 202 "Feedback accepted"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 503 {object} problem.Problem "Tracing not configured"
// @Router /users/{userId}/assistant/feedback [post]
func (h *AssistantHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.AssistantFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		h.writeChatError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *AssistantHandler) writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User not found").Write(w)
	case errors.Is(err, domain.ErrAssistantUnavailable):
		problem.ServiceUnavailable("Assistant is not configured").Write(w)
	default:
		problem.BadGateway("Assistant request failed").Write(w)
	}
}
