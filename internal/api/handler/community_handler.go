package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/vitapulse/health-tracker/internal/api/validation"
	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/service"
	"github.com/vitapulse/health-tracker/pkg/problem"
)

type CommunityHandler struct {
	service service.CommunityService
}

func NewCommunityHandler(service service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// Post handles POST /v1/community/messages
// @Summary Post community message
// @Description Post a message to the shared community stream. The sender name is resolved from the user id.
// @Tags community
// @Accept json
// @Produce json
// @Param request body domain.PostMessageRequest true "Message"
// @Success 201 {object} domain.CommunityMessageResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /community/messages [post]
func (h *CommunityHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req domain.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	message, err := h.service.Post(r.Context(), req.UserID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to post message").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(message.ToResponse())
}

// List handles GET /v1/community/messages
// @Summary List community messages
// @Description Fetch the shared message stream oldest first. Poll with the returned cursor to pick up new messages.
// @Tags community
// @Produce json
// @Param limit query integer false "Results per page (1-100)" default(20)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.CommunityMessageListResponse
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /community/messages [get]
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			problem.BadRequest("limit must be a positive integer").Write(w)
			return
		}
		limit = parsed
	}

	response, err := h.service.List(r.Context(), limit, r.URL.Query().Get("cursor"))
	if err != nil {
		problem.InternalError("Failed to list messages").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
