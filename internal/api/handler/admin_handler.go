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

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// CreateCollege handles POST /v1/colleges
// @Summary Add college
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.CreateCollegeRequest true "College data"
// @Success 201 {object} domain.CollegeResponse
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /colleges [post]
func (h *AdminHandler) CreateCollege(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCollegeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	college, err := h.service.AddCollege(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create college").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(college.ToResponse())
}

// ListColleges handles GET /v1/colleges
// @Summary List colleges
// @Tags admin
// @Produce json
// @Success 200 {array} domain.CollegeResponse
// @Failure 500 {object} problem.Problem "Server error"
// @Router /colleges [get]
func (h *AdminHandler) ListColleges(w http.ResponseWriter, r *http.Request) {
	colleges, err := h.service.ListColleges(r.Context())
	if err != nil {
		problem.InternalError("Failed to list colleges").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(colleges)
}

// ListStudents handles GET /v1/colleges/{collegeId}/students
// @Summary College student overview
// @Description Students of a college with their latest steps and stress readings.
// @Tags admin
// @Produce json
// @Param collegeId path string true "College UUID" format(uuid)
// @Success 200 {object} domain.StudentOverviewListResponse
// @Failure 400 {object} problem.Problem "Invalid college ID"
// @Failure 404 {object} problem.Problem "College not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /colleges/{collegeId}/students [get]
func (h *AdminHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	collegeID, err := uuid.Parse(chi.URLParam(r, "collegeId"))
	if err != nil {
		problem.BadRequest("Invalid college ID format").Write(w)
		return
	}

	response, err := h.service.StudentOverview(r.Context(), collegeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("College not found").Write(w)
			return
		}
		problem.InternalError("Failed to list students").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
