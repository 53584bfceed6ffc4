package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vitapulse/health-tracker/internal/domain"
	"github.com/vitapulse/health-tracker/internal/service"
	"github.com/vitapulse/health-tracker/internal/simulation"
	"github.com/vitapulse/health-tracker/pkg/problem"
)

type SimulationHandler struct {
	users    service.UserService
	replayer *simulation.Replayer
}

func NewSimulationHandler(users service.UserService, replayer *simulation.Replayer) *SimulationHandler {
	return &SimulationHandler{users: users, replayer: replayer}
}

// simulationStatusResponse reports the replayer state.
// @Description Whether the wearable simulation is running and its dataset position.
type simulationStatusResponse struct {
	Running  bool `json:"running" example:"true"`
	Position int  `json:"position" example:"3"`
}

// Start handles POST /v1/users/{userId}/simulation/start
// @Summary Start wearable simulation
// @Description Begin streaming the wearable dataset into the user's metrics. The first reading is pushed before this returns. A no-op when a simulation is already running.
// @Tags simulation
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} simulationStatusResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/simulation/start [post]
func (h *SimulationHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	if _, err := h.users.GetByID(r.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to start simulation").Write(w)
		return
	}

	h.replayer.Start(userID)
	h.writeStatus(w)
}

// Stop handles POST /v1/simulation/stop
// @Summary Stop wearable simulation
// @Description Halt the running simulation. The dataset position is retained for the next start. A no-op when idle.
// @Tags simulation
// @Produce json
// @Success 200 {object} simulationStatusResponse
// @Router /simulation/stop [post]
func (h *SimulationHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.replayer.Stop()
	h.writeStatus(w)
}

// Status handles GET /v1/simulation
// @Summary Simulation status
// @Tags simulation
// @Produce json
// @Success 200 {object} simulationStatusResponse
// @Router /simulation [get]
func (h *SimulationHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.writeStatus(w)
}

func (h *SimulationHandler) writeStatus(w http.ResponseWriter) {
	running, position := h.replayer.Status()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(simulationStatusResponse{Running: running, Position: position})
}
