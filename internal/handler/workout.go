package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkarlen/fitlog/internal/domain"
	"github.com/mkarlen/fitlog/internal/service"
)

// WorkoutHandler handles workout listing and ingestion requests.
type WorkoutHandler struct {
	workouts *service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workouts *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// HandleList returns the authenticated user's full workout history.
// GET /api/workouts
// Response: {"workouts": [...]}
func (h *WorkoutHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	workouts, err := h.workouts.ListByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("list workouts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"workouts": toWorkoutDTOs(workouts),
	})
}

// HandleCreate runs the ingestion pipeline on a free-text exercise
// description. The estimation service may identify several exercises in one
// submission; every identified exercise becomes one workout record.
// POST /api/workouts
// Request:  {"exercise":"ran 3 miles and swam for 20 minutes"}
// Response: {"workouts": [...]}
func (h *WorkoutHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Exercise string `json:"exercise"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	created, err := h.workouts.LogExercise(r.Context(), user, req.Exercise)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if errors.Is(err, domain.ErrEstimation) {
			slog.Error("estimate exercise", "error", err)
			writeError(w, http.StatusBadGateway, "Could not estimate the exercise right now. Please try again.")
			return
		}
		slog.Error("log exercise", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	dtos := make([]WorkoutDTO, len(created))
	for i, wk := range created {
		dtos[i] = toWorkoutDTO(*wk)
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"workouts": dtos,
	})
}
