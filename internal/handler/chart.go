package handler

import (
	"log/slog"
	"net/http"

	"github.com/mkarlen/fitlog/internal/service"
)

// ChartHandler serves the per-exercise calorie breakdown.
type ChartHandler struct {
	charts *service.ChartService
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(charts *service.ChartService) *ChartHandler {
	return &ChartHandler{charts: charts}
}

// HandleSummary returns the authenticated user's calorie breakdown and the
// rendered donut chart as a base64 PNG. A user with no workouts gets an
// empty category list, not an error.
// GET /api/workouts/chart
// Response: {"categories": [...], "chart": "<base64 png>"}
func (h *ChartHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	summary, err := h.charts.BuildSummary(r.Context(), user.ID)
	if err != nil {
		slog.Error("build calorie summary", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}
