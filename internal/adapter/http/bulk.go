package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"peak-placements/internal/core/port"
)

// bulkScheduleRequest is the body of an admin bulk scheduling request.
type bulkScheduleRequest struct {
	Assignments []port.Assignment `json:"assignments"`
}

// handleBulkSchedule validates and commits a batch of assignments. The
// per-row outcome is data, not a status: the response is always 200 with
// a BulkResult whose errors the admin UI renders next to the successes.
func (h *Handler) handleBulkSchedule(w http.ResponseWriter, r *http.Request) {
	var req bulkScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.Assignments) == 0 {
		http.Error(w, "no assignments provided", http.StatusBadRequest)
		return
	}

	res, err := h.svc.BulkSchedule(r.Context(), req.Assignments)
	if err != nil {
		h.logger.Error("bulk schedule error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
