package httpadapter

import (
	"log/slog"
	"net/http"

	"peak-placements/internal/core/domain"
)

// maxCapacitySpanDays bounds the capacity query window. The reader itself
// only assumes valid ordered dates; the span limit is an API-boundary
// concern and lives here.
const maxCapacitySpanDays = 90

// handleGetCapacity returns the availability snapshot for a date range.
// It accepts required `start` and `end` query parameters in YYYY-MM-DD
// form, rejects inverted ranges and spans over 90 days with HTTP 400, and
// writes the DateRangeCapacity as JSON on success.
func (h *Handler) handleGetCapacity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := domain.ParseDate(q.Get("start"))
	if err != nil {
		http.Error(w, "invalid 'start' date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end, err := domain.ParseDate(q.Get("end"))
	if err != nil {
		http.Error(w, "invalid 'end' date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if start.After(end) {
		http.Error(w, "'start' must not be after 'end'", http.StatusBadRequest)
		return
	}
	if end.Time().Sub(start.Time()).Hours() > 24*maxCapacitySpanDays {
		http.Error(w, "date range must not exceed 90 days", http.StatusBadRequest)
		return
	}

	rc, err := h.svc.GetCapacity(r.Context(), start, end)
	if err != nil {
		h.logger.Error("capacity query error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, rc)
}
