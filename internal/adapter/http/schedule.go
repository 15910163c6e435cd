package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"peak-placements/internal/core/domain"
	"peak-placements/internal/core/port"
)

// scheduleRequest is the body of a single-assignment request. A null or
// absent date means "un-schedule" and bypasses all quota logic.
type scheduleRequest struct {
	Date *string `json:"date"`
}

// handleSchedulePlacement processes the onboarding-time date selection
// for one placement. It expects an {id} path parameter holding the
// placement UUID. Validation failures map to 400, unknown placements to
// 404, scheduling conflicts and full slots to 409.
func (h *Handler) handleSchedulePlacement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid placement id", http.StatusBadRequest)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Date == nil {
		if err := h.svc.UnassignDate(r.Context(), id); err != nil {
			h.writeSchedulingError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	date, err := domain.ParseDate(*req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.svc.AssignDate(r.Context(), id, date); err != nil {
		h.writeSchedulingError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"scheduledDate": date.String()})
}

// writeSchedulingError maps the scheduling error taxonomy onto HTTP
// statuses. Every class is caller-recoverable; 500 is reserved for
// persistence failures and unknown errors.
func (h *Handler) writeSchedulingError(w http.ResponseWriter, err error) {
	var (
		already    *port.AlreadyScheduledError
		concurrent *port.ConcurrentlyScheduledError
		capacity   *port.CapacityExceededError
	)
	switch {
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, port.ErrInvalidWeekday):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &already), errors.As(err, &concurrent), errors.As(err, &capacity):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("schedule error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
