package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peak-placements/internal/core/domain"
	"peak-placements/internal/core/port"
)

// stubService implements port.SchedulingService with pluggable functions.
type stubService struct {
	getCapacity  func(ctx context.Context, start, end domain.Date) (*domain.DateRangeCapacity, error)
	assignDate   func(ctx context.Context, id uuid.UUID, date domain.Date) error
	unassignDate func(ctx context.Context, id uuid.UUID) error
	bulkSchedule func(ctx context.Context, assignments []port.Assignment) (*port.BulkResult, error)
}

func (s *stubService) GetCapacity(ctx context.Context, start, end domain.Date) (*domain.DateRangeCapacity, error) {
	return s.getCapacity(ctx, start, end)
}

func (s *stubService) AssignDate(ctx context.Context, id uuid.UUID, date domain.Date) error {
	return s.assignDate(ctx, id, date)
}

func (s *stubService) UnassignDate(ctx context.Context, id uuid.UUID) error {
	return s.unassignDate(ctx, id)
}

func (s *stubService) BulkSchedule(ctx context.Context, assignments []port.Assignment) (*port.BulkResult, error) {
	return s.bulkSchedule(ctx, assignments)
}

func newTestHandler(svc port.SchedulingService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger).Router()
}

func TestGetCapacityValidation(t *testing.T) {
	svc := &stubService{
		getCapacity: func(_ context.Context, start, end domain.Date) (*domain.DateRangeCapacity, error) {
			rc := domain.BuildRangeCapacity(domain.DefaultCapacityPolicy(), start, end, nil)
			return &rc, nil
		},
	}
	h := newTestHandler(svc)

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"ok", "start=2026-03-02&end=2026-03-06", http.StatusOK},
		{"missing start", "end=2026-03-06", http.StatusBadRequest},
		{"malformed end", "start=2026-03-02&end=03-06-2026", http.StatusBadRequest},
		{"inverted", "start=2026-03-06&end=2026-03-02", http.StatusBadRequest},
		{"span over 90 days", "start=2026-01-01&end=2026-06-01", http.StatusBadRequest},
		{"span exactly 90 days", "start=2026-01-01&end=2026-04-01", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/capacity?"+tc.query, nil))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestGetCapacityBody(t *testing.T) {
	svc := &stubService{
		getCapacity: func(_ context.Context, start, end domain.Date) (*domain.DateRangeCapacity, error) {
			rc := domain.BuildRangeCapacity(
				domain.CapacityPolicy{domain.TypePrimary: 1},
				start, end,
				[]domain.ScheduledSlot{{Date: start, Publication: domain.PubThePeak, Type: domain.TypePrimary}},
			)
			return &rc, nil
		},
	}
	h := newTestHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/capacity?start=2026-03-02&end=2026-03-02", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var rc domain.DateRangeCapacity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rc))
	require.Len(t, rc.Days, 1)
	assert.Equal(t, domain.MustDate("2026-03-02"), rc.Days[0].Date)
	require.NotEmpty(t, rc.Days[0].Slots)
	assert.Equal(t, 0, rc.Days[0].Slots[0].Available)
}

func TestSchedulePlacementStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"weekend", port.ErrInvalidWeekday, http.StatusBadRequest},
		{"not found", port.ErrNotFound, http.StatusNotFound},
		{"already scheduled", &port.AlreadyScheduledError{Existing: domain.MustDate("2026-03-03")}, http.StatusConflict},
		{"lost race", &port.ConcurrentlyScheduledError{Existing: domain.MustDate("2026-03-03")}, http.StatusConflict},
		{"slot full", &port.CapacityExceededError{Used: 1, Limit: 1}, http.StatusConflict},
		{"persistence", port.ErrPersistenceFailure, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{
				assignDate: func(context.Context, uuid.UUID, domain.Date) error { return tc.err },
			}
			h := newTestHandler(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost,
				"/api/v1/placements/"+uuid.NewString()+"/schedule",
				strings.NewReader(`{"date":"2026-03-02"}`))
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestSchedulePlacementBadRequests(t *testing.T) {
	svc := &stubService{
		assignDate: func(context.Context, uuid.UUID, domain.Date) error { return nil },
	}
	h := newTestHandler(svc)

	// malformed id
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/v1/placements/not-a-uuid/schedule", strings.NewReader(`{"date":"2026-03-02"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed date
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/v1/placements/"+uuid.NewString()+"/schedule", strings.NewReader(`{"date":"2026-3-2"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// malformed body
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/v1/placements/"+uuid.NewString()+"/schedule", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSchedulePlacementNullDateUnassigns(t *testing.T) {
	var cleared uuid.UUID
	svc := &stubService{
		unassignDate: func(_ context.Context, id uuid.UUID) error {
			cleared = id
			return nil
		},
	}
	h := newTestHandler(svc)

	id := uuid.New()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/v1/placements/"+id.String()+"/schedule", strings.NewReader(`{"date":null}`)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, id, cleared)
}

func TestBulkScheduleReturnsResultAsData(t *testing.T) {
	failed := uuid.New()
	svc := &stubService{
		bulkSchedule: func(_ context.Context, assignments []port.Assignment) (*port.BulkResult, error) {
			return &port.BulkResult{
				Success:   false,
				Scheduled: len(assignments) - 1,
				Errors: []port.AssignmentError{
					{PlacementID: failed, Error: port.ErrInvalidWeekday.Error()},
				},
			}, nil
		},
	}
	h := newTestHandler(svc)

	body := `{"assignments":[
		{"campaignId":"` + uuid.NewString() + `","placementId":"` + uuid.NewString() + `","scheduledDate":"2026-03-02"},
		{"campaignId":"` + uuid.NewString() + `","placementId":"` + failed.String() + `","scheduledDate":"2026-03-07"}
	]}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/placements/bulk-schedule", strings.NewReader(body)))

	// per-row failures are data, not HTTP errors
	require.Equal(t, http.StatusOK, rec.Code)
	var res port.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Scheduled)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, failed, res.Errors[0].PlacementID)
}

func TestBulkScheduleEmptyBatch(t *testing.T) {
	svc := &stubService{
		bulkSchedule: func(context.Context, []port.Assignment) (*port.BulkResult, error) {
			t.Fatal("service must not be called for an empty batch")
			return nil, nil
		},
	}
	h := newTestHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/placements/bulk-schedule", strings.NewReader(`{"assignments":[]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
