package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"peak-placements/internal/core/domain"
	"peak-placements/internal/core/port"
	"peak-placements/internal/core/port/mocks"
)

// TestBulkSchedulePartialSuccess submits five assignments where the third
// lands on a Saturday: four commit, one error names exactly the third
// placement, and nothing is rolled back.
func TestBulkSchedulePartialSuccess(t *testing.T) {
	repo := mocks.NewMockPlacementRepository(t)
	svc := NewSchedulingService(repo, testPolicy)

	var assignments []port.Assignment
	for i := 0; i < 5; i++ {
		p := unscheduledPlacement(domain.TypeBeehiiv, domain.PubPeakMoney)
		date := "2026-03-02"
		if i == 2 {
			date = "2026-03-07" // Saturday
		} else {
			repo.EXPECT().GetPlacement(mock.Anything, p.ID).Return(p, nil)
			repo.EXPECT().ForceSchedulePlacement(mock.Anything, p.ID, domain.MustDate(date)).Return(true, nil)
		}
		assignments = append(assignments, port.Assignment{
			CampaignID:    p.CampaignID,
			PlacementID:   p.ID,
			ScheduledDate: date,
		})
	}

	res, err := svc.BulkSchedule(context.Background(), assignments)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, 4, res.Scheduled)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, assignments[2].PlacementID, res.Errors[0].PlacementID)
	assert.Equal(t, port.ErrInvalidWeekday.Error(), res.Errors[0].Error)
}

// A full slot rejects with used/limit embedded in the message and later
// assignments are still evaluated.
func TestBulkScheduleCapacityError(t *testing.T) {
	repo := mocks.NewMockPlacementRepository(t)
	svc := NewSchedulingService(repo, testPolicy)

	full := unscheduledPlacement(domain.TypePrimary, domain.PubThePeak)
	next := unscheduledPlacement(domain.TypeBeehiiv, domain.PubThePeak)
	date := domain.MustDate("2026-03-02")

	repo.EXPECT().GetPlacement(mock.Anything, full.ID).Return(full, nil)
	repo.EXPECT().CountScheduled(mock.Anything, date, domain.PubThePeak, domain.TypePrimary).Return(1, nil)
	repo.EXPECT().GetPlacement(mock.Anything, next.ID).Return(next, nil)
	repo.EXPECT().ForceSchedulePlacement(mock.Anything, next.ID, date).Return(true, nil)

	res, err := svc.BulkSchedule(context.Background(), []port.Assignment{
		{CampaignID: full.CampaignID, PlacementID: full.ID, ScheduledDate: date.String()},
		{CampaignID: next.CampaignID, PlacementID: next.ID, ScheduledDate: date.String()},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Scheduled)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, full.ID, res.Errors[0].PlacementID)
	assert.Contains(t, res.Errors[0].Error, "1/1 used")
}

func TestBulkScheduleRowErrors(t *testing.T) {
	repo := mocks.NewMockPlacementRepository(t)
	svc := NewSchedulingService(repo, testPolicy)

	missing := uuid.New()
	repo.EXPECT().GetPlacement(mock.Anything, missing).Return(nil, nil)

	res, err := svc.BulkSchedule(context.Background(), []port.Assignment{
		{PlacementID: uuid.New(), ScheduledDate: "03/02/2026"},
		{PlacementID: missing, ScheduledDate: "2026-03-02"},
	})
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Zero(t, res.Scheduled)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, domain.ErrInvalidDate.Error(), res.Errors[0].Error)
	assert.Equal(t, port.ErrNotFound.Error(), res.Errors[1].Error)
}

func TestBulkScheduleAllSucceed(t *testing.T) {
	repo := mocks.NewMockPlacementRepository(t)
	svc := NewSchedulingService(repo, testPolicy)

	p := unscheduledPlacement(domain.TypeSecondary, domain.PubThePeak)
	date := domain.MustDate("2026-03-02")
	repo.EXPECT().GetPlacement(mock.Anything, p.ID).Return(p, nil)
	repo.EXPECT().CountScheduled(mock.Anything, date, domain.PubThePeak, domain.TypeSecondary).Return(0, nil)
	repo.EXPECT().ForceSchedulePlacement(mock.Anything, p.ID, date).Return(true, nil)

	res, err := svc.BulkSchedule(context.Background(), []port.Assignment{
		{CampaignID: p.CampaignID, PlacementID: p.ID, ScheduledDate: date.String()},
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Scheduled)
	assert.Empty(t, res.Errors)
}
