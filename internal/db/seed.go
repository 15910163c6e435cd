package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"peak-placements/internal/core/domain"
)

// Seed inserts demo campaigns with unscheduled placements across every
// publication and type, so a fresh environment has something to schedule.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 1; i <= 5; i++ {
		campaignID := uuid.New()
		name := fmt.Sprintf("Demo Campaign %d", i)
		_, err := pool.Exec(ctx, `INSERT INTO campaigns (id, name, status, created_at, updated_at)
VALUES ($1, $2, 'active', now(), now()) ON CONFLICT DO NOTHING`, campaignID, name)
		if err != nil {
			return err
		}

		for _, pub := range domain.Publications() {
			for _, t := range domain.PlacementTypes() {
				_, err = pool.Exec(ctx, `INSERT INTO placements
(id, campaign_id, type, publication, status, scheduled_date, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'draft', NULL, now(), now()) ON CONFLICT DO NOTHING`,
					uuid.New(), campaignID, t, pub)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
