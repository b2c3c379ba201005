package repository

import (
	"context"

	"blog-api/internal/domain/entity"
)

type ProfileRepository interface {
	// Get returns the profile record or nil when none exists.
	Get(ctx context.Context) (*entity.Profile, error)
	// UpdateTimeline replaces the stored timeline sequence of the profile.
	UpdateTimeline(ctx context.Context, profileID int64, entries []entity.TimelineEntry) error
	// Stats returns the profile statistics rows in stored order.
	Stats(ctx context.Context) ([]entity.StatRow, error)
}
