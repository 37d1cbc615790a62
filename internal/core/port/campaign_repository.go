package port

import (
	"context"
	"time"

	"edu-dashboard/internal/core/domain"
)

// CampaignRepository is the outbound port for campaign persistence.
type CampaignRepository interface {
	// GetCampaignBySlug returns the campaign with slug, or
	// ErrCampaignNotFound.
	GetCampaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error)
	// ListActiveCampaigns returns campaigns ending after now, oldest first.
	ListActiveCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error)
	// ListActiveCourses returns the public courses of a campaign that
	// end after now.
	ListActiveCourses(ctx context.Context, campaignID int64, now time.Time) ([]domain.Course, error)
}
