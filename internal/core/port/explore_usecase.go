package port

import (
	"context"

	"edu-dashboard/internal/core/domain"
)

// ExploreUseCase serves the campaign explorer. Listings are the same for
// every viewer; the viewer is accepted so callers need not special-case roles.
type ExploreUseCase interface {
	// ResolveCampaign returns the campaign a ?campaign= link points to,
	// or ErrCampaignNotFound.
	ResolveCampaign(ctx context.Context, slug string) (*domain.Campaign, error)
	// Explore lists active campaigns and the active courses of the
	// default campaign.
	Explore(ctx context.Context, viewer domain.Viewer) (*ExploreResp, error)
	// CampaignOverview returns a campaign with its active courses.
	CampaignOverview(ctx context.Context, slug string) (*CampaignOverview, error)
}

// ExploreResp is the explorer listing.
type ExploreResp struct {
	Campaigns       []domain.Campaign
	DefaultCampaign *domain.Campaign
	Courses         []domain.Course
}

// CampaignOverview is a campaign page.
type CampaignOverview struct {
	Campaign domain.Campaign
	Courses  []domain.Course
}
