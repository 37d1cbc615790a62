package usecase

import (
	"context"
	"errors"
	"time"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
)

// ExploreUseCase implements port.ExploreUseCase on top of a campaign
// repository.
type ExploreUseCase struct {
	campaigns       port.CampaignRepository
	defaultCampaign string
	now             func() time.Time
}

// NewExploreUseCase creates the explorer. defaultCampaign is the slug of
// the campaign whose courses are listed on the explore page.
func NewExploreUseCase(campaigns port.CampaignRepository, defaultCampaign string) *ExploreUseCase {
	return &ExploreUseCase{campaigns: campaigns, defaultCampaign: defaultCampaign, now: time.Now}
}

// ResolveCampaign looks up the campaign named by an explore link.
func (u *ExploreUseCase) ResolveCampaign(ctx context.Context, slug string) (*domain.Campaign, error) {
	if slug == "" {
		return nil, port.ErrCampaignNotFound
	}
	return u.campaigns.GetCampaignBySlug(ctx, slug)
}

// Explore lists active campaigns and the active public courses of the
// default campaign. A missing default campaign yields an empty course
// list rather than an error.
func (u *ExploreUseCase) Explore(ctx context.Context, _ domain.Viewer) (*port.ExploreResp, error) {
	now := u.now()
	campaigns, err := u.campaigns.ListActiveCampaigns(ctx, now)
	if err != nil {
		return nil, err
	}
	resp := &port.ExploreResp{Campaigns: activeCampaigns(campaigns, now)}

	if u.defaultCampaign == "" {
		return resp, nil
	}
	def, err := u.campaigns.GetCampaignBySlug(ctx, u.defaultCampaign)
	if errors.Is(err, port.ErrCampaignNotFound) {
		return resp, nil
	}
	if err != nil {
		return nil, err
	}
	courses, err := u.campaigns.ListActiveCourses(ctx, def.ID, now)
	if err != nil {
		return nil, err
	}
	resp.DefaultCampaign = def
	resp.Courses = listedCourses(courses, now)
	return resp, nil
}

// CampaignOverview returns a campaign with its active public courses.
func (u *ExploreUseCase) CampaignOverview(ctx context.Context, slug string) (*port.CampaignOverview, error) {
	camp, err := u.ResolveCampaign(ctx, slug)
	if err != nil {
		return nil, err
	}
	now := u.now()
	courses, err := u.campaigns.ListActiveCourses(ctx, camp.ID, now)
	if err != nil {
		return nil, err
	}
	return &port.CampaignOverview{Campaign: *camp, Courses: listedCourses(courses, now)}, nil
}

func activeCampaigns(in []domain.Campaign, now time.Time) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(in))
	for _, c := range in {
		if c.Active(now) {
			out = append(out, c)
		}
	}
	return out
}

func listedCourses(in []domain.Course, now time.Time) []domain.Course {
	out := make([]domain.Course, 0, len(in))
	for _, c := range in {
		if c.Active(now) && !c.Private {
			out = append(out, c)
		}
	}
	return out
}
