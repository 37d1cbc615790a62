package domain

import "time"

// Campaign groups courses for browsing and enrollment. A campaign is
// active while its end date lies in the future.
type Campaign struct {
	ID          int64
	Title       string
	Slug        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active reports whether the campaign ends after now.
func (c Campaign) Active(now time.Time) bool {
	return c.EndDate.After(now)
}

// Path returns the overview URL of the campaign.
func (c Campaign) Path() string {
	return CampaignPath(c.Slug)
}

// CampaignPath returns the overview URL for a campaign slug.
func CampaignPath(slug string) string {
	return "/campaigns/" + slug
}
