package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
)

const campaignColumns = `id, title, slug, description, COALESCE(start_date, created_at), end_date, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// GetCampaignBySlug returns a campaign by slug.
func (r *CampaignRepository) GetCampaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE slug = $1`, slug)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActiveCampaigns returns campaigns that end after now, oldest first.
func (r *CampaignRepository) ListActiveCampaigns(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
        FROM campaigns
        WHERE end_date > $1
        ORDER BY created_at, id`, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ListActiveCourses returns the public courses of a campaign that end
// after now.
func (r *CampaignRepository) ListActiveCourses(ctx context.Context, campaignID int64, now time.Time) ([]domain.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+prefixed("c.")+`
        FROM courses c
        JOIN campaigns_courses cc ON cc.course_id = c.id
        WHERE cc.campaign_id = $1
          AND c.end_date > $2
          AND NOT c.private
        ORDER BY c.start_date, c.id`, campaignID, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCourse)
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Slug,
		&c.Description,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
