package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"edu-dashboard/internal/core/domain"
	"edu-dashboard/internal/core/port"
)

// uniqueViolation is the SQLSTATE of a unique constraint failure.
const uniqueViolation = "23505"

var courseColumns = []string{
	"id", "title", "school", "term", "subject", "description", "role_description",
	"level", "expected_students", "start_date", "end_date", "timeline_start",
	"timeline_end", "language", "project", "private", "slug", "type",
	"initial_campaign_slug", "initial_campaign_title", "creator_id",
	"created_at", "updated_at",
}

// prefixed lists the course columns qualified with a table alias.
func prefixed(alias string) string {
	cols := make([]string, len(courseColumns))
	for i, c := range courseColumns {
		cols[i] = alias + c
	}
	return strings.Join(cols, ", ")
}

// CourseRepository implements port.CourseRepository using pgxpool.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository returns a new repository instance.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// SlugExists reports whether a course uses slug.
func (r *CourseRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM courses WHERE slug = $1)`, slug).Scan(&exists)
	return exists, err
}

// CreateCourse inserts the course and links it to a campaign in one
// transaction. The unique index on slug decides races between
// concurrent submissions.
func (r *CourseRepository) CreateCourse(ctx context.Context, c *domain.Course, campaignID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `INSERT INTO courses
    (title, school, term, subject, description, role_description, level, expected_students,
     start_date, end_date, timeline_start, timeline_end, language, project, private, slug, type,
     initial_campaign_slug, initial_campaign_title, creator_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,now(),now())
RETURNING id, created_at, updated_at`,
		c.Title, c.School, c.Term, c.Subject, c.Description, c.RoleDescription, c.Level, c.ExpectedStudents,
		c.Start, c.End, c.TimelineStart, c.TimelineEnd, c.Language, c.Project, c.Private, c.Slug, string(c.Type),
		c.InitialCampaignSlug, c.InitialCampaignTitle, c.CreatorID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return port.ErrSlugTaken
		}
		return err
	}

	if campaignID != 0 {
		_, err = tx.Exec(ctx, `INSERT INTO campaigns_courses (campaign_id, course_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`, campaignID, c.ID)
		if err != nil {
			return err
		}
	}
	err = tx.Commit(ctx)
	return err
}

// GetCourse returns a course by id.
func (r *CourseRepository) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	return r.getOne(ctx, `SELECT `+prefixed("")+` FROM courses WHERE id = $1`, id)
}

// GetCourseBySlug returns a course by slug.
func (r *CourseRepository) GetCourseBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	return r.getOne(ctx, `SELECT `+prefixed("")+` FROM courses WHERE slug = $1`, slug)
}

// ListCoursesByCreator returns the courses a user created, newest first.
func (r *CourseRepository) ListCoursesByCreator(ctx context.Context, userID string) ([]domain.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+prefixed("")+`
        FROM courses
        WHERE creator_id = $1
        ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCourse)
}

func (r *CourseRepository) getOne(ctx context.Context, query string, arg any) (*domain.Course, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCourse)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCourse(row pgx.CollectableRow) (domain.Course, error) {
	var c domain.Course
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.School,
		&c.Term,
		&c.Subject,
		&c.Description,
		&c.RoleDescription,
		&c.Level,
		&c.ExpectedStudents,
		&c.Start,
		&c.End,
		&c.TimelineStart,
		&c.TimelineEnd,
		&c.Language,
		&c.Project,
		&c.Private,
		&c.Slug,
		&c.Type,
		&c.InitialCampaignSlug,
		&c.InitialCampaignTitle,
		&c.CreatorID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
