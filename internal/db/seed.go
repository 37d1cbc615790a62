package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"edu-dashboard/internal/core/domain"
)

// Seed inserts demo campaigns and courses. defaultCampaign is created
// first so the explore page has a course listing. Rows that already
// exist are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool, defaultCampaign string) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	campaigns := []struct {
		slug, title string
		end         time.Time
	}{
		{defaultCampaign, "Default Campaign", now.AddDate(1, 0, 0)},
		{"spring_term", "Spring Term", now.AddDate(0, 4, 0)},
		{"fall_term", "Fall Term", now.AddDate(0, -2, 0)},
	}
	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		var id int64
		err := db.QueryRow(ctx, `INSERT INTO campaigns (title, slug, description, start_date, end_date, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,now(),now())
ON CONFLICT (slug) DO UPDATE SET updated_at = campaigns.updated_at
RETURNING id`,
			c.title, c.slug, "Demo campaign "+c.title, c.end.AddDate(-1, 0, 0), c.end).Scan(&id)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	schools := []string{"State University", "City College", "Tech Institute"}
	titles := []string{"Intro to Biology", "World History", "Data Literacy", "Art and Society"}
	for i := 1; i <= 12; i++ {
		start := now.AddDate(0, r.Intn(6)-4, 0)
		c := domain.Course{
			Title:            titles[r.Intn(len(titles))],
			School:           schools[r.Intn(len(schools))],
			Term:             fmt.Sprintf("Term %d", i),
			Description:      "Students improve articles in their field.",
			ExpectedStudents: 10 + r.Intn(40),
			Start:            start,
			End:              start.AddDate(0, 4, 0),
			Type:             domain.ProgramTypes[r.Intn(len(domain.ProgramTypes))],
			Private:          i%5 == 0,
			CreatorID:        "seed-" + uuid.NewString()[:8],
		}
		c.Slug = domain.GenerateSlug(c)

		var courseID int64
		err := db.QueryRow(ctx, `INSERT INTO courses
(title, school, term, description, expected_students, start_date, end_date, private, slug, type, creator_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),now())
ON CONFLICT (slug) DO UPDATE SET updated_at = courses.updated_at
RETURNING id`,
			c.Title, c.School, c.Term, c.Description, c.ExpectedStudents, c.Start, c.End, c.Private, c.Slug, string(c.Type), c.CreatorID,
		).Scan(&courseID)
		if err != nil {
			return err
		}
		campaignID := ids[i%len(ids)]
		_, err = db.Exec(ctx, `INSERT INTO campaigns_courses (campaign_id, course_id)
VALUES ($1,$2) ON CONFLICT DO NOTHING`, campaignID, courseID)
		if err != nil {
			return err
		}
	}
	return nil
}
