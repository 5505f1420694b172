package postgres

import (
	"context"

	"hirelens-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

func (r *savedJobRepo) Save(ctx context.Context, userID, jobID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (user_id, job_id, saved_at) VALUES ($1, $2, NOW())`,
		userID, jobID,
	)
	return mapError(err)
}

// Remove is idempotent: removing an unsaved job is not an error.
func (r *savedJobRepo) Remove(ctx context.Context, userID, jobID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	return mapError(err)
}

func (r *savedJobRepo) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID,
	).Scan(&exists)
	return exists, mapError(err)
}

func (r *savedJobRepo) FetchByUser(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	query := `
		SELECT j.id, j.title, j.company_name, j.location, j.job_type, j.salary_min, j.salary_max, j.slug
		FROM saved_jobs s
		JOIN jobs j ON s.job_id = j.id
		WHERE s.user_id = $1
		ORDER BY s.saved_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	jobs := []domain.SavedJob{}
	for rows.Next() {
		var j domain.SavedJob
		if err := rows.Scan(&j.JobID, &j.Title, &j.CompanyName, &j.Location, &j.JobType,
			&j.SalaryMin, &j.SalaryMax, &j.Slug); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
