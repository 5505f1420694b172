package postgres

import (
	"context"
	"time"

	"hirelens-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (id, candidate_id, job_id, recruiter_id, status, applied_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	_, err := r.db.Exec(ctx, query,
		app.ID, app.CandidateID, app.JobID, app.RecruiterID,
		app.Status, app.AppliedAt, app.UpdatedAt,
	)
	return mapError(err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT id, candidate_id, job_id, recruiter_id, status, applied_at, updated_at
              FROM applications WHERE id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.CandidateID, &app.JobID, &app.RecruiterID,
		&app.Status, &app.AppliedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &app, nil
}

func (r *applicationRepo) Exists(ctx context.Context, candidateID, jobID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE candidate_id = $1 AND job_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, candidateID, jobID).Scan(&exists)
	return exists, mapError(err)
}

// FetchByCandidate joins a read-time snapshot of the job. The join is LEFT:
// when the job was hard-deleted the snapshot comes back nil and the caller
// renders that instead of breaking.
func (r *applicationRepo) FetchByCandidate(ctx context.Context, candidateID string, limit, offset int) ([]domain.ApplicationWithJob, int64, error) {
	query := `
		SELECT
			a.id, a.candidate_id, a.job_id, a.recruiter_id, a.status, a.applied_at, a.updated_at,
			j.title, j.company_name, j.location, j.job_type, j.is_active, j.slug
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, candidateID, limit, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var apps []domain.ApplicationWithJob
	for rows.Next() {
		var app domain.ApplicationWithJob
		var title, company, location, jobType, slug *string
		var isActive *bool
		if err := rows.Scan(
			&app.ID, &app.CandidateID, &app.JobID, &app.RecruiterID,
			&app.Status, &app.AppliedAt, &app.UpdatedAt,
			&title, &company, &location, &jobType, &isActive, &slug,
		); err != nil {
			return nil, 0, err
		}
		if title != nil {
			app.Job = &domain.JobSnapshot{
				Title:       *title,
				CompanyName: *company,
				Location:    *location,
				JobType:     *jobType,
				IsActive:    *isActive,
				Slug:        *slug,
			}
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`, candidateID).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}
	return apps, total, nil
}

func (r *applicationRepo) FetchByJob(ctx context.Context, jobID string, limit, offset int) ([]domain.ApplicationWithCandidate, int64, error) {
	query := `
		SELECT
			a.id, a.candidate_id, a.job_id, a.recruiter_id, a.status, a.applied_at, a.updated_at,
			u.name, u.email, COALESCE(p.phone, ''), COALESCE(p.resume_url, '')
		FROM applications a
		JOIN users u ON a.candidate_id = u.id
		LEFT JOIN candidate_profiles p ON p.user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, jobID, limit, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var apps []domain.ApplicationWithCandidate
	for rows.Next() {
		var app domain.ApplicationWithCandidate
		var cand domain.CandidateSnapshot
		if err := rows.Scan(
			&app.ID, &app.CandidateID, &app.JobID, &app.RecruiterID,
			&app.Status, &app.AppliedAt, &app.UpdatedAt,
			&cand.Name, &cand.Email, &cand.Phone, &cand.ResumeURL,
		); err != nil {
			return nil, 0, err
		}
		app.Candidate = &cand
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}
	return apps, total, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now(),
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StatsByRecruiter aggregates over the denormalized recruiter_id snapshot,
// so the dashboard never joins through jobs.
func (r *applicationRepo) StatsByRecruiter(ctx context.Context, recruiterID string) (*domain.RecruiterStats, error) {
	stats := &domain.RecruiterStats{
		StatusBreakdown:    map[string]int64{},
		ApplicationsPerJob: map[string]int64{},
	}

	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(*) FROM applications WHERE recruiter_id = $1 GROUP BY status`,
		recruiterID,
	)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.StatusBreakdown[status] = count
		stats.TotalApplications += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	perJob, err := r.db.Query(ctx,
		`SELECT job_id, COUNT(*) FROM applications WHERE recruiter_id = $1 GROUP BY job_id`,
		recruiterID,
	)
	if err != nil {
		return nil, mapError(err)
	}
	defer perJob.Close()
	for perJob.Next() {
		var jobID string
		var count int64
		if err := perJob.Scan(&jobID, &count); err != nil {
			return nil, err
		}
		stats.ApplicationsPerJob[jobID] = count
	}
	return stats, perJob.Err()
}
