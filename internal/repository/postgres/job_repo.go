package postgres

import (
	"context"
	"fmt"
	"strings"

	"hirelens-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, title, company_name, description, location, requirements, responsibilities,
	job_type, salary_min, salary_max, is_active, slug, created_by, created_at, updated_at`

func scanJob(row interface{ Scan(...any) error }) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.CompanyName, &job.Description, &job.Location,
		&job.Requirements, &job.Responsibilities, &job.JobType,
		&job.SalaryMin, &job.SalaryMax, &job.IsActive, &job.Slug,
		&job.CreatedBy, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Responsibilities == nil {
		job.Responsibilities = []string{}
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, title, company_name, description, location, requirements, responsibilities,
				job_type, salary_min, salary_max, is_active, slug, created_by, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.CompanyName, job.Description, job.Location,
		job.Requirements, job.Responsibilities, job.JobType,
		job.SalaryMin, job.SalaryMax, job.IsActive, job.Slug,
		job.CreatedBy, job.CreatedAt, job.UpdatedAt,
	)
	return mapError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.db.QueryRow(ctx, query, id))
}

func (r *jobRepo) GetBySlug(ctx context.Context, slug string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE slug = $1`
	return scanJob(r.db.QueryRow(ctx, query, slug))
}

// FetchActive returns only active jobs; the filter is applied server-side so
// clients cannot bypass the activation flag.
func (r *jobRepo) FetchActive(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	where := []string{"is_active = TRUE"}
	args := []any{}

	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		where = append(where, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.JobType != "" {
		args = append(args, filter.JobType)
		where = append(where, fmt.Sprintf("job_type = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs WHERE ` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, whereClause, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) FetchByCreator(ctx context.Context, creatorID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE created_by = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, creatorID, limit, offset)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE created_by = $1`, creatorID).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}
	return jobs, total, nil
}

// Update persists every mutable column. The slug is deliberately not in the
// SET list: it is derived once at creation and never recomputed.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		location = $4,
		requirements = $5,
		responsibilities = $6,
		job_type = $7,
		salary_min = $8,
		salary_max = $9,
		is_active = $10,
		updated_at = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location,
		job.Requirements, job.Responsibilities, job.JobType,
		job.SalaryMin, job.SalaryMax, job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) CountByCreator(ctx context.Context, creatorID string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE created_by = $1`, creatorID).Scan(&total)
	return total, mapError(err)
}
