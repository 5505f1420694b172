package postgres

import (
	"context"
	"time"

	"hirelens-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRequestRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRequestRepository(db *pgxpool.Pool) domain.RecruiterRequestRepository {
	return &recruiterRequestRepo{db: db}
}

const requestColumns = `id, user_id, company_name, official_email, COALESCE(website, ''),
	COALESCE(linkedin, ''), designation, status, reviewed_by, reviewed_at, created_at, updated_at`

func scanRequest(row interface{ Scan(...any) error }) (*domain.RecruiterRequest, error) {
	var req domain.RecruiterRequest
	err := row.Scan(
		&req.ID, &req.UserID, &req.CompanyName, &req.OfficialEmail, &req.Website,
		&req.LinkedIn, &req.Designation, &req.Status, &req.ReviewedBy, &req.ReviewedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &req, nil
}

func (r *recruiterRequestRepo) Create(ctx context.Context, req *domain.RecruiterRequest) error {
	query := `INSERT INTO recruiter_requests (id, user_id, company_name, official_email, website,
				linkedin, designation, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.UserID, req.CompanyName, req.OfficialEmail, req.Website,
		req.LinkedIn, req.Designation, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	return mapError(err)
}

func (r *recruiterRequestRepo) GetByID(ctx context.Context, id string) (*domain.RecruiterRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM recruiter_requests WHERE id = $1`
	return scanRequest(r.db.QueryRow(ctx, query, id))
}

func (r *recruiterRequestRepo) GetLatestByUser(ctx context.Context, userID string) (*domain.RecruiterRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM recruiter_requests
              WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	return scanRequest(r.db.QueryRow(ctx, query, userID))
}

func (r *recruiterRequestRepo) HasPending(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM recruiter_requests WHERE user_id = $1 AND status = 'pending')`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID).Scan(&exists)
	return exists, mapError(err)
}

func (r *recruiterRequestRepo) FetchPending(ctx context.Context) ([]domain.RecruiterRequestWithUser, error) {
	query := `
		SELECT
			rr.id, rr.user_id, rr.company_name, rr.official_email, COALESCE(rr.website, ''),
			COALESCE(rr.linkedin, ''), rr.designation, rr.status, rr.reviewed_by, rr.reviewed_at,
			rr.created_at, rr.updated_at,
			u.name, u.email, u.role
		FROM recruiter_requests rr
		JOIN users u ON rr.user_id = u.id
		WHERE rr.status = 'pending'
		ORDER BY rr.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	requests := []domain.RecruiterRequestWithUser{}
	for rows.Next() {
		var req domain.RecruiterRequestWithUser
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.CompanyName, &req.OfficialEmail, &req.Website,
			&req.LinkedIn, &req.Designation, &req.Status, &req.ReviewedBy, &req.ReviewedAt,
			&req.CreatedAt, &req.UpdatedAt,
			&req.UserName, &req.UserEmail, &req.UserRole,
		); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// Decide performs the status flip and, on approval, the role promotion in
// one transaction. The WHERE status = 'pending' guard makes decisions
// single-shot even under concurrent admins: the loser sees zero rows and
// reports ErrNotFound, which the usecase turns into Conflict after
// re-reading the record.
func (r *recruiterRequestRepo) Decide(ctx context.Context, id, reviewerID, status string, reviewedAt time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE recruiter_requests
         SET status = $2, reviewed_by = $3, reviewed_at = $4, updated_at = $4
         WHERE id = $1 AND status = 'pending'`,
		id, status, reviewerID, reviewedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if status == domain.RequestStatusApproved {
		var userID string
		if err := tx.QueryRow(ctx,
			`SELECT user_id FROM recruiter_requests WHERE id = $1`, id,
		).Scan(&userID); err != nil {
			return mapError(err)
		}
		if _, err := tx.Exec(ctx,
			`UPDATE users SET role = $2, updated_at = $3 WHERE id = $1`,
			userID, domain.RoleRecruiter, reviewedAt,
		); err != nil {
			return mapError(err)
		}
	}

	return tx.Commit(ctx)
}
