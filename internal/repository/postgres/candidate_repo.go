package postgres

import (
	"context"

	"hirelens-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

// GetByUserID assembles the profile with its experience and education child
// rows. Children are always fetched through the parent so a sub-record id
// from another profile can never resolve.
func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT id, user_id, COALESCE(phone, ''), COALESCE(summary, ''), skills,
				COALESCE(resume_url, ''), COALESCE(linkedin_url, ''), COALESCE(github_url, ''),
				COALESCE(portfolio_url, ''), created_at, updated_at
              FROM candidate_profiles WHERE user_id = $1`
	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Phone, &p.Summary, &p.Skills,
		&p.ResumeURL, &p.LinkedInURL, &p.GithubURL, &p.PortfolioURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}

	if p.Experience, err = r.fetchExperience(ctx, p.ID); err != nil {
		return nil, err
	}
	if p.Education, err = r.fetchEducation(ctx, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *candidateRepo) fetchExperience(ctx context.Context, profileID string) ([]domain.Experience, error) {
	query := `SELECT id, company, role, start_date, end_date, description
              FROM candidate_experiences WHERE profile_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	exps := []domain.Experience{}
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Role, &e.StartDate, &e.EndDate, &e.Description); err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	return exps, rows.Err()
}

func (r *candidateRepo) fetchEducation(ctx context.Context, profileID string) ([]domain.Education, error) {
	query := `SELECT id, institution, degree, COALESCE(field_of_study, ''), start_date, end_date
              FROM candidate_educations WHERE profile_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	edus := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		edus = append(edus, e)
	}
	return edus, rows.Err()
}

func (r *candidateRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `INSERT INTO candidate_profiles (id, user_id, phone, summary, skills, resume_url,
				linkedin_url, github_url, portfolio_url, created_at, updated_at)
              VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''),
				NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), $10, $11)`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.UserID, profile.Phone, profile.Summary, profile.Skills,
		profile.ResumeURL, profile.LinkedInURL, profile.GithubURL, profile.PortfolioURL,
		profile.CreatedAt, profile.UpdatedAt,
	)
	return mapError(err)
}

func (r *candidateRepo) UpdateFields(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `UPDATE candidate_profiles SET
		phone = NULLIF($2, ''),
		summary = NULLIF($3, ''),
		linkedin_url = NULLIF($4, ''),
		github_url = NULLIF($5, ''),
		portfolio_url = NULLIF($6, ''),
		updated_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.Phone, profile.Summary,
		profile.LinkedInURL, profile.GithubURL, profile.PortfolioURL, profile.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) SetSkills(ctx context.Context, profileID string, skills []string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET skills = $2, updated_at = NOW() WHERE id = $1`,
		profileID, skills,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) SetResumeURL(ctx context.Context, profileID string, resumeURL string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE candidate_profiles SET resume_url = NULLIF($2, ''), updated_at = NOW() WHERE id = $1`,
		profileID, resumeURL,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) AddExperience(ctx context.Context, profileID string, exp *domain.Experience) error {
	query := `INSERT INTO candidate_experiences (id, profile_id, company, role, start_date, end_date, description)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		exp.ID, profileID, exp.Company, exp.Role, exp.StartDate, exp.EndDate, exp.Description,
	)
	return mapError(err)
}

func (r *candidateRepo) UpdateExperience(ctx context.Context, profileID string, exp *domain.Experience) error {
	query := `UPDATE candidate_experiences SET
		company = $3, role = $4, start_date = $5, end_date = $6, description = $7
	WHERE id = $1 AND profile_id = $2`
	result, err := r.db.Exec(ctx, query,
		exp.ID, profileID, exp.Company, exp.Role, exp.StartDate, exp.EndDate, exp.Description,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteExperience(ctx context.Context, profileID, experienceID string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM candidate_experiences WHERE id = $1 AND profile_id = $2`,
		experienceID, profileID,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) AddEducation(ctx context.Context, profileID string, edu *domain.Education) error {
	query := `INSERT INTO candidate_educations (id, profile_id, institution, degree, field_of_study, start_date, end_date)
              VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.db.Exec(ctx, query,
		edu.ID, profileID, edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate,
	)
	return mapError(err)
}

func (r *candidateRepo) UpdateEducation(ctx context.Context, profileID string, edu *domain.Education) error {
	query := `UPDATE candidate_educations SET
		institution = $3, degree = $4, field_of_study = NULLIF($5, ''), start_date = $6, end_date = $7
	WHERE id = $1 AND profile_id = $2`
	result, err := r.db.Exec(ctx, query,
		edu.ID, profileID, edu.Institution, edu.Degree, edu.FieldOfStudy, edu.StartDate, edu.EndDate,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) DeleteEducation(ctx context.Context, profileID, educationID string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM candidate_educations WHERE id = $1 AND profile_id = $2`,
		educationID, profileID,
	)
	if err != nil {
		return mapError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
