package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo is a Postgres implementation of Repo.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, status, title, target_role, target_company, template_id, markdown, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		string(resume.Status),
		resume.Title,
		nullableString(resume.TargetRole),
		nullableString(resume.TargetCompany),
		nullableString(resume.TemplateID),
		resume.Markdown,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT id, status, title, target_role, target_company, template_id, markdown, created_at, updated_at
FROM resumes
WHERE id = $1
LIMIT 1`
	return scanResume(r.DB.QueryRowContext(ctx, query, resumeID))
}

func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT id, status, title, target_role, target_company, template_id, markdown, created_at, updated_at
FROM resumes
ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET status = $2, title = $3, target_role = $4, target_company = $5, template_id = $6, markdown = $7, updated_at = $8
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		string(resume.Status),
		resume.Title,
		nullableString(resume.TargetRole),
		nullableString(resume.TargetCompany),
		nullableString(resume.TemplateID),
		resume.Markdown,
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var status string
	var targetRole sql.NullString
	var targetCompany sql.NullString
	var templateID sql.NullString
	err := row.Scan(
		&resume.ID,
		&status,
		&resume.Title,
		&targetRole,
		&targetCompany,
		&templateID,
		&resume.Markdown,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	resume.Status = Status(status)
	if targetRole.Valid {
		resume.TargetRole = targetRole.String
	}
	if targetCompany.Valid {
		resume.TargetCompany = targetCompany.String
	}
	if templateID.Valid {
		resume.TemplateID = templateID.String
	}
	return resume, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
