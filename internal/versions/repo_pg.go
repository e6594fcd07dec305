package versions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo is a Postgres implementation of Repo. Version numbers are allocated
// by a single INSERT..SELECT so they stay gapless under concurrent writers.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, version ResumeVersion) (ResumeVersion, error) {
	const query = `
INSERT INTO resume_versions (id, resume_id, version_no, label, markdown, template_id, created_at)
SELECT $1, $2, COALESCE(MAX(version_no), 0) + 1, $3, $4, $5, $6
FROM resume_versions
WHERE resume_id = $2
RETURNING version_no`
	err := r.DB.QueryRowContext(ctx, query,
		version.ID,
		version.ResumeID,
		nullableString(version.Label),
		version.Markdown,
		nullableString(version.TemplateID),
		version.CreatedAt,
	).Scan(&version.VersionNo)
	if err != nil {
		return ResumeVersion{}, err
	}
	return version, nil
}

func (r *PGRepo) GetByID(ctx context.Context, versionID string) (ResumeVersion, error) {
	const query = `
SELECT id, resume_id, version_no, label, markdown, template_id, created_at
FROM resume_versions
WHERE id = $1
LIMIT 1`
	var version ResumeVersion
	var label sql.NullString
	var templateID sql.NullString
	err := r.DB.QueryRowContext(ctx, query, versionID).Scan(
		&version.ID,
		&version.ResumeID,
		&version.VersionNo,
		&label,
		&version.Markdown,
		&templateID,
		&version.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResumeVersion{}, ErrNotFound
		}
		return ResumeVersion{}, err
	}
	if label.Valid {
		version.Label = label.String
	}
	if templateID.Valid {
		version.TemplateID = templateID.String
	}
	return version, nil
}

func (r *PGRepo) ListByResume(ctx context.Context, resumeID string) ([]ResumeVersion, error) {
	const query = `
SELECT id, resume_id, version_no, label, markdown, template_id, created_at
FROM resume_versions
WHERE resume_id = $1
ORDER BY version_no`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ResumeVersion{}
	for rows.Next() {
		var version ResumeVersion
		var label sql.NullString
		var templateID sql.NullString
		if err := rows.Scan(
			&version.ID,
			&version.ResumeID,
			&version.VersionNo,
			&label,
			&version.Markdown,
			&templateID,
			&version.CreatedAt,
		); err != nil {
			return nil, err
		}
		if label.Valid {
			version.Label = label.String
		}
		if templateID.Valid {
			version.TemplateID = templateID.String
		}
		out = append(out, version)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
