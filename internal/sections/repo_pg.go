package sections

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo is a Postgres implementation of Repo. Section writes and history
// appends run in one transaction; version numbers are allocated by a single
// INSERT..SELECT so they stay gapless under concurrent writers.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) CreateWithVersion(ctx context.Context, section Section, version Version) (Version, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Version{}, err
	}
	defer tx.Rollback()

	const insertSection = `
INSERT INTO sections (id, resume_id, title, markdown, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, insertSection,
		section.ID, section.ResumeID, section.Title, section.Markdown,
		section.Order, section.CreatedAt, section.UpdatedAt,
	); err != nil {
		return Version{}, err
	}

	const insertVersion = `
INSERT INTO section_versions (id, section_id, version_no, markdown, created_at)
VALUES ($1, $2, 1, $3, $4)`
	if _, err := tx.ExecContext(ctx, insertVersion,
		version.ID, section.ID, version.Markdown, version.CreatedAt,
	); err != nil {
		return Version{}, err
	}

	if err := tx.Commit(); err != nil {
		return Version{}, err
	}
	version.SectionID = section.ID
	version.VersionNo = 1
	return version, nil
}

func (r *PGRepo) UpdateWithVersion(ctx context.Context, section Section, version Version) (Version, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Version{}, err
	}
	defer tx.Rollback()

	const updateSection = `
UPDATE sections
SET title = $2, markdown = $3, updated_at = $4
WHERE id = $1`
	res, err := tx.ExecContext(ctx, updateSection,
		section.ID, section.Title, section.Markdown, section.UpdatedAt,
	)
	if err != nil {
		return Version{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Version{}, err
	}
	if affected == 0 {
		return Version{}, ErrNotFound
	}

	const insertVersion = `
INSERT INTO section_versions (id, section_id, version_no, markdown, created_at)
SELECT $1, $2, COALESCE(MAX(version_no), 0) + 1, $3, $4
FROM section_versions
WHERE section_id = $2
RETURNING version_no`
	if err := tx.QueryRowContext(ctx, insertVersion,
		version.ID, section.ID, version.Markdown, version.CreatedAt,
	).Scan(&version.VersionNo); err != nil {
		return Version{}, err
	}

	if err := tx.Commit(); err != nil {
		return Version{}, err
	}
	version.SectionID = section.ID
	return version, nil
}

func (r *PGRepo) GetByID(ctx context.Context, sectionID string) (Section, error) {
	const query = `
SELECT id, resume_id, title, markdown, sort_order, created_at, updated_at
FROM sections
WHERE id = $1
LIMIT 1`
	var section Section
	err := r.DB.QueryRowContext(ctx, query, sectionID).Scan(
		&section.ID, &section.ResumeID, &section.Title, &section.Markdown,
		&section.Order, &section.CreatedAt, &section.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Section{}, ErrNotFound
		}
		return Section{}, err
	}
	return section, nil
}

func (r *PGRepo) ListByResume(ctx context.Context, resumeID string) ([]Section, error) {
	const query = `
SELECT id, resume_id, title, markdown, sort_order, created_at, updated_at
FROM sections
WHERE resume_id = $1
ORDER BY sort_order, created_at`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Section{}
	for rows.Next() {
		var section Section
		if err := rows.Scan(
			&section.ID, &section.ResumeID, &section.Title, &section.Markdown,
			&section.Order, &section.CreatedAt, &section.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, section)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateOrder(ctx context.Context, resumeID, sectionID string, order int, updatedAt time.Time) (bool, error) {
	const query = `
UPDATE sections
SET sort_order = $3, updated_at = $4
WHERE id = $1 AND resume_id = $2`
	res, err := r.DB.ExecContext(ctx, query, sectionID, resumeID, order, updatedAt)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PGRepo) Delete(ctx context.Context, sectionID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM sections WHERE id = $1`, sectionID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM section_versions WHERE section_id = $1`, sectionID); err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *PGRepo) ListHistory(ctx context.Context, sectionID string) ([]Version, error) {
	const query = `
SELECT id, section_id, version_no, markdown, created_at
FROM section_versions
WHERE section_id = $1
ORDER BY version_no DESC`
	rows, err := r.DB.QueryContext(ctx, query, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Version{}
	for rows.Next() {
		var version Version
		if err := rows.Scan(
			&version.ID, &version.SectionID, &version.VersionNo,
			&version.Markdown, &version.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, version)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetVersion(ctx context.Context, versionID string) (Version, error) {
	const query = `
SELECT id, section_id, version_no, markdown, created_at
FROM section_versions
WHERE id = $1
LIMIT 1`
	var version Version
	err := r.DB.QueryRowContext(ctx, query, versionID).Scan(
		&version.ID, &version.SectionID, &version.VersionNo,
		&version.Markdown, &version.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Version{}, ErrNotFound
		}
		return Version{}, err
	}
	return version, nil
}
