package documents

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"resume-portal/internal/shared/storage/object"
)

// PGRepo is a Postgres implementation of Repo. Metadata rows live in the
// generated_documents table while the rendered bytes go to the object store
// under a per-resume key.
type PGRepo struct {
	DB    *sql.DB
	Store object.ObjectStore
}

func storageKey(doc GeneratedDocument) string {
	return fmt.Sprintf("documents/%s/%s.docx", doc.ResumeID, doc.ID)
}

func (r *PGRepo) Save(ctx context.Context, doc GeneratedDocument, content []byte) error {
	key := storageKey(doc)
	size, err := r.Store.Put(ctx, key, doc.ContentType, bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("store document content: %w", err)
	}
	if size > 0 {
		doc.SizeBytes = size
	}

	const query = `
INSERT INTO generated_documents (id, resume_id, version_id, content_type, storage_key, size_bytes, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.DB.ExecContext(ctx, query,
		doc.ID,
		doc.ResumeID,
		nullableString(doc.VersionID),
		doc.ContentType,
		key,
		doc.SizeBytes,
		doc.GeneratedAt,
	)
	return err
}

func (r *PGRepo) FindByID(ctx context.Context, documentID string) (GeneratedDocument, error) {
	const query = `
SELECT id, resume_id, version_id, content_type, size_bytes, generated_at
FROM generated_documents
WHERE id = $1
LIMIT 1`
	var doc GeneratedDocument
	var versionID sql.NullString
	err := r.DB.QueryRowContext(ctx, query, documentID).Scan(
		&doc.ID,
		&doc.ResumeID,
		&versionID,
		&doc.ContentType,
		&doc.SizeBytes,
		&doc.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GeneratedDocument{}, ErrNotFound
		}
		return GeneratedDocument{}, err
	}
	if versionID.Valid {
		doc.VersionID = versionID.String
	}
	return doc, nil
}

func (r *PGRepo) FindByResumeID(ctx context.Context, resumeID string) ([]GeneratedDocument, error) {
	const query = `
SELECT id, resume_id, version_id, content_type, size_bytes, generated_at
FROM generated_documents
WHERE resume_id = $1
ORDER BY generated_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GeneratedDocument{}
	for rows.Next() {
		var doc GeneratedDocument
		var versionID sql.NullString
		if err := rows.Scan(
			&doc.ID,
			&doc.ResumeID,
			&versionID,
			&doc.ContentType,
			&doc.SizeBytes,
			&doc.GeneratedAt,
		); err != nil {
			return nil, err
		}
		if versionID.Valid {
			doc.VersionID = versionID.String
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetContent(ctx context.Context, documentID string) ([]byte, error) {
	doc, err := r.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	rc, err := r.Store.Open(ctx, storageKey(doc))
	if err != nil {
		return nil, fmt.Errorf("open document content: %w", err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
