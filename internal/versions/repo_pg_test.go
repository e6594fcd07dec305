package versions

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateAllocatesVersionNo(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	version := ResumeVersion{
		ID:         "ver-1",
		ResumeID:   "resume-1",
		Label:      "pre-apply",
		Markdown:   "# Hello",
		TemplateID: "modern",
		CreatedAt:  now,
	}

	mock.ExpectQuery("INSERT INTO resume_versions").
		WithArgs(version.ID, version.ResumeID, version.Label, version.Markdown, version.TemplateID, version.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"version_no"}).AddRow(3))

	created, err := repo.Create(context.Background(), version)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.VersionNo != 3 {
		t.Fatalf("expected version 3, got %d", created.VersionNo)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateStoresBlankOptionalFieldsAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO resume_versions").
		WithArgs("ver-1", "resume-1", nil, "# Hello", nil, now).
		WillReturnRows(sqlmock.NewRows([]string{"version_no"}).AddRow(1))

	created, err := repo.Create(context.Background(), ResumeVersion{
		ID:        "ver-1",
		ResumeID:  "resume-1",
		Markdown:  "# Hello",
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.VersionNo != 1 {
		t.Fatalf("expected version 1, got %d", created.VersionNo)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
