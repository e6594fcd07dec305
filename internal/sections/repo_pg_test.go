package sections

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpdateWithVersionAllocatesNextNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	section := Section{
		ID:        "section-1",
		ResumeID:  "resume-1",
		Title:     "Profile",
		Markdown:  "updated body",
		Order:     1,
		UpdatedAt: now,
	}
	version := Version{ID: "ver-2", Markdown: "updated body", CreatedAt: now}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sections").
		WithArgs(section.ID, section.Title, section.Markdown, section.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO section_versions").
		WithArgs(version.ID, section.ID, version.Markdown, version.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"version_no"}).AddRow(4))
	mock.ExpectCommit()

	stored, err := repo.UpdateWithVersion(context.Background(), section, version)
	if err != nil {
		t.Fatalf("UpdateWithVersion: %v", err)
	}
	if stored.VersionNo != 4 {
		t.Fatalf("expected version 4, got %d", stored.VersionNo)
	}
	if stored.SectionID != section.ID {
		t.Fatalf("expected section id %s, got %s", section.ID, stored.SectionID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateWithVersionUnknownSection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE sections").
		WithArgs("missing", "Profile", "body", now).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = repo.UpdateWithVersion(context.Background(),
		Section{ID: "missing", Title: "Profile", Markdown: "body", UpdatedAt: now},
		Version{ID: "ver-1", Markdown: "body", CreatedAt: now},
	)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteCascadesHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sections").
		WithArgs("section-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM section_versions").
		WithArgs("section-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	existed, err := repo.Delete(context.Background(), "section-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !existed {
		t.Fatalf("expected existed=true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateOrderChecksOwnership(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE sections").
		WithArgs("section-1", "other-resume", 1, now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateOrder(context.Background(), "other-resume", "section-1", 1, now)
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if updated {
		t.Fatalf("expected no update for foreign resume")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
