package sections

import (
	"context"
	"time"
)

// Repo owns sections and their version history together, so a section and a
// new history entry are always stored as one atomic step. Version numbers are
// assigned by the repo under its own synchronization and are gapless per
// section.
type Repo interface {
	// CreateWithVersion stores a new section together with version 1 of its
	// history. The version's VersionNo is assigned by the repo.
	CreateWithVersion(ctx context.Context, section Section, version Version) (Version, error)

	// UpdateWithVersion overwrites the section and appends a history entry at
	// latest+1. Returns ErrNotFound if the section does not exist.
	UpdateWithVersion(ctx context.Context, section Section, version Version) (Version, error)

	GetByID(ctx context.Context, sectionID string) (Section, error)

	// ListByResume returns the resume's sections ascending by display order.
	ListByResume(ctx context.Context, resumeID string) ([]Section, error)

	// UpdateOrder sets a section's display order if it belongs to resumeID.
	// Reports whether a matching section was updated.
	UpdateOrder(ctx context.Context, resumeID, sectionID string, order int, updatedAt time.Time) (bool, error)

	// Delete removes the section and its version history. Reports whether the
	// section existed.
	Delete(ctx context.Context, sectionID string) (bool, error)

	// ListHistory returns the section's versions descending by version number.
	ListHistory(ctx context.Context, sectionID string) ([]Version, error)

	GetVersion(ctx context.Context, versionID string) (Version, error)
}
