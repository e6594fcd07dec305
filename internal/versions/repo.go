package versions

import "context"

// Repo defines persistence operations for resume version snapshots. Create
// assigns the version number under the repo's own synchronization so numbers
// stay gapless and unique per resume.
type Repo interface {
	Create(ctx context.Context, version ResumeVersion) (ResumeVersion, error)
	GetByID(ctx context.Context, versionID string) (ResumeVersion, error)
	ListByResume(ctx context.Context, resumeID string) ([]ResumeVersion, error)
}
