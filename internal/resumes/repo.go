package resumes

import "context"

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, resumeID string) (Resume, error)
	List(ctx context.Context) ([]Resume, error)
	Update(ctx context.Context, resume Resume) error
}
