package documents

import "context"

// Repo defines persistence for generated documents. Metadata and content are
// saved together and never updated afterwards. No cross-entity validation
// happens here; the generation orchestrator checks resume and version
// ownership before calling Save.
type Repo interface {
	Save(ctx context.Context, doc GeneratedDocument, content []byte) error
	FindByID(ctx context.Context, documentID string) (GeneratedDocument, error)

	// FindByResumeID returns the resume's documents, newest first.
	FindByResumeID(ctx context.Context, resumeID string) ([]GeneratedDocument, error)

	GetContent(ctx context.Context, documentID string) ([]byte, error)
}
