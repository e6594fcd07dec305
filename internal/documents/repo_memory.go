package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores generated documents and their bytes in memory and is safe
// for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]GeneratedDocument
	content map[string][]byte
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]GeneratedDocument),
		content: make(map[string][]byte),
	}
}

// Save stores the document metadata and bytes together.
func (r *MemoryRepo) Save(ctx context.Context, doc GeneratedDocument, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(content))
	copy(stored, content)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[doc.ID] = doc
	r.content[doc.ID] = stored
	return nil
}

// FindByID returns document metadata by ID.
func (r *MemoryRepo) FindByID(ctx context.Context, documentID string) (GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedDocument{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.byID[documentID]
	if !ok {
		return GeneratedDocument{}, ErrNotFound
	}
	return doc, nil
}

// FindByResumeID returns the resume's documents, newest first.
func (r *MemoryRepo) FindByResumeID(ctx context.Context, resumeID string) ([]GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []GeneratedDocument{}
	for _, doc := range r.byID {
		if doc.ResumeID == resumeID {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GeneratedAt.Equal(out[j].GeneratedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].GeneratedAt.After(out[j].GeneratedAt)
	})
	return out, nil
}

// GetContent returns the stored bytes for a document.
func (r *MemoryRepo) GetContent(ctx context.Context, documentID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	content, ok := r.content[documentID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}
