package templates

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores templates in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Template
}

// NewMemoryRepo constructs a MemoryRepo preloaded with the given templates.
func NewMemoryRepo(seed ...Template) *MemoryRepo {
	repo := &MemoryRepo{byID: make(map[string]Template)}
	for _, template := range seed {
		repo.byID[template.ID] = template
	}
	return repo
}

// Create stores a template.
func (r *MemoryRepo) Create(ctx context.Context, template Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[template.ID] = template
	return nil
}

// GetByID returns a template by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, templateID string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	template, ok := r.byID[templateID]
	if !ok {
		return Template{}, ErrNotFound
	}
	return template, nil
}

// List returns all templates sorted by name.
func (r *MemoryRepo) List(ctx context.Context) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, 0, len(r.byID))
	for _, template := range r.byID {
		out = append(out, template)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
