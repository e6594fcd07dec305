package versions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores resume versions in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byID     map[string]ResumeVersion
	byResume map[string][]ResumeVersion
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:     make(map[string]ResumeVersion),
		byResume: make(map[string][]ResumeVersion),
	}
}

// Create assigns the next version number for the resume and stores the snapshot.
func (r *MemoryRepo) Create(ctx context.Context, version ResumeVersion) (ResumeVersion, error) {
	if err := ctx.Err(); err != nil {
		return ResumeVersion{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	latest := 0
	for _, existing := range r.byResume[version.ResumeID] {
		if existing.VersionNo > latest {
			latest = existing.VersionNo
		}
	}
	version.VersionNo = latest + 1
	r.byID[version.ID] = version
	r.byResume[version.ResumeID] = append(r.byResume[version.ResumeID], version)
	return version, nil
}

// GetByID returns a version snapshot by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, versionID string) (ResumeVersion, error) {
	if err := ctx.Err(); err != nil {
		return ResumeVersion{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	version, ok := r.byID[versionID]
	if !ok {
		return ResumeVersion{}, ErrNotFound
	}
	return version, nil
}

// ListByResume returns the resume's snapshots ascending by version number.
func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string) ([]ResumeVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byResume[resumeID]
	out := make([]ResumeVersion, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].VersionNo < out[j].VersionNo
	})
	return out, nil
}
