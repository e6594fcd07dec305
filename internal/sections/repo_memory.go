package sections

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores sections and their version history in memory behind one
// lock, so section writes and history appends are observed atomically.
type MemoryRepo struct {
	mu                sync.RWMutex
	byID              map[string]Section
	versionsBySection map[string][]Version // append order, ascending version_no
	versionsByID      map[string]Version
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:              make(map[string]Section),
		versionsBySection: make(map[string][]Version),
		versionsByID:      make(map[string]Version),
	}
}

// CreateWithVersion stores the section and version 1 of its history.
func (r *MemoryRepo) CreateWithVersion(ctx context.Context, section Section, version Version) (Version, error) {
	if err := ctx.Err(); err != nil {
		return Version{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	version.SectionID = section.ID
	version.VersionNo = 1
	r.byID[section.ID] = section
	r.versionsBySection[section.ID] = append(r.versionsBySection[section.ID], version)
	r.versionsByID[version.ID] = version
	return version, nil
}

// UpdateWithVersion overwrites the section and appends a history entry at latest+1.
func (r *MemoryRepo) UpdateWithVersion(ctx context.Context, section Section, version Version) (Version, error) {
	if err := ctx.Err(); err != nil {
		return Version{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[section.ID]; !ok {
		return Version{}, ErrNotFound
	}

	version.SectionID = section.ID
	version.VersionNo = r.latestVersionNoLocked(section.ID) + 1
	r.byID[section.ID] = section
	r.versionsBySection[section.ID] = append(r.versionsBySection[section.ID], version)
	r.versionsByID[version.ID] = version
	return version, nil
}

// GetByID returns a section by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, sectionID string) (Section, error) {
	if err := ctx.Err(); err != nil {
		return Section{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	section, ok := r.byID[sectionID]
	if !ok {
		return Section{}, ErrNotFound
	}
	return section, nil
}

// ListByResume returns the resume's sections ascending by display order.
func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string) ([]Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Section{}
	for _, section := range r.byID {
		if section.ResumeID == resumeID {
			out = append(out, section)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order == out[j].Order {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

// UpdateOrder sets a section's display order if it belongs to resumeID.
func (r *MemoryRepo) UpdateOrder(ctx context.Context, resumeID, sectionID string, order int, updatedAt time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	section, ok := r.byID[sectionID]
	if !ok || section.ResumeID != resumeID {
		return false, nil
	}
	section.Order = order
	section.UpdatedAt = updatedAt
	r.byID[sectionID] = section
	return true, nil
}

// Delete removes the section and its version history.
func (r *MemoryRepo) Delete(ctx context.Context, sectionID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[sectionID]; !ok {
		return false, nil
	}
	delete(r.byID, sectionID)
	for _, version := range r.versionsBySection[sectionID] {
		delete(r.versionsByID, version.ID)
	}
	delete(r.versionsBySection, sectionID)
	return true, nil
}

// ListHistory returns the section's versions descending by version number.
func (r *MemoryRepo) ListHistory(ctx context.Context, sectionID string) ([]Version, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.versionsBySection[sectionID]
	out := make([]Version, len(stored))
	copy(out, stored)
	sort.Slice(out, func(i, j int) bool {
		return out[i].VersionNo > out[j].VersionNo
	})
	return out, nil
}

// GetVersion returns a section version by ID.
func (r *MemoryRepo) GetVersion(ctx context.Context, versionID string) (Version, error) {
	if err := ctx.Err(); err != nil {
		return Version{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	version, ok := r.versionsByID[versionID]
	if !ok {
		return Version{}, ErrNotFound
	}
	return version, nil
}

func (r *MemoryRepo) latestVersionNoLocked(sectionID string) int {
	latest := 0
	for _, version := range r.versionsBySection[sectionID] {
		if version.VersionNo > latest {
			latest = version.VersionNo
		}
	}
	return latest
}
