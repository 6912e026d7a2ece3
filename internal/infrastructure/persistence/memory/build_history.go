// Package memory provides in-memory implementations of application ports.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/gameforge-dev/gameforge/internal/application/ports"
	"github.com/gameforge-dev/gameforge/internal/domain/entities"
	"github.com/gameforge-dev/gameforge/internal/domain/values"
)

// Ensure interface compliance
var _ ports.BuildHistory = (*BuildHistory)(nil)

// storedRecord pairs a record with its insertion order.
// BuiltAt alone cannot order builds made within one clock tick.
type storedRecord struct {
	record *entities.BuildRecord
	seq    uint64
}

// BuildHistory is an in-memory build history.
// Records live only as long as the process.
type BuildHistory struct {
	records map[uuid.UUID]storedRecord
	next    uint64
	mu      sync.RWMutex
}

// NewBuildHistory creates a new in-memory history.
func NewBuildHistory() *BuildHistory {
	return &BuildHistory{
		records: make(map[uuid.UUID]storedRecord),
	}
}

// Save stores a copy of the record. Saving an ID again replaces the record
// and makes it the newest.
func (h *BuildHistory) Save(_ context.Context, record *entities.BuildRecord) error {
	if record == nil {
		return fmt.Errorf("build record cannot be nil")
	}
	if record.ID.IsZero() {
		return fmt.Errorf("build record has no ID")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.next++
	stored := *record
	h.records[record.ID.UUID()] = storedRecord{record: &stored, seq: h.next}
	return nil
}

// FindByTheme retrieves recent builds for a theme, newest first.
func (h *BuildHistory) FindByTheme(_ context.Context, theme values.ThemeName, limit int) ([]*entities.BuildRecord, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.collect(func(r *entities.BuildRecord) bool {
		return r.Theme.Equals(theme)
	}, limit), nil
}

// List retrieves recent builds, newest first.
func (h *BuildHistory) List(_ context.Context, limit int) ([]*entities.BuildRecord, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.collect(func(*entities.BuildRecord) bool { return true }, limit), nil
}

// collect must be called with the read lock held.
func (h *BuildHistory) collect(match func(*entities.BuildRecord) bool, limit int) []*entities.BuildRecord {
	var matches []storedRecord
	for _, s := range h.records {
		if match(s.record) {
			matches = append(matches, s)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].seq > matches[j].seq
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]*entities.BuildRecord, 0, len(matches))
	for _, s := range matches {
		r := *s.record
		out = append(out, &r)
	}
	return out
}
