package memory

import (
	"context"
	"sync"

	"github.com/canopyhq/canopy/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	history []*domain.Snapshot // newest last
	max     int
	mu      sync.RWMutex
}

// NewStore creates an in-memory snapshot store retaining at most max
// snapshots (0 means the default of 100).
func NewStore(max int) *Store {
	if max <= 0 {
		max = 100
	}
	return &Store{max: max}
}

// Save appends the snapshot, evicting the oldest entry when full.
func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, snap)
	if len(s.history) > s.max {
		s.history = s.history[len(s.history)-s.max:]
	}
	return nil
}

// Latest returns the most recently saved snapshot.
func (s *Store) Latest(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.history) == 0 {
		return nil, domain.ErrSnapshotNotFound
	}
	return s.history[len(s.history)-1], nil
}

// History returns up to limit snapshots, newest first.
func (s *Store) History(ctx context.Context, limit int) ([]*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.history) {
		limit = len(s.history)
	}
	out := make([]*domain.Snapshot, 0, limit)
	for i := len(s.history) - 1; i >= len(s.history)-limit; i-- {
		out = append(out, s.history[i])
	}
	return out, nil
}
