package ports

import (
	"context"

	"github.com/canopyhq/canopy/pkg/domain"
)

// SnapshotStore persists evaluated snapshots for the presentation layer.
// The engine itself never persists anything; storage is a collaborator
// concern wired in by the host.
type SnapshotStore interface {
	// Save persists a snapshot as the latest and appends it to history.
	Save(ctx context.Context, snap *domain.Snapshot) error

	// Latest returns the most recently saved snapshot.
	// Returns domain.ErrSnapshotNotFound if nothing has been saved.
	Latest(ctx context.Context) (*domain.Snapshot, error)

	// History returns up to limit snapshots, newest first.
	History(ctx context.Context, limit int) ([]*domain.Snapshot, error)
}
