package driven

import (
	"context"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// SnapshotStore persists exported engine snapshots for external
// observability. The engine itself never reads snapshots back into its
// live state.
type SnapshotStore interface {
	// Save persists a snapshot.
	Save(ctx context.Context, snapshot *domain.Snapshot) error

	// Get retrieves a snapshot by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Snapshot, error)

	// List returns snapshot IDs with their creation times, newest first.
	List(ctx context.Context) ([]SnapshotInfo, error)

	// Close releases the underlying storage.
	Close() error
}

// SnapshotInfo summarises a stored snapshot.
type SnapshotInfo struct {
	// ID is the snapshot identity.
	ID string

	// CreatedAt is when the snapshot was taken.
	CreatedAt string

	// Records is the number of records the snapshot holds.
	Records int
}
