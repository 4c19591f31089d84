package restaurant

import "context"

// Repository persists whole restaurant snapshots. Implementations must
// treat Save as atomic replacement of the previous snapshot.
type Repository interface {
	// Get loads the current snapshot. Returns NewNotFound when the
	// restaurant does not exist.
	Get(ctx context.Context, id string) (*Restaurant, error)

	// Save stores a snapshot, replacing any previous one.
	Save(ctx context.Context, r *Restaurant) error

	// List returns all restaurant snapshots.
	List(ctx context.Context) ([]*Restaurant, error)
}
