// Package memory provides the in-memory snapshot repository. It is the
// default backend: a single process owns all state, which matches the
// one-writer snapshot model exactly.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
)

// Compile-time check.
var _ restaurant.Repository = (*RestaurantRepo)(nil)

// RestaurantRepo keeps restaurant snapshots in a map. Stored snapshots are
// cloned on the way in and out, so callers can never alias internal state.
type RestaurantRepo struct {
	mu        sync.RWMutex
	snapshots map[string]*restaurant.Restaurant
}

// NewRestaurantRepo creates an empty in-memory repository.
func NewRestaurantRepo() *RestaurantRepo {
	return &RestaurantRepo{snapshots: make(map[string]*restaurant.Restaurant)}
}

// Get loads the current snapshot.
func (r *RestaurantRepo) Get(_ context.Context, id string) (*restaurant.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.snapshots[id]
	if !ok {
		return nil, apperror.NewNotFound("restaurant", id)
	}
	return snap.Clone(), nil
}

// Save replaces the stored snapshot.
func (r *RestaurantRepo) Save(_ context.Context, snap *restaurant.Restaurant) error {
	if snap.ID == "" {
		return apperror.NewValidation("restaurant id is required").
			WithDetail("field", "id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snap.ID] = snap.Clone()
	return nil
}

// List returns all snapshots ordered by name for stable output.
func (r *RestaurantRepo) List(_ context.Context) ([]*restaurant.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*restaurant.Restaurant, 0, len(r.snapshots))
	for _, snap := range r.snapshots {
		out = append(out, snap.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
