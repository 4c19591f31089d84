package restaurant

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/domain/dish"
	"github.com/techbytecraft/QSR/internal/domain/inventory"
	"github.com/techbytecraft/QSR/pkg/logger"
)

var tracer = otel.Tracer("qsr/restaurant")

// Compile-time checks that Store satisfies the domain service ports.
var (
	_ inventory.Repository = (*Store)(nil)
	_ dish.Repository      = (*Store)(nil)
)

// Store owns all mutations to restaurant snapshots. Every write runs as
// clone, edit, save under one lock, so a snapshot is replaced wholesale and
// never observed mid-edit. Reads go straight to the repository.
type Store struct {
	mu   sync.Mutex
	repo Repository
}

// NewStore creates a snapshot store over a repository.
func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Get returns the current snapshot of a restaurant.
func (s *Store) Get(ctx context.Context, id string) (*Restaurant, error) {
	return s.repo.Get(ctx, id)
}

// List returns all restaurant snapshots.
func (s *Store) List(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.List(ctx)
}

// Create saves a brand new restaurant snapshot. Fails on id collision.
func (s *Store) Create(ctx context.Context, r *Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.Get(ctx, r.ID); err == nil {
		return apperror.NewConflict("restaurant already exists").
			WithDetail("id", r.ID)
	} else if !apperror.IsNotFound(err) {
		return err
	}
	return s.repo.Save(ctx, r)
}

// update is the single mutation path: load, clone, apply fn, save.
func (s *Store) update(ctx context.Context, id, op string, fn func(*Restaurant) error) (*Restaurant, error) {
	ctx, span := tracer.Start(ctx, "snapshot.update",
		trace.WithAttributes(
			attribute.String("restaurant.id", id),
			attribute.String("snapshot.op", op),
		))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		logger.Error(ctx, "snapshot save failed", "restaurant_id", id, "op", op, "error", err)
		return nil, err
	}

	return next, nil
}

// --- inventory.Repository ---

// Catalog returns the current inventory catalog.
func (s *Store) Catalog(ctx context.Context, restaurantID string) (inventory.Catalog, error) {
	r, err := s.repo.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return r.Inventory, nil
}

// UpdateCatalog swaps in a new catalog and bumps CatalogVersion.
func (s *Store) UpdateCatalog(ctx context.Context, restaurantID string, fn func(inventory.Catalog) (inventory.Catalog, error)) (inventory.Catalog, error) {
	next, err := s.update(ctx, restaurantID, "catalog", func(r *Restaurant) error {
		c, err := fn(r.Inventory)
		if err != nil {
			return err
		}
		r.Inventory = c
		r.CatalogVersion++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next.Inventory, nil
}

// --- dish.Repository ---

// Menu returns the current menu.
func (s *Store) Menu(ctx context.Context, restaurantID string) (dish.Menu, error) {
	r, err := s.repo.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return r.Dishes, nil
}

// UpdateDish applies fn to one dish with the catalog of the same snapshot.
func (s *Store) UpdateDish(ctx context.Context, restaurantID, dishID string, fn func(dish.Dish, inventory.Catalog) (dish.Dish, error)) (dish.Dish, error) {
	var updated dish.Dish
	_, err := s.update(ctx, restaurantID, "dish", func(r *Restaurant) error {
		for i, d := range r.Dishes {
			if d.ID != dishID {
				continue
			}
			next, err := fn(d, r.Inventory)
			if err != nil {
				return err
			}
			r.Dishes[i] = next
			updated = next
			return nil
		}
		return apperror.NewNotFound("dish", dishID)
	})
	if err != nil {
		return dish.Dish{}, err
	}
	return updated, nil
}

// --- tasks ---

// AddTask appends a task with the next monotonic id.
func (s *Store) AddTask(ctx context.Context, restaurantID, text string) (Task, error) {
	if text == "" {
		return Task{}, apperror.NewValidation("task text is required").
			WithDetail("field", "text")
	}

	var created Task
	_, err := s.update(ctx, restaurantID, "task.add", func(r *Restaurant) error {
		r.NextTaskID++
		created = Task{ID: r.NextTaskID, Text: text}
		r.Tasks = append(r.Tasks, created)
		return nil
	})
	if err != nil {
		return Task{}, err
	}
	return created, nil
}

// ToggleTask flips a task's completion flag.
func (s *Store) ToggleTask(ctx context.Context, restaurantID string, taskID int64) (Task, error) {
	var toggled Task
	_, err := s.update(ctx, restaurantID, "task.toggle", func(r *Restaurant) error {
		for i, t := range r.Tasks {
			if t.ID == taskID {
				r.Tasks[i].Completed = !t.Completed
				toggled = r.Tasks[i]
				return nil
			}
		}
		return apperror.NewNotFound("task", taskID)
	})
	if err != nil {
		return Task{}, err
	}
	return toggled, nil
}

// DeleteTask removes a task. Idempotent.
func (s *Store) DeleteTask(ctx context.Context, restaurantID string, taskID int64) error {
	_, err := s.update(ctx, restaurantID, "task.delete", func(r *Restaurant) error {
		next := make([]Task, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			if t.ID != taskID {
				next = append(next, t)
			}
		}
		r.Tasks = next
		return nil
	})
	return err
}
