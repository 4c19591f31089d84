package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/techbytecraft/QSR/internal/core/apperror"
	"github.com/techbytecraft/QSR/internal/domain/restaurant"
)

// Compile-time check.
var _ restaurant.Repository = (*RestaurantRepo)(nil)

// RestaurantRepo stores each restaurant as one jsonb snapshot row. The
// snapshot is the unit of consistency, so a single-row upsert gives the same
// atomic replacement the in-memory backend does.
type RestaurantRepo struct {
	pool *Pool
}

// NewRestaurantRepo creates a repository over a pool.
func NewRestaurantRepo(pool *Pool) *RestaurantRepo {
	return &RestaurantRepo{pool: pool}
}

// Builder returns a squirrel builder with PostgreSQL placeholder format.
func (r *RestaurantRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// EnsureSchema creates the snapshot table if missing.
func (r *RestaurantRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS restaurants (
			id         text PRIMARY KEY,
			name       text NOT NULL,
			snapshot   jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure restaurants schema: %w", err)
	}
	return nil
}

type snapshotRow struct {
	ID       string `db:"id"`
	Snapshot []byte `db:"snapshot"`
}

// Get loads a snapshot by id.
func (r *RestaurantRepo) Get(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	sql, args, err := r.Builder().
		Select("id", "snapshot").
		From("restaurants").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row snapshotRow
	if err := pgxscan.Get(ctx, r.pool, &row, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("restaurant", id)
		}
		return nil, fmt.Errorf("select restaurant: %w", err)
	}

	var snap restaurant.Restaurant
	if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
		return nil, fmt.Errorf("decode restaurant snapshot: %w", err)
	}
	return &snap, nil
}

// Save upserts the snapshot row.
func (r *RestaurantRepo) Save(ctx context.Context, snap *restaurant.Restaurant) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode restaurant snapshot: %w", err)
	}

	sql, args, err := r.Builder().
		Insert("restaurants").
		Columns("id", "name", "snapshot").
		Values(snap.ID, snap.Name, payload).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, snapshot = EXCLUDED.snapshot, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert restaurant: %w", err)
	}
	return nil
}

// List loads all snapshots ordered by name.
func (r *RestaurantRepo) List(ctx context.Context) ([]*restaurant.Restaurant, error) {
	sql, args, err := r.Builder().
		Select("id", "snapshot").
		From("restaurants").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var rows []snapshotRow
	if err := pgxscan.Select(ctx, r.pool, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select restaurants: %w", err)
	}

	out := make([]*restaurant.Restaurant, 0, len(rows))
	for _, row := range rows {
		var snap restaurant.Restaurant
		if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
			return nil, fmt.Errorf("decode restaurant snapshot %s: %w", row.ID, err)
		}
		out = append(out, &snap)
	}
	return out, nil
}
