package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
)

type PgxCounterRepository struct {
	BaseRepository
}

func NewPgxCounterRepository(db *pgxpool.Pool) *PgxCounterRepository {
	return &PgxCounterRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxCounterRepository implements portsrepo.CounterRepositoryFacade
var _ portsrepo.CounterRepositoryFacade = (*PgxCounterRepository)(nil)

// Next atomically increments and returns the named counter. The upsert makes
// allocation race-free under concurrent callers; a deleted entity never
// returns its id to the pool.
func (r *PgxCounterRepository) Next(ctx context.Context, name string) (int64, error) {
	query := `
        INSERT INTO counters (name, value)
        VALUES ($1, 1)
        ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
        RETURNING value;
    `
	var value int64
	if err := r.Pool.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance counter %q: %w", name, err)
	}
	return value, nil
}
