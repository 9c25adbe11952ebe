package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository off a shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    NewPgxUserRepository(db),
		PostRepo:    NewPgxPostRepository(db),
		CommentRepo: NewPgxCommentRepository(db),
		FileRepo:    NewPgxFileRepository(db),
		OTPRepo:     NewPgxOTPRepository(db),
		CounterRepo: NewPgxCounterRepository(db),
	}
}
