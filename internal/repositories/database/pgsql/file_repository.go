package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	"github.com/myanimeverse/animeverse_backend/internal/models"
	"github.com/myanimeverse/animeverse_backend/internal/utils/mapping"
)

type PgxFileRepository struct {
	BaseRepository
}

func NewPgxFileRepository(db *pgxpool.Pool) *PgxFileRepository {
	return &PgxFileRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxFileRepository implements portsrepo.FileRepositoryFacade
var _ portsrepo.FileRepositoryFacade = (*PgxFileRepository)(nil)

func (r *PgxFileRepository) SaveFile(ctx context.Context, file domain.StoredFile) error {
	m := mapping.ToModelFile(file)
	query := `
        INSERT INTO files (filename, original_name, content_type, data, size, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query, m.Filename, m.OriginalName, m.ContentType, m.Data, m.Size, m.UploadedAt)
	if err != nil {
		if field := uniqueViolationField(err, "files"); field != "" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func (r *PgxFileRepository) FindFileByName(ctx context.Context, filename string) (*domain.StoredFile, error) {
	query := `
		SELECT filename, original_name, content_type, data, size, uploaded_at
		FROM files WHERE filename = $1;
	`
	var m models.File
	err := r.Pool.QueryRow(ctx, query, filename).Scan(
		&m.Filename,
		&m.OriginalName,
		&m.ContentType,
		&m.Data,
		&m.Size,
		&m.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find file %q: %w", filename, err)
	}
	d := mapping.ToDomainFile(m)
	return &d, nil
}
