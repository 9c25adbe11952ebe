package repositories

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// FileRepositoryFacade defines storage operations for uploaded files.
// Files are immutable once saved.
type FileRepositoryFacade interface {
	// SaveFile persists an uploaded file.
	SaveFile(ctx context.Context, file domain.StoredFile) error

	// FindFileByName retrieves a file, including its raw bytes, by filename.
	FindFileByName(ctx context.Context, filename string) (*domain.StoredFile, error)
}
