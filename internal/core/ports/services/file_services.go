package services

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// FileSvcFacade defines operations for uploaded file storage.
type FileSvcFacade interface {
	// SaveUpload stores an uploaded file and returns the stored record,
	// including the generated unique filename.
	SaveUpload(ctx context.Context, originalName, contentType string, data []byte) (*domain.StoredFile, error)

	// GetFile retrieves a stored file by filename.
	GetFile(ctx context.Context, filename string) (*domain.StoredFile, error)
}
