package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
)

// allowedUploadTypes is the image allow-list enforced at upload time.
var allowedUploadTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
}

// fileServiceImpl implements the FileSvcFacade interface
type fileServiceImpl struct {
	BaseService
	fileRepo portsrepo.FileRepositoryFacade
	now      func() time.Time
}

func NewFileService(fileRepo portsrepo.FileRepositoryFacade) portssvc.FileSvcFacade {
	return &fileServiceImpl{
		fileRepo: fileRepo,
		now:      time.Now,
	}
}

// Ensure fileServiceImpl implements the FileSvcFacade interface
var _ portssvc.FileSvcFacade = (*fileServiceImpl)(nil)

func (s *fileServiceImpl) SaveUpload(ctx context.Context, originalName, contentType string, data []byte) (*domain.StoredFile, error) {
	if len(data) == 0 {
		return nil, apperrors.NewBadRequestError("No file uploaded")
	}
	if !allowedUploadTypes[contentType] {
		return nil, apperrors.NewBadRequestError("Invalid file type. Only PNG, JPG, and JPEG are allowed.")
	}

	now := s.now().UTC()
	file := domain.StoredFile{
		// Millisecond timestamp prefix keeps filenames unique across repeat
		// uploads of the same file.
		Filename:     fmt.Sprintf("%d-%s", now.UnixMilli(), originalName),
		OriginalName: originalName,
		ContentType:  contentType,
		Data:         data,
		Size:         int64(len(data)),
		UploadedAt:   now,
	}

	if err := s.fileRepo.SaveFile(ctx, file); err != nil {
		s.LogError(ctx, err, "Failed to save file", slog.String("filename", file.Filename))
		return nil, err
	}

	s.LogInfo(ctx, "File uploaded", slog.String("filename", file.Filename), slog.Int64("size", file.Size))
	return &file, nil
}

func (s *fileServiceImpl) GetFile(ctx context.Context, filename string) (*domain.StoredFile, error) {
	file, err := s.fileRepo.FindFileByName(ctx, filename)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("File not found")
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return file, nil
}
