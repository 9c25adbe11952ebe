package mapping

import (
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	"github.com/myanimeverse/animeverse_backend/internal/models"
)

// ToModelFile converts a domain StoredFile to a model File
func ToModelFile(d domain.StoredFile) models.File {
	return models.File{
		Filename:     d.Filename,
		OriginalName: d.OriginalName,
		ContentType:  d.ContentType,
		Data:         d.Data,
		Size:         d.Size,
		UploadedAt:   d.UploadedAt,
	}
}

// ToDomainFile converts a model File to a domain StoredFile
func ToDomainFile(m models.File) domain.StoredFile {
	return domain.StoredFile{
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		ContentType:  m.ContentType,
		Data:         m.Data,
		Size:         m.Size,
		UploadedAt:   m.UploadedAt,
	}
}
