package mapping

import (
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	"github.com/myanimeverse/animeverse_backend/internal/models"
)

// ToModelPost converts a domain Post to a model Post
func ToModelPost(d domain.Post) models.Post {
	return models.Post{
		PostID:        d.PostID,
		Title:         d.Title,
		Description:   d.Description,
		Picture:       d.Picture,
		DownloadLinks: d.DownloadLinks,
		Genres:        d.Genres,
		Category:      d.Category,
		UserID:        d.OwnerID,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainPost converts a model Post to a domain Post
func ToDomainPost(m models.Post) domain.Post {
	return domain.Post{
		PostID:        m.PostID,
		Title:         m.Title,
		Description:   m.Description,
		Picture:       m.Picture,
		DownloadLinks: m.DownloadLinks,
		Genres:        m.Genres,
		Category:      m.Category,
		OwnerID:       m.UserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
