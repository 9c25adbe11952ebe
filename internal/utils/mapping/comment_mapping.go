package mapping

import (
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	"github.com/myanimeverse/animeverse_backend/internal/models"
)

// ToModelComment converts a domain Comment to a model Comment
func ToModelComment(d domain.Comment) models.Comment {
	return models.Comment{
		CommentID: d.CommentID,
		PostID:    d.PostID,
		UserID:    d.OwnerID,
		Body:      d.Body,
		Date:      d.Date,
	}
}

// ToDomainComment converts a model Comment to a domain Comment
func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID: m.CommentID,
		PostID:    m.PostID,
		OwnerID:   m.UserID,
		Body:      m.Body,
		Date:      m.Date,
	}
}
