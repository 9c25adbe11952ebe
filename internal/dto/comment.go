package dto

import (
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// CreateCommentRequest defines the body of POST /comments.
type CreateCommentRequest struct {
	PostID int64  `json:"postId" binding:"required"`
	Body   string `json:"comments" binding:"required,notblank"`
}

// UpdateCommentRequest defines the body of PUT /comments/:id.
type UpdateCommentRequest struct {
	UpdatedComment string `json:"updatedComment"`
}

// CommentResponse is a comment flattened with its author's public profile
// fields.
type CommentResponse struct {
	CommentID      int64  `json:"commentId"`
	PostID         int64  `json:"postId"`
	Body           string `json:"comments"`
	Date           string `json:"date"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// ToCommentResponse converts a joined comment to its response shape.
func ToCommentResponse(c *domain.CommentWithAuthor) CommentResponse {
	return CommentResponse{
		CommentID:      c.CommentID,
		PostID:         c.PostID,
		Body:           c.Body,
		Date:           c.Date.UTC().Format("2006-01-02T15:04:05.000Z"),
		Username:       c.Username,
		Name:           c.AuthorName,
		Email:          c.AuthorEmail,
		ProfilePicture: c.ProfilePicture,
	}
}

// ToCommentResponseSlice converts a slice of joined comments.
func ToCommentResponseSlice(cs []domain.CommentWithAuthor) []CommentResponse {
	out := make([]CommentResponse, len(cs))
	for i := range cs {
		out[i] = ToCommentResponse(&cs[i])
	}
	return out
}
