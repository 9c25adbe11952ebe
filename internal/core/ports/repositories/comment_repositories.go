package repositories

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// CommentReader defines read operations for comment data
type CommentReader interface {
	// FindCommentByID retrieves a comment by public sequential identifier.
	FindCommentByID(ctx context.Context, commentID int64) (*domain.Comment, error)

	// FindCommentsByPost retrieves a post's comments joined with author
	// fields, newest first.
	FindCommentsByPost(ctx context.Context, postID int64) ([]domain.CommentWithAuthor, error)
}

// CommentWriter defines write operations for comment data
type CommentWriter interface {
	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// UpdateComment replaces a comment's body and bumps its timestamp.
	UpdateComment(ctx context.Context, commentID int64, body string) error

	// DeleteComment hard-deletes a comment.
	DeleteComment(ctx context.Context, commentID int64) error
}

// CommentRepositoryFacade combines all comment-related repository interfaces
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
}
