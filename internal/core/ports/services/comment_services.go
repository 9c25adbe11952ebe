package services

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
)

// CommentSvcFacade defines operations on comments. Mutations are
// ownership-checked against the comment's owning-user foreign key.
type CommentSvcFacade interface {
	// CreateComment creates a comment on an existing post and returns its
	// sequential identifier.
	CreateComment(ctx context.Context, req dto.CreateCommentRequest, actingUserID int64) (int64, error)

	// ListComments retrieves a post's comments with author fields, newest
	// first. Unauthenticated.
	ListComments(ctx context.Context, postID int64) ([]domain.CommentWithAuthor, error)

	// UpdateComment replaces an owned comment's body.
	UpdateComment(ctx context.Context, commentID int64, body string, actingUserID int64) (*domain.Comment, error)

	// DeleteComment hard-deletes an owned comment.
	DeleteComment(ctx context.Context, commentID int64, actingUserID int64) error
}
