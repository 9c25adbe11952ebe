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
	"github.com/myanimeverse/animeverse_backend/internal/dto"
)

// commentServiceImpl implements the CommentSvcFacade interface
type commentServiceImpl struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
	postRepo    portsrepo.PostReader
	userRepo    portsrepo.UserReader
	counterRepo portsrepo.CounterRepositoryFacade
}

func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, postRepo portsrepo.PostReader, userRepo portsrepo.UserReader, counterRepo portsrepo.CounterRepositoryFacade) portssvc.CommentSvcFacade {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		counterRepo: counterRepo,
	}
}

// Ensure commentServiceImpl implements the CommentSvcFacade interface
var _ portssvc.CommentSvcFacade = (*commentServiceImpl)(nil)

func (s *commentServiceImpl) resolveActingUser(ctx context.Context, actingUserID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByPublicID(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found. Please login again.")
		}
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}
	return user, nil
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, req dto.CreateCommentRequest, actingUserID int64) (int64, error) {
	user, err := s.resolveActingUser(ctx, actingUserID)
	if err != nil {
		return 0, err
	}

	// Comments only attach to posts that exist.
	if _, err := s.postRepo.FindPostByID(ctx, req.PostID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.NewNotFoundError("Post not found")
		}
		return 0, fmt.Errorf("failed to check post for comment: %w", err)
	}

	commentID, err := s.counterRepo.Next(ctx, portsrepo.CounterComments)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate comment id")
		return 0, fmt.Errorf("failed to allocate comment id: %w", err)
	}

	comment := domain.Comment{
		CommentID: commentID,
		PostID:    req.PostID,
		OwnerID:   user.ID,
		Body:      req.Body,
		Date:      time.Now().UTC(),
	}

	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		s.LogError(ctx, err, "Failed to save comment", slog.Int64("comment_id", commentID))
		return 0, err
	}

	s.LogInfo(ctx, "Comment created", slog.Int64("comment_id", commentID), slog.Int64("post_id", req.PostID))
	return commentID, nil
}

func (s *commentServiceImpl) ListComments(ctx context.Context, postID int64) ([]domain.CommentWithAuthor, error) {
	comments, err := s.commentRepo.FindCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// ownedComment loads a comment and enforces that the acting user owns it.
func (s *commentServiceImpl) ownedComment(ctx context.Context, commentID int64, actingUserID int64, forbiddenMsg string) (*domain.Comment, error) {
	user, err := s.resolveActingUser(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Comment not found")
		}
		return nil, fmt.Errorf("failed to load comment for ownership check: %w", err)
	}

	if comment.OwnerID != user.ID {
		return nil, apperrors.NewForbiddenError(forbiddenMsg)
	}
	return comment, nil
}

func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID int64, body string, actingUserID int64) (*domain.Comment, error) {
	if body == "" {
		return nil, apperrors.NewBadRequestError("Comment text is required")
	}

	comment, err := s.ownedComment(ctx, commentID, actingUserID, "You can only edit your own comments")
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.UpdateComment(ctx, commentID, body); err != nil {
		s.LogError(ctx, err, "Failed to update comment", slog.Int64("comment_id", commentID))
		return nil, err
	}

	comment.Body = body
	comment.Date = time.Now().UTC()
	return comment, nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID int64, actingUserID int64) error {
	if _, err := s.ownedComment(ctx, commentID, actingUserID, "You can only delete your own comments"); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		s.LogError(ctx, err, "Failed to delete comment", slog.Int64("comment_id", commentID))
		return err
	}

	s.LogInfo(ctx, "Comment deleted", slog.Int64("comment_id", commentID), slog.Int64("user_id", actingUserID))
	return nil
}
