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

// postServiceImpl implements the PostSvcFacade interface
type postServiceImpl struct {
	BaseService
	postRepo    portsrepo.PostRepositoryFacade
	userRepo    portsrepo.UserReader
	counterRepo portsrepo.CounterRepositoryFacade
}

func NewPostService(postRepo portsrepo.PostRepositoryFacade, userRepo portsrepo.UserReader, counterRepo portsrepo.CounterRepositoryFacade) portssvc.PostSvcFacade {
	return &postServiceImpl{
		postRepo:    postRepo,
		userRepo:    userRepo,
		counterRepo: counterRepo,
	}
}

// Ensure postServiceImpl implements the PostSvcFacade interface
var _ portssvc.PostSvcFacade = (*postServiceImpl)(nil)

// resolveActingUser maps the session's public id to the internal identity
// that ownership columns reference.
func (s *postServiceImpl) resolveActingUser(ctx context.Context, actingUserID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByPublicID(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// The session outlived the account.
			return nil, apperrors.NewUnauthorizedError("User not found. Please login again.")
		}
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}
	return user, nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, req dto.CreatePostRequest, actingUserID int64) (int64, error) {
	user, err := s.resolveActingUser(ctx, actingUserID)
	if err != nil {
		return 0, err
	}

	postID, err := s.counterRepo.Next(ctx, portsrepo.CounterPosts)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate post id")
		return 0, fmt.Errorf("failed to allocate post id: %w", err)
	}

	now := time.Now().UTC()
	post := domain.Post{
		PostID:        postID,
		Title:         req.Title,
		Description:   req.Description,
		Picture:       req.Picture,
		DownloadLinks: req.DownloadLinks,
		Genres:        req.Genres,
		Category:      req.Category,
		OwnerID:       user.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.postRepo.SavePost(ctx, post); err != nil {
		s.LogError(ctx, err, "Failed to save post", slog.Int64("post_id", postID))
		if errors.Is(err, apperrors.ErrDuplicate) {
			return 0, apperrors.NewConflictError("Post ID conflict. Please try again.")
		}
		return 0, err
	}

	s.LogInfo(ctx, "Post created", slog.Int64("post_id", postID), slog.Int64("user_id", actingUserID))
	return postID, nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context, category string) ([]domain.PostWithAuthor, error) {
	// "All" is the frontend's no-filter sentinel.
	if category == "All" {
		category = ""
	}
	posts, err := s.postRepo.FindPosts(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID int64) (*domain.PostWithAuthor, error) {
	post, err := s.postRepo.FindPostWithAuthor(ctx, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ownedPost loads a post and enforces that the acting user owns it.
func (s *postServiceImpl) ownedPost(ctx context.Context, postID int64, actingUserID int64, forbiddenMsg string) (*domain.Post, error) {
	user, err := s.resolveActingUser(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Post not found")
		}
		return nil, fmt.Errorf("failed to load post for ownership check: %w", err)
	}

	if post.OwnerID != user.ID {
		return nil, apperrors.NewForbiddenError(forbiddenMsg)
	}
	return post, nil
}

func (s *postServiceImpl) ReplacePost(ctx context.Context, postID int64, req dto.CreatePostRequest, actingUserID int64) (*domain.PostWithAuthor, error) {
	post, err := s.ownedPost(ctx, postID, actingUserID, "Unauthorized: You can only update your own posts")
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Description = req.Description
	post.Picture = req.Picture
	post.DownloadLinks = req.DownloadLinks
	post.Genres = req.Genres
	post.Category = req.Category
	post.UpdatedAt = time.Now().UTC()

	if err := s.postRepo.UpdatePost(ctx, *post); err != nil {
		s.LogError(ctx, err, "Failed to update post", slog.Int64("post_id", postID))
		return nil, err
	}

	return s.postRepo.FindPostWithAuthor(ctx, postID)
}

func (s *postServiceImpl) PatchPost(ctx context.Context, postID int64, req dto.PatchPostRequest, actingUserID int64) (*domain.PostWithAuthor, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("No valid fields provided for update")
	}

	post, err := s.ownedPost(ctx, postID, actingUserID, "Unauthorized: You can only update your own posts")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Picture != nil {
		post.Picture = *req.Picture
	}
	if req.DownloadLinks != nil {
		post.DownloadLinks = *req.DownloadLinks
	}
	if req.Genres != nil {
		post.Genres = *req.Genres
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.postRepo.UpdatePost(ctx, *post); err != nil {
		s.LogError(ctx, err, "Failed to patch post", slog.Int64("post_id", postID))
		return nil, err
	}

	return s.postRepo.FindPostWithAuthor(ctx, postID)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, postID int64, actingUserID int64) error {
	if _, err := s.ownedPost(ctx, postID, actingUserID, "You can only delete your own posts"); err != nil {
		return err
	}

	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		s.LogError(ctx, err, "Failed to delete post", slog.Int64("post_id", postID))
		return err
	}

	s.LogInfo(ctx, "Post deleted", slog.Int64("post_id", postID), slog.Int64("user_id", actingUserID))
	return nil
}

func (s *postServiceImpl) ListMyPosts(ctx context.Context, actingUserID int64) ([]domain.PostWithAuthor, error) {
	user, err := s.resolveActingUser(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.FindPostsByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list own posts: %w", err)
	}
	return posts, nil
}
