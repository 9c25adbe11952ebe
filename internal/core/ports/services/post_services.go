package services

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	"github.com/myanimeverse/animeverse_backend/internal/dto"
)

// PostReaderSvc defines unauthenticated read operations for posts
type PostReaderSvc interface {
	// ListPosts retrieves all posts with author fields, newest first.
	// Category "All" or empty means no filter.
	ListPosts(ctx context.Context, category string) ([]domain.PostWithAuthor, error)

	// GetPost retrieves a single post with author fields.
	GetPost(ctx context.Context, postID int64) (*domain.PostWithAuthor, error)
}

// PostWriterSvc defines ownership-checked mutations for posts.
// actingUserID is the public sequential id carried by the session.
type PostWriterSvc interface {
	// CreatePost creates a post owned by the acting user and returns its
	// newly allocated sequential identifier.
	CreatePost(ctx context.Context, req dto.CreatePostRequest, actingUserID int64) (int64, error)

	// ReplacePost fully replaces a post's mutable fields. Only the owner may
	// replace; others receive an authorization error.
	ReplacePost(ctx context.Context, postID int64, req dto.CreatePostRequest, actingUserID int64) (*domain.PostWithAuthor, error)

	// PatchPost applies a partial update from the allow-listed fields.
	PatchPost(ctx context.Context, postID int64, req dto.PatchPostRequest, actingUserID int64) (*domain.PostWithAuthor, error)

	// DeletePost hard-deletes an owned post; its id is never reused.
	DeletePost(ctx context.Context, postID int64, actingUserID int64) error

	// ListMyPosts retrieves the acting user's posts, newest first.
	ListMyPosts(ctx context.Context, actingUserID int64) ([]domain.PostWithAuthor, error)
}

// PostSvcFacade combines all post-related service interfaces
type PostSvcFacade interface {
	PostReaderSvc
	PostWriterSvc
}
