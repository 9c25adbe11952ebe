package repositories

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// PostReader defines read operations for post data
type PostReader interface {
	// FindPostByID retrieves a post by public sequential identifier.
	FindPostByID(ctx context.Context, postID int64) (*domain.Post, error)

	// FindPostWithAuthor retrieves a post joined with its owner's public
	// profile fields.
	FindPostWithAuthor(ctx context.Context, postID int64) (*domain.PostWithAuthor, error)

	// FindPosts retrieves all posts joined with author fields, newest first.
	// An empty category means no filter.
	FindPosts(ctx context.Context, category string) ([]domain.PostWithAuthor, error)

	// FindPostsByOwner retrieves a user's posts joined with author fields,
	// newest first. ownerID is the internal user identity.
	FindPostsByOwner(ctx context.Context, ownerID string) ([]domain.PostWithAuthor, error)
}

// PostWriter defines write operations for post data
type PostWriter interface {
	// SavePost persists a new post.
	SavePost(ctx context.Context, post domain.Post) error

	// UpdatePost replaces a post's mutable fields and bumps its update
	// timestamp.
	UpdatePost(ctx context.Context, post domain.Post) error

	// DeletePost hard-deletes a post. Its sequential id is never reused.
	DeletePost(ctx context.Context, postID int64) error
}

// PostRepositoryFacade combines all post-related repository interfaces
type PostRepositoryFacade interface {
	PostReader
	PostWriter
}
