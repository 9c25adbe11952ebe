package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	"github.com/myanimeverse/animeverse_backend/internal/models"
	"github.com/myanimeverse/animeverse_backend/internal/utils/mapping"
)

type PgxPostRepository struct {
	BaseRepository
}

func NewPgxPostRepository(db *pgxpool.Pool) *PgxPostRepository {
	return &PgxPostRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxPostRepository implements portsrepo.PostRepositoryFacade
var _ portsrepo.PostRepositoryFacade = (*PgxPostRepository)(nil)

const postColumns = `post_id, title, description, picture, download_links, genres, category, user_id, created_at, updated_at`

// postWithAuthorQuery joins each post with its owner's public profile fields.
// LEFT JOIN keeps posts visible even if the owning account disappears.
const postWithAuthorQuery = `
	SELECT p.post_id, p.title, p.description, p.picture, p.download_links, p.genres, p.category, p.user_id, p.created_at, p.updated_at,
	       u.username, u.name, u.email, u.profile_picture
	FROM posts p
	LEFT JOIN users u ON u.id = p.user_id
`

func scanPostWithAuthor(row pgx.Row) (*domain.PostWithAuthor, error) {
	var m models.Post
	var username, name, email, profilePicture sql.NullString
	err := row.Scan(
		&m.PostID,
		&m.Title,
		&m.Description,
		&m.Picture,
		&m.DownloadLinks,
		&m.Genres,
		&m.Category,
		&m.UserID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&username,
		&name,
		&email,
		&profilePicture,
	)
	if err != nil {
		return nil, err
	}
	return &domain.PostWithAuthor{
		Post:           mapping.ToDomainPost(m),
		Username:       username.String,
		AuthorName:     name.String,
		AuthorEmail:    email.String,
		ProfilePicture: profilePicture.String,
	}, nil
}

func (r *PgxPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	m := mapping.ToModelPost(post)
	query := `
        INSERT INTO posts (` + postColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.PostID,
		m.Title,
		m.Description,
		m.Picture,
		m.DownloadLinks,
		m.Genres,
		m.Category,
		m.UserID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if field := uniqueViolationField(err, "posts"); field != "" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *PgxPostRepository) FindPostByID(ctx context.Context, postID int64) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_id = $1;`
	var m models.Post
	err := r.Pool.QueryRow(ctx, query, postID).Scan(
		&m.PostID,
		&m.Title,
		&m.Description,
		&m.Picture,
		&m.DownloadLinks,
		&m.Genres,
		&m.Category,
		&m.UserID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post %d: %w", postID, err)
	}
	d := mapping.ToDomainPost(m)
	return &d, nil
}

func (r *PgxPostRepository) FindPostWithAuthor(ctx context.Context, postID int64) (*domain.PostWithAuthor, error) {
	query := postWithAuthorQuery + ` WHERE p.post_id = $1;`
	p, err := scanPostWithAuthor(r.Pool.QueryRow(ctx, query, postID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post %d with author: %w", postID, err)
	}
	return p, nil
}

func (r *PgxPostRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]domain.PostWithAuthor, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.PostWithAuthor{}
	for rows.Next() {
		p, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, *p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", rows.Err())
	}
	return posts, nil
}

func (r *PgxPostRepository) FindPosts(ctx context.Context, category string) ([]domain.PostWithAuthor, error) {
	if category == "" {
		return r.queryPosts(ctx, postWithAuthorQuery+` ORDER BY p.created_at DESC;`)
	}
	return r.queryPosts(ctx, postWithAuthorQuery+` WHERE p.category = $1 ORDER BY p.created_at DESC;`, category)
}

func (r *PgxPostRepository) FindPostsByOwner(ctx context.Context, ownerID string) ([]domain.PostWithAuthor, error) {
	return r.queryPosts(ctx, postWithAuthorQuery+` WHERE p.user_id = $1 ORDER BY p.created_at DESC;`, ownerID)
}

func (r *PgxPostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	m := mapping.ToModelPost(post)
	query := `
        UPDATE posts
        SET title = $1, description = $2, picture = $3, download_links = $4, genres = $5, category = $6, updated_at = $7
        WHERE post_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Title,
		m.Description,
		m.Picture,
		m.DownloadLinks,
		m.Genres,
		m.Category,
		m.UpdatedAt,
		m.PostID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update post query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("post not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPostRepository) DeletePost(ctx context.Context, postID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM posts WHERE post_id = $1;`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("post not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
