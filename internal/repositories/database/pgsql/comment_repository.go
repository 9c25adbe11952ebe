package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/myanimeverse/animeverse_backend/internal/apperrors"
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	"github.com/myanimeverse/animeverse_backend/internal/models"
	"github.com/myanimeverse/animeverse_backend/internal/utils/mapping"
)

type PgxCommentRepository struct {
	BaseRepository
}

func NewPgxCommentRepository(db *pgxpool.Pool) *PgxCommentRepository {
	return &PgxCommentRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxCommentRepository implements portsrepo.CommentRepositoryFacade
var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

const commentColumns = `comment_id, post_id, user_id, comments, date`

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	query := `
        INSERT INTO comments (` + commentColumns + `)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query, m.CommentID, m.PostID, m.UserID, m.Body, m.Date)
	if err != nil {
		if field := uniqueViolationField(err, "comments"); field != "" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID int64) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1;`
	var m models.Comment
	err := r.Pool.QueryRow(ctx, query, commentID).Scan(&m.CommentID, &m.PostID, &m.UserID, &m.Body, &m.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment %d: %w", commentID, err)
	}
	d := mapping.ToDomainComment(m)
	return &d, nil
}

func (r *PgxCommentRepository) FindCommentsByPost(ctx context.Context, postID int64) ([]domain.CommentWithAuthor, error) {
	query := `
		SELECT c.comment_id, c.post_id, c.user_id, c.comments, c.date,
		       u.username, u.name, u.email, u.profile_picture
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for post %d: %w", postID, err)
	}
	defer rows.Close()

	comments := []domain.CommentWithAuthor{}
	for rows.Next() {
		var m models.Comment
		var username, name, email, profilePicture sql.NullString
		if err := rows.Scan(&m.CommentID, &m.PostID, &m.UserID, &m.Body, &m.Date,
			&username, &name, &email, &profilePicture); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, domain.CommentWithAuthor{
			Comment:        mapping.ToDomainComment(m),
			Username:       username.String,
			AuthorName:     name.String,
			AuthorEmail:    email.String,
			ProfilePicture: profilePicture.String,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}
	return comments, nil
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, commentID int64, body string) error {
	query := `UPDATE comments SET comments = $1, date = $2 WHERE comment_id = $3;`
	cmdTag, err := r.Pool.Exec(ctx, query, body, time.Now().UTC(), commentID)
	if err != nil {
		return fmt.Errorf("failed to execute update comment query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1;`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
