package models

import "time"

// Comment is the database row shape for a comment on a post.
type Comment struct {
	CommentID int64     `db:"comment_id"`
	PostID    int64     `db:"post_id"` // Public sequential id of the parent post
	UserID    string    `db:"user_id"` // FK -> users.id (internal identity)
	Body      string    `db:"comments"`
	Date      time.Time `db:"date"`
}
