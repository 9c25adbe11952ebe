package domain

import "time"

// Comment represents a comment on a post. Ownership is recorded as a foreign
// key to the user's internal identity, the same model posts use.
type Comment struct {
	CommentID int64     `json:"commentId"` // Public sequential identifier
	PostID    int64     `json:"postId"`    // Public sequential id of the parent post
	OwnerID   string    `json:"-"`         // FK -> users internal identity
	Body      string    `json:"comments"`
	Date      time.Time `json:"date"`
}

// CommentWithAuthor is a comment joined with the owning user's public
// profile fields.
type CommentWithAuthor struct {
	Comment
	Username       string `json:"username"`
	AuthorName     string `json:"name"`
	AuthorEmail    string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
