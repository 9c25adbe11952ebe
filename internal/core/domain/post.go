package domain

import "time"

// Post represents an anime post shared by a user.
type Post struct {
	PostID        int64     `json:"postId"` // Public sequential identifier
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Picture       string    `json:"picture"`       // Filename in file storage
	DownloadLinks string    `json:"downloadLinks"` // Comma-separated link string
	Genres        []string  `json:"genres"`
	Category      string    `json:"category"`
	OwnerID       string    `json:"-"` // FK -> users internal identity
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PostWithAuthor is a post joined with the owning user's public profile
// fields, as returned by the read endpoints.
type PostWithAuthor struct {
	Post
	Username       string `json:"user_name"`
	AuthorName     string `json:"name"`
	AuthorEmail    string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
