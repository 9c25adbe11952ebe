package models

import "time"

// Post is the database row shape for an anime post.
type Post struct {
	PostID        int64     `db:"post_id"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Picture       string    `db:"picture"`
	DownloadLinks string    `db:"download_links"`
	Genres        []string  `db:"genres"`
	Category      string    `db:"category"`
	UserID        string    `db:"user_id"` // FK -> users.id (internal identity)
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
