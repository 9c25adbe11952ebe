package models

import "time"

// File is the database row shape for an uploaded file stored as bytes.
type File struct {
	Filename     string    `db:"filename"`
	OriginalName string    `db:"original_name"`
	ContentType  string    `db:"content_type"`
	Data         []byte    `db:"data"`
	Size         int64     `db:"size"`
	UploadedAt   time.Time `db:"uploaded_at"`
}
