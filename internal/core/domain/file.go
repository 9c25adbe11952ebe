package domain

import "time"

// StoredFile is an uploaded file kept verbatim in the database. Immutable
// once created; retrieved publicly by filename.
type StoredFile struct {
	Filename     string    `json:"filename"` // Unique, derived from upload time + original name
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Data         []byte    `json:"-"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
}
