package dto

import (
	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// CreatePostRequest defines the body of POST /createpost and PUT /posts/:id.
// Title, description and picture are required at the edit boundary.
type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required,notblank"`
	Description   string   `json:"description" binding:"required,notblank"`
	Picture       string   `json:"picture" binding:"required"`
	DownloadLinks string   `json:"downloadLinks"`
	Genres        []string `json:"genres"`
	Category      string   `json:"category"`
}

// PatchPostRequest defines the body of PATCH /posts/:id. Pointers
// differentiate omitted fields from zero-value fields; only fields on this
// allow-list can be patched.
type PatchPostRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Picture       *string   `json:"picture"`
	DownloadLinks *string   `json:"downloadLinks"`
	Genres        *[]string `json:"genres"`
	Category      *string   `json:"category"`
}

// IsEmpty reports whether the patch carries no updatable field.
func (r PatchPostRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Picture == nil &&
		r.DownloadLinks == nil && r.Genres == nil && r.Category == nil
}

// ListPostsParams defines query parameters for GET /posts.
// Category "All" (or empty) means no filter.
type ListPostsParams struct {
	Category string `form:"category"`
}

// PostResponse is a post flattened with its author's public profile fields.
type PostResponse struct {
	PostID         int64    `json:"postId"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Picture        string   `json:"picture"`
	DownloadLinks  string   `json:"downloadLinks"`
	Genres         []string `json:"genres"`
	Category       string   `json:"category"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
	Username       string   `json:"user_name"`
	Name           string   `json:"name"`
	Email          string   `json:"email,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
}

// ToPostResponse converts a joined post to its response shape.
func ToPostResponse(p *domain.PostWithAuthor) PostResponse {
	return PostResponse{
		PostID:         p.PostID,
		Title:          p.Title,
		Description:    p.Description,
		Picture:        p.Picture,
		DownloadLinks:  p.DownloadLinks,
		Genres:         p.Genres,
		Category:       p.Category,
		CreatedAt:      p.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		UpdatedAt:      p.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		Username:       p.Username,
		Name:           p.AuthorName,
		Email:          p.AuthorEmail,
		ProfilePicture: p.ProfilePicture,
	}
}

// ToPostResponseSlice converts a slice of joined posts.
func ToPostResponseSlice(ps []domain.PostWithAuthor) []PostResponse {
	out := make([]PostResponse, len(ps))
	for i := range ps {
		out[i] = ToPostResponse(&ps[i])
	}
	return out
}
