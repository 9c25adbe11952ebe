package mapping

import (
	"database/sql"
	"time"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	"github.com/myanimeverse/animeverse_backend/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		ID:             d.ID,
		UserID:         d.UserID,
		Username:       d.Username,
		Name:           d.Name,
		Email:          nullString(d.Email),
		Phone:          nullString(d.Phone),
		PasswordHash:   nullString(d.PasswordHash),
		GoogleID:       nullString(d.GoogleID),
		IsGoogleSignup: d.IsGoogleSignup,
		DateOfBirth:    nullTime(d.DateOfBirth),
		Gender:         nullString(string(d.Gender)),
		ProfilePicture: nullString(d.ProfilePicture),
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		ID:             m.ID,
		UserID:         m.UserID,
		Username:       m.Username,
		Name:           m.Name,
		Email:          m.Email.String,
		Phone:          m.Phone.String,
		PasswordHash:   m.PasswordHash.String,
		GoogleID:       m.GoogleID.String,
		IsGoogleSignup: m.IsGoogleSignup,
		Gender:         domain.Gender(m.Gender.String),
		ProfilePicture: m.ProfilePicture.String,
		CreatedAt:      m.CreatedAt,
	}
	if m.DateOfBirth.Valid {
		dob := m.DateOfBirth.Time
		d.DateOfBirth = &dob
	}
	return d
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
