package services

import (
	"context"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
)

// GoogleAuthSvcFacade verifies Google credentials server-side. The client
// never decides who it is; the ID token signature is checked here.
type GoogleAuthSvcFacade interface {
	// VerifyCredential validates a Google ID token and extracts its identity
	// claims.
	VerifyCredential(ctx context.Context, credential string) (*domain.GoogleUserInfo, error)

	// ExchangeCode exchanges an OAuth authorization code for tokens and
	// verifies the ID token contained in the response.
	ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error)
}
