package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/myanimeverse/animeverse_backend/internal/core/domain"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleAuthServiceImpl implements the GoogleAuthSvcFacade.
// The client never asserts its own identity; every credential path ends in a
// signature check against Google's keys.
type googleAuthServiceImpl struct {
	BaseService
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthServiceImpl{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Ensure googleAuthServiceImpl implements the GoogleAuthSvcFacade interface
var _ portssvc.GoogleAuthSvcFacade = (*googleAuthServiceImpl)(nil)

// VerifyCredential validates a Google ID token and extracts its identity claims.
func (s *googleAuthServiceImpl) VerifyCredential(ctx context.Context, credential string) (*domain.GoogleUserInfo, error) {
	if s.cfg.GoogleClientID == "" {
		// This should ideally be caught at startup, but as a safeguard:
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, credential, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	return payloadToUserInfo(payload), nil
}

// ExchangeCode exchanges an OAuth authorization code for tokens and verifies
// the ID token contained in the response.
func (s *googleAuthServiceImpl) ExchangeCode(ctx context.Context, code string) (*domain.GoogleUserInfo, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return nil, errors.New("id_token missing from google token response")
	}

	return s.VerifyCredential(ctx, idTokenString)
}

// payloadToUserInfo lifts the claims we use out of the verified payload.
func payloadToUserInfo(payload *idtoken.Payload) *domain.GoogleUserInfo {
	info := &domain.GoogleUserInfo{Sub: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		info.EmailVerified = verified
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		info.Picture = picture
	}
	return info
}
