package services

import (
	portsrepo "github.com/myanimeverse/animeverse_backend/internal/core/ports/repositories"
	portssvc "github.com/myanimeverse/animeverse_backend/internal/core/ports/services"
	"github.com/myanimeverse/animeverse_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.OTPMailer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.CounterRepo)
	container.Post = NewPostService(repos.PostRepo, repos.UserRepo, repos.CounterRepo)
	container.Comment = NewCommentService(repos.CommentRepo, repos.PostRepo, repos.UserRepo, repos.CounterRepo)
	container.File = NewFileService(repos.FileRepo)
	container.PasswordReset = NewPasswordResetService(repos.UserRepo, repos.OTPRepo, mailer, cfg.OTPExpiry)
	container.GoogleAuth = NewGoogleAuthService(cfg)

	return container
}
