package mail

import (
	"context"
	"fmt"

	"github.com/myanimeverse/animeverse_backend/internal/platform/config"
	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers password-reset codes over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// SendOTP emails a one-time code. The code expires server-side; the wording
// here only informs the user of the window.
func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your MyAnimeVerse password reset code")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Your one-time code is <b>%s</b>.</p><p>It expires in 5 minutes. If you did not request a password reset, ignore this email.</p>",
		code,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}
