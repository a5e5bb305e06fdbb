package email

import (
	"fmt"

	"trackify_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) (*SMTPProvider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}
	return &SMTPProvider{cfg: cfg}, nil
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPEmail,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendOTP(to, name, otp string) error {
	return p.Send(to, "Your Trackify password reset code", renderOTP(name, otp))
}

func (p *SMTPProvider) SendWelcome(to, name, role string) error {
	return p.Send(to, "Welcome to Trackify", renderWelcome(name, role))
}
