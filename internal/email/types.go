package email

// Provider abstracts email delivery so tests can swap in a mock.
type Provider interface {
	Send(to, subject, htmlBody string) error
	SendOTP(to, name, otp string) error
	SendWelcome(to, name, role string) error
}
