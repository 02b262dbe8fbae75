package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/matchday-api/internal/config"
)

// Mailer sends transactional emails (OTP codes, reset links).
type Mailer interface {
	SendVerificationCode(to, code, userName string) error
	SendPasswordReset(to, resetURL, userName string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendVerificationCode(to, code, userName string) error {
	if userName == "" {
		userName = to
	}
	body := fmt.Sprintf("Hi %s,\n\nYour verification code is: %s\n\nIt expires shortly — if you didn't request it, ignore this email.", userName, code)
	return m.send(to, "Your Verification Code", body)
}

func (m *mailer) SendPasswordReset(to, resetURL, userName string) error {
	if userName == "" {
		userName = to
	}
	body := fmt.Sprintf("Hi %s,\n\nReset your password here: %s\n\nThe link is valid for a limited time and can be used once.", userName, resetURL)
	return m.send(to, "Reset Your Password", body)
}

func (m *mailer) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
