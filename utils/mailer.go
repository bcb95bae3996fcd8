package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"codebank/config"
)

// Mailer sends one message addressed to all recipients jointly.
type Mailer interface {
	Send(to []string, subject, htmlBody string) error
}

// SMTPMailer sends email over plain SMTP (Gmail-style submission).
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.EmailFrom,
	}
}

func (m *SMTPMailer) Send(to []string, subject, htmlBody string) error {
	if m.username == "" || m.password == "" {
		return fmt.Errorf("email credentials not configured")
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	from := m.from
	if from == "" {
		from = m.username
	}

	message := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"%s\r\n",
		from, strings.Join(to, ", "), subject, htmlBody))

	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, from, to, message); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
