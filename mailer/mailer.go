package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/openprocure/portal-go/config"
)

// Sender delivers one email. Swapped for a recording fake in tests.
type Sender interface {
	Send(to, subject, html string) error
}

type SMTPSender struct{}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{}
}

func (s *SMTPSender) Send(to, subject, html string) error {
	from := config.SmtpFrom
	message := fmt.Sprintf(
		"From: %s\nTo: %s\nSubject: %s\nMIME-Version: 1.0\nContent-Type: text/html; charset=\"UTF-8\"\n\n%s",
		from, to, subject, html,
	)

	var auth smtp.Auth
	if config.SmtpUser != "" {
		auth = smtp.PlainAuth("", config.SmtpUser, config.SmtpPassword, config.SmtpHost)
	}
	return smtp.SendMail(config.SmtpHost+":"+config.SmtpPort, auth, from, []string{to}, []byte(message))
}
