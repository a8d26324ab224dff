package mailer

import (
	gomail "gopkg.in/gomail.v2"

	"github.com/linge-maison/boutique/internal/config"
)

// Sender delivers a message to a recipient. The storefront only depends on
// this interface; delivery failures are the caller's to log and ignore.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends through the configured SMTP relay via gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(cfg config.MailConfig) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.UseSSL
	return &SMTPSender{dialer: d, from: cfg.Username}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}
