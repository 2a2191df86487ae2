// Package mailer delivers outbound notification mail.  Delivery is
// advisory everywhere it is used: callers log failures and move on.
package mailer

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends a single message.  The interface exists so the approval
// pipeline can run against a console implementation in development and in
// tests.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through an SMTP submission endpoint using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP builds an SMTPMailer.  The user doubles as the From address,
// mirroring how the mail account is provisioned.
func NewSMTP(host string, port int, user, pass string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, user, pass), from: user}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// ConsoleMailer logs mail instead of delivering it.  Used when SMTP is not
// configured so the rest of the pipeline keeps working in development.
type ConsoleMailer struct{}

func NewConsole() *ConsoleMailer { return &ConsoleMailer{} }

func (c *ConsoleMailer) Send(to, subject, body string) error {
	log.Printf("[mail] to=%s subject=%q :: %s", to, subject, body)
	return nil
}
