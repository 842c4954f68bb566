// Package mailer sends report emails through an authenticated SMTP relay.
package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	apperrors "github.com/solarsense-dev/solarsense/internal/errors"
)

// Attachment names a generated file to attach to a message.
type Attachment struct {
	Filename string
	Path     string
}

// Mailer opens an SMTP session per message. One Mailer is safe for
// sequential use from the request path and the scheduler.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a Mailer for the given relay credentials.
func New(host string, port int, username, password, from string) *Mailer {
	if from == "" {
		from = username
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one message with the given attachments. Any transport error
// surfaces as ErrMailUpstream; the caller decides whether that is fatal.
func (m *Mailer) Send(to, subject, body string, attachments []Attachment) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	for _, a := range attachments {
		msg.Attach(a.Path, gomail.Rename(a.Filename))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMailUpstream, err)
	}

	return nil
}
