// Package mailer composes and sends the two contact-form emails over SMTP
// submission.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/davetechinnovation/contact-backend/internal/contact"
	"github.com/wneessen/go-mail"
)

// Mailer implements contact.Notifier over an outbound SMTP client.
type Mailer struct {
	client *mail.Client
	from   string
	cfg    NotifyConfig
	now    func() time.Time
}

// New connects the mailer to an SMTP submission endpoint. Credentials are
// the sending account; the same address appears as From on both emails.
func New(host string, port int, username, password string, cfg NotifyConfig) (*Mailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &Mailer{
		client: client,
		from:   username,
		cfg:    cfg,
		now:    time.Now,
	}, nil
}

// NotifyOwner emails the site owner the submission plus all enrichment
// metadata.
func (m *Mailer) NotifyOwner(ctx context.Context, sub contact.Submission, enr contact.Enrichment) error {
	body := ownerBody(sub, enr, m.now())
	return m.send(ctx, m.cfg.OwnerEmail, m.cfg.OwnerSubject, body)
}

// NotifySender emails the submitter an acknowledgment with a copy of their
// message.
func (m *Mailer) NotifySender(ctx context.Context, sub contact.Submission) error {
	body := ackBody(sub, m.cfg, m.from)
	return m.send(ctx, sub.Email, m.cfg.AckSubject, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending %q to %s: %w", subject, to, err)
	}
	return nil
}
