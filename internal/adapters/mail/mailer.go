// Package mail sends the service's transactional emails.
package mail

import (
	"context"
	"fmt"

	"ems-portal/internal/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// Message is one outgoing email
type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends messages
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SendGridMailer sends mail through the SendGrid v3 API
type SendGridMailer struct {
	send     func(*sgmail.SGMailV3) (int, string, error)
	fromName string
	fromAddr string
	sandbox  bool
}

// NewSendGridMailer creates a mailer for apiKey
func NewSendGridMailer(apiKey, fromName, fromAddr string, sandbox bool) *SendGridMailer {
	client := sendgrid.NewSendClient(apiKey)
	return &SendGridMailer{
		send: func(m *sgmail.SGMailV3) (int, string, error) {
			resp, err := client.Send(m)
			if err != nil {
				return 0, "", err
			}
			return resp.StatusCode, resp.Body, nil
		},
		fromName: fromName,
		fromAddr: fromAddr,
		sandbox:  sandbox,
	}
}

// Send delivers msg; a non-2xx API answer is an error
func (m *SendGridMailer) Send(_ context.Context, msg Message) error {
	email := m.build(msg)

	status, body, err := m.send(email)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if status >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", status, body)
	}

	logger.Log.WithFields(logrus.Fields{"to": msg.ToEmail, "subject": msg.Subject}).Info("📧 Email sent")
	return nil
}

func (m *SendGridMailer) build(msg Message) *sgmail.SGMailV3 {
	from := sgmail.NewEmail(m.fromName, m.fromAddr)
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)
	email := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Text, msg.HTML)
	if m.sandbox {
		ms := sgmail.NewMailSettings()
		ms.SetSandboxMode(sgmail.NewSetting(true))
		email.MailSettings = ms
	}
	return email
}

// LogMailer only logs messages; used when no SendGrid key is configured
type LogMailer struct{}

// Send implements Mailer
func (LogMailer) Send(_ context.Context, msg Message) error {
	logger.Log.WithFields(logrus.Fields{"to": msg.ToEmail, "subject": msg.Subject}).
		Warn("⚠️ Mail delivery disabled, message not sent")
	logger.Log.Debug(msg.Text)
	return nil
}

// New returns a SendGrid mailer, or a LogMailer when apiKey is empty
func New(apiKey, fromName, fromAddr string, sandbox bool) Mailer {
	if apiKey == "" {
		return LogMailer{}
	}
	return NewSendGridMailer(apiKey, fromName, fromAddr, sandbox)
}
