package testhelpers

import (
	"context"
	"sync"

	"ems-portal/internal/adapters/mail"
)

// RecordingMailer keeps every message instead of sending it
type RecordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	Err  error
}

// Send implements mail.Mailer
func (m *RecordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// Sent returns the messages sent so far
func (m *RecordingMailer) Sent() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Message(nil), m.sent...)
}
