package mail

import (
	"context"
	"errors"
	"testing"

	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGridMailerBuildsSingleEmail(t *testing.T) {
	var sent *sgmail.SGMailV3
	m := &SendGridMailer{
		send: func(e *sgmail.SGMailV3) (int, string, error) {
			sent = e
			return 202, "", nil
		},
		fromName: "EMS",
		fromAddr: "no-reply@ems.test",
		sandbox:  true,
	}

	err := m.Send(context.Background(), Message{ToName: "Ravi", ToEmail: "ravi@x.com", Subject: "Hello", Text: "hi", HTML: "<p>hi</p>"})
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, "no-reply@ems.test", sent.From.Address)
	assert.Equal(t, "Hello", sent.Subject)
	require.Len(t, sent.Personalizations, 1)
	assert.Equal(t, "ravi@x.com", sent.Personalizations[0].To[0].Address)
	require.NotNil(t, sent.MailSettings)
	assert.True(t, *sent.MailSettings.SandboxMode.Enable)
}

func TestSendGridMailerErrors(t *testing.T) {
	m := &SendGridMailer{send: func(*sgmail.SGMailV3) (int, string, error) { return 401, "unauthorized", nil }}
	assert.Error(t, m.Send(context.Background(), Message{ToEmail: "a@x.com"}))

	m.send = func(*sgmail.SGMailV3) (int, string, error) { return 0, "", errors.New("dial tcp") }
	assert.Error(t, m.Send(context.Background(), Message{ToEmail: "a@x.com"}))
}

func TestNewWithoutKeyLogsOnly(t *testing.T) {
	m := New("", "EMS", "no-reply@ems.test", false)
	_, ok := m.(LogMailer)
	assert.True(t, ok)
	assert.NoError(t, m.Send(context.Background(), Message{ToEmail: "a@x.com"}))
}
