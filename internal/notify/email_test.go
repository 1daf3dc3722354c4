package notify

import (
	"bytes"
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

type sentMail struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  []byte
}

func captureMail(out *[]sentMail, err error) SendMailFunc {
	return func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		*out = append(*out, sentMail{addr: addr, auth: a, from: from, to: to, msg: msg})
		return err
	}
}

func TestEmailNotifier_Notify(t *testing.T) {
	t.Parallel()

	var sent []sentMail
	e := NewEmailNotifier("smtp.msp.example", 587, "alerts", "secret", "alerts@msp.example",
		WithSendMail(captureMail(&sent, nil)))

	recipients := append(testRecipients(), domain.Recipient{Name: "NoMail", Phone: "+1555"})
	require.NoError(t, e.Notify(context.Background(), recipients, testPayload(domain.SeverityCritical)))

	require.Len(t, sent, 1)
	m := sent[0]
	assert.Equal(t, "smtp.msp.example:587", m.addr)
	assert.NotNil(t, m.auth)
	assert.Equal(t, "alerts@msp.example", m.from)
	assert.Equal(t, []string{"ana@msp.example", "bo@msp.example"}, m.to)

	body := string(m.msg)
	assert.Contains(t, body, "Subject: ")
	assert.Contains(t, body, "Content-Type: text/html")
	assert.Contains(t, body, "CRITICAL alert")
	assert.Contains(t, body, "srv-01")
	assert.Contains(t, body, "critical-oncall (step 1)")
}

func TestEmailNotifier_EscapesHTML(t *testing.T) {
	t.Parallel()

	var sent []sentMail
	e := NewEmailNotifier("localhost", 25, "", "", "a@b", WithSendMail(captureMail(&sent, nil)))

	p := testPayload(domain.SeverityHigh)
	p.Message = `<script>alert("x")</script>`
	require.NoError(t, e.Notify(context.Background(), testRecipients(), p))

	require.Len(t, sent, 1)
	assert.Nil(t, sent[0].auth)

	_, body, ok := strings.Cut(string(sent[0].msg), "\r\n\r\n")
	require.True(t, ok, "message has no header/body separator")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestEmailNotifier_SubjectLineBreaksAreEncoded(t *testing.T) {
	t.Parallel()

	var sent []sentMail
	e := NewEmailNotifier("localhost", 25, "", "", "a@b", WithSendMail(captureMail(&sent, nil)))

	p := testPayload(domain.SeverityHigh)
	p.Message = "disk full\r\nBcc: attacker@evil.example"
	require.NoError(t, e.Notify(context.Background(), testRecipients(), p))

	require.Len(t, sent, 1)
	headers, _, ok := strings.Cut(string(sent[0].msg), "\r\n\r\n")
	require.True(t, ok)
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, headers, "Subject: =?utf-8?q?")
}

func TestEmailNotifier_NoAddresses(t *testing.T) {
	t.Parallel()

	var sent []sentMail
	e := NewEmailNotifier("localhost", 25, "", "", "a@b", WithSendMail(captureMail(&sent, nil)))

	err := e.Notify(context.Background(), []domain.Recipient{{Name: "Phone only", Phone: "+1"}}, testPayload(domain.SeverityHigh))
	require.ErrorIs(t, err, ErrNoRecipients)
	assert.Empty(t, sent)
}

func TestEmailNotifier_SendError(t *testing.T) {
	t.Parallel()

	var sent []sentMail
	e := NewEmailNotifier("localhost", 25, "", "", "a@b",
		WithSendMail(captureMail(&sent, errors.New("550 mailbox unavailable"))))

	err := e.Notify(context.Background(), testRecipients(), testPayload(domain.SeverityHigh))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "550 mailbox unavailable")
}

func TestAlertEmail_Render(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, alertEmail(testPayload(domain.SeverityMedium)).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), severityColors[domain.SeverityMedium])
	assert.Contains(t, buf.String(), "97.5")
	assert.Contains(t, buf.String(), "<th align=\"left\">Roles</th><td>tech</td>")
}
