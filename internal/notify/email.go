package notify

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier implements Notifier over SMTP with an HTML body.
type EmailNotifier struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail SendMailFunc
}

// EmailOption configures an EmailNotifier.
type EmailOption func(*EmailNotifier)

// WithSendMail replaces smtp.SendMail, mainly for tests.
func WithSendMail(fn SendMailFunc) EmailOption {
	return func(e *EmailNotifier) { e.sendMail = fn }
}

// NewEmailNotifier creates an EmailNotifier. PLAIN auth is used when
// username is set.
func NewEmailNotifier(host string, port int, username, password, from string, opts ...EmailOption) *EmailNotifier {
	e := &EmailNotifier{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		from:     from,
		sendMail: smtp.SendMail,
	}
	if username != "" {
		e.auth = smtp.PlainAuth("", username, password, host)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Notify sends one message addressed to every recipient with an email.
func (e *EmailNotifier) Notify(ctx context.Context, recipients []domain.Recipient, alert *AlertPayload) error {
	to := make([]string, 0, len(recipients))
	for _, r := range recipients {
		if r.Email != "" {
			to = append(to, r.Email)
		}
	}
	if len(to) == 0 {
		return ErrNoRecipients
	}

	msg, err := e.compose(ctx, to, alert)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.sendMail(e.addr, e.auth, e.from, to, msg); err != nil {
		return fmt.Errorf("sending email via %s: %w", e.addr, err)
	}
	return nil
}

func (e *EmailNotifier) compose(ctx context.Context, to []string, alert *AlertPayload) ([]byte, error) {
	var body bytes.Buffer
	if err := alertEmail(alert).Render(ctx, &body); err != nil {
		return nil, fmt.Errorf("rendering email body: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", e.from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", alert.Subject()))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}
