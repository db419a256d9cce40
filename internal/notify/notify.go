package notify

import (
	"context"
	"sync"

	"gopkg.in/gomail.v2"
)

// Notifier delivers a short message to a user. Delivery failures are
// the caller's concern; services treat sends as fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}

// MailNotifier sends over SMTP.
type MailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailNotifier(host string, port int, username, password, from string) *MailNotifier {
	return &MailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *MailNotifier) Notify(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return n.dialer.DialAndSend(m)
}

// Message is one captured notification.
type Message struct {
	To      string
	Subject string
	Body    string
}

// MemoryNotifier records messages instead of sending them. Used in
// tests and when SMTP is not configured.
type MemoryNotifier struct {
	mu   sync.Mutex
	sent []Message
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

func (n *MemoryNotifier) Notify(_ context.Context, to, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, Message{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of everything captured so far.
func (n *MemoryNotifier) Sent() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Message(nil), n.sent...)
}
