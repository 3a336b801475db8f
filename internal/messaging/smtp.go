package messaging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// Sender delivers one mail message to its recipient.
type Sender interface {
	Send(ctx context.Context, msg *MailMessage) error
}

type sendMailFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers mail through a relay with PLAIN auth when a username is set.
type SMTPSender struct {
	addr     string
	host     string
	from     string
	username string
	password string
	sendMail sendMailFunc
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		host:     host,
		from:     from,
		username: username,
		password: password,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg *MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := s.sendMail(s.addr, auth, s.from, []string{msg.To}, buildMIME(s.from, msg)); err != nil {
		return fmt.Errorf("send %s mail: %w", msg.Kind, err)
	}

	slog.InfoContext(ctx, "Mail delivered", "kind", msg.Kind, "to", msg.To)
	return nil
}

// LogSender writes mail to the log instead of delivering it.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg *MailMessage) error {
	s.logger.InfoContext(ctx, "Mail not delivered, SMTP is not configured",
		"kind", msg.Kind,
		"to", msg.To,
		"subject", msg.Subject,
		"link", msg.Link,
	)
	return nil
}

func buildMIME(from string, msg *MailMessage) []byte {
	var b bytes.Buffer
	date := msg.Timestamp
	if date.IsZero() {
		date = time.Now().UTC()
	}

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", date.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	if msg.Link != "" && !strings.Contains(msg.Body, msg.Link) {
		b.WriteString("\r\n\r\n")
		b.WriteString(msg.Link)
	}
	b.WriteString("\r\n")

	return b.Bytes()
}

func sanitizeHeader(value string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(value)
}
