package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"walletlink/internal/messaging"
)

const (
	subjectInvitation    = "You have been invited to join a family on WalletLink"
	subjectPasswordReset = "Reset your WalletLink password"
	subjectWelcome       = "Welcome to WalletLink"
)

func invitationMail(email, link string, expiresAt time.Time) *messaging.MailMessage {
	body := fmt.Sprintf("You have been invited to manage your family's finances on WalletLink.\n\n"+
		"Open the link below to create your account:\n%s\n\nThe invitation expires on %s.",
		link, expiresAt.UTC().Format("Jan 2, 2006 15:04 MST"))
	return messaging.NewMailMessage(messaging.MailKindInvitation, email, subjectInvitation, body, link)
}

func passwordResetMail(email, link string) *messaging.MailMessage {
	body := fmt.Sprintf("A password reset was requested for your WalletLink account.\n\n"+
		"Open the link below to choose a new password:\n%s\n\nIf you did not ask for this, ignore this email.", link)
	return messaging.NewMailMessage(messaging.MailKindPasswordReset, email, subjectPasswordReset, body, link)
}

func welcomeMail(email, firstName string) *messaging.MailMessage {
	body := fmt.Sprintf("Hi %s,\n\nyour WalletLink account is ready.", firstName)
	return messaging.NewMailMessage(messaging.MailKindWelcome, email, subjectWelcome, body, "")
}

// QueueMailer hands outbound mail to the message broker; cmd/mail-worker delivers it
type QueueMailer struct {
	publisher   messaging.MailPublisher
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

func NewQueueMailer(publisher messaging.MailPublisher, auditLogger AuditLoggerInterface, metrics MetricsRecorderInterface) MailerInterface {
	return &QueueMailer{
		publisher:   publisher,
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

func (m *QueueMailer) SendInvitation(ctx context.Context, email, link string, expiresAt time.Time) error {
	return m.publish(ctx, invitationMail(email, link, expiresAt))
}

func (m *QueueMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	return m.publish(ctx, passwordResetMail(email, link))
}

func (m *QueueMailer) SendWelcome(ctx context.Context, email, firstName string) error {
	return m.publish(ctx, welcomeMail(email, firstName))
}

func (m *QueueMailer) publish(ctx context.Context, msg *messaging.MailMessage) error {
	if err := m.publisher.PublishMail(ctx, msg); err != nil {
		m.auditLogger.LogMailFailed(ctx, msg.Kind, msg.To, err.Error())
		m.metrics.IncrementCounter(MetricMailDispatched, map[string]string{"kind": msg.Kind, "status": "failed"})
		return fmt.Errorf("failed to queue %s mail: %w", msg.Kind, err)
	}

	m.auditLogger.LogMailDispatched(ctx, msg.Kind, msg.To)
	m.metrics.IncrementCounter(MetricMailDispatched, map[string]string{"kind": msg.Kind, "status": "queued"})
	return nil
}

// LogMailer writes mail to the process log. Used when no broker is configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) MailerInterface {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendInvitation(ctx context.Context, email, link string, expiresAt time.Time) error {
	m.write(ctx, invitationMail(email, link, expiresAt))
	return nil
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	m.write(ctx, passwordResetMail(email, link))
	return nil
}

func (m *LogMailer) SendWelcome(ctx context.Context, email, firstName string) error {
	m.write(ctx, welcomeMail(email, firstName))
	return nil
}

func (m *LogMailer) write(ctx context.Context, msg *messaging.MailMessage) {
	m.logger.InfoContext(ctx, "outbound mail",
		slog.String("kind", msg.Kind),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("link", msg.Link),
	)
}
