package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

// TraceIDKey carries the request trace id on a context.Context
const TraceIDKey contextKey = "trace_id"

// WithTraceID returns a context carrying the given trace id
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAuthEvent(ctx context.Context, event string, userID uuid.UUID, email string) {
	al.logger.InfoContext(ctx, "authentication event",
		slog.String("event_type", event),
		slog.String("user_id", userID.String()),
		slog.String("email", email),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *AuditLogger) LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredRole string) {
	al.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("user_id", userID.String()),
		slog.String("required_role", requiredRole),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *AuditLogger) LogMailDispatched(ctx context.Context, kind, recipient string) {
	al.logger.InfoContext(ctx, "mail dispatched",
		slog.String("event_type", "mail_dispatched"),
		slog.String("kind", kind),
		slog.String("recipient", recipient),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *AuditLogger) LogMailFailed(ctx context.Context, kind, recipient, errorMsg string) {
	al.logger.ErrorContext(ctx, "mail dispatch failed",
		slog.String("event_type", "mail_failed"),
		slog.String("kind", kind),
		slog.String("recipient", recipient),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (al *AuditLogger) LogDashboardComputed(ctx context.Context, familyID uuid.UUID, durationMs int64) {
	al.logger.InfoContext(ctx, "dashboard summary computed",
		slog.String("event_type", "dashboard_summary"),
		slog.String("family_id", familyID.String()),
		slog.Int64("duration_ms", durationMs),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}

	return ""
}
