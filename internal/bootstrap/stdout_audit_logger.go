package bootstrap

import (
	"context"
	"time"

	"github.com/RahimovIlhom/personnel-management/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the global zap logger.
// Good enough for a single deployment; swap for a durable sink when the
// audit trail has to survive process restarts.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if meta := contextutil.ExtractMetadata(ctx); meta.RequestID != "" {
		fields = append(fields, zap.String("request_id", meta.RequestID))
	}

	zap.L().Named("audit").Info("audit event", fields...)
}
