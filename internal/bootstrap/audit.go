package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that must survive in some
// log sink even when the structured application log is sampled away.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
