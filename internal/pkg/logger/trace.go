package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey 请求链路标识在 Context 和 gin Keys 中共用的键名
const TraceIDKey = "trace_id"

// ContextHandler 在每条日志上附加当前请求的 trace_id
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx == nil {
		return h.Handler.Handle(ctx, r)
	}
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok && traceID != "" {
		r.AddAttrs(log.String(TraceIDKey, traceID))
	}
	return h.Handler.Handle(ctx, r)
}
