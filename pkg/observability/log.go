package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failed edits,
// loads, saves and renders log at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to l, or to the default logger if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l.WithPrefix("hooks")}
}

func (h *LogHooks) outcome(msg string, err error, kv ...any) {
	if err != nil {
		h.logger.Warn(msg, append(kv, "err", err)...)
		return
	}
	h.logger.Debug(msg, kv...)
}

func (h *LogHooks) OnEdit(op string, d time.Duration, err error) {
	h.outcome("edit", err, "op", op, "duration", d)
}

func (h *LogHooks) OnLoad(format string, actions int, d time.Duration, err error) {
	h.outcome("load", err, "format", format, "actions", actions, "duration", d)
}

func (h *LogHooks) OnSave(format string, size int, d time.Duration, err error) {
	h.outcome("save", err, "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string, arcs int) {
	h.logger.Debug("render start", "format", format, "arcs", arcs)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	h.outcome("render", err, "format", format, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

var _ Hooks = (*LogHooks)(nil)
