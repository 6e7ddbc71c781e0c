// Package log 构建 srcmetrics 使用的 slog 日志器。
// 日志统一写到 stderr，避免干扰 stdout 上的表格/JSON 输出。
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
)

type ctxAttrsKey struct{}

// New 创建文本格式的日志器；verbose 为 true 时输出 debug 级别。
func New(verbose bool) *slog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter 与 New 相同，但允许指定输出目标（测试使用）。
func NewWithWriter(writer io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	return slog.New(NewContextHandler(handler))
}

// ContextAttrs 把属性挂到 context 上，之后通过该 context 记录的日志都会带上它们。
func ContextAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	merged := append(slices.Clone(attrsFromContext(ctx)), attrs...)
	return context.WithValue(ctx, ctxAttrsKey{}, merged)
}

func attrsFromContext(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(ctxAttrsKey{}).([]slog.Attr)
	return attrs
}

// ContextHandler 在写出记录前追加 context 中的属性。
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler 包装一个已有的 handler。
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: handler}
}

// Handle 追加 context 属性后交给内部 handler。
func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs := attrsFromContext(ctx); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, record)
}

// WithAttrs 保持包装关系。
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup 保持包装关系。
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}
