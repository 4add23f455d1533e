package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"go.opentelemetry.io/otel/trace"
)

func Info(format string, v ...any) {
	logx.Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.Errorf(format, v...)
}

// CtxInfo 打印带 trace id 的日志
func CtxInfo(ctx context.Context, format string, v ...any) {
	logger := logx.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		logger = logger.WithFields(logx.Field("traceId", sc.TraceID().String()))
	}
	logger.Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logger := logx.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		logger = logger.WithFields(logx.Field("traceId", sc.TraceID().String()))
	}
	logger.Errorf(format, v...)
}
