package contextkeys

import (
	"context"

	"github.com/google/uuid"
)

type traceIDKeyType struct{}

var traceIDKey = traceIDKeyType{}

// TraceIDOrNew принимает trace_id клиента (заголовок X-Trace-ID), только если это UUID.
// Иначе выдается новый.
func TraceIDOrNew(candidate string) string {
	if _, err := uuid.Parse(candidate); err == nil {
		return candidate
	}
	return uuid.NewString()
}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext - trace_id текущего HTTP-запроса или "" вне запроса (например, в тестах use case'ов)
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}
