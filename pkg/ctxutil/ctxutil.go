package ctxutil

import "context"

type ctxKey string

const (
	chatIDKey    ctxKey = "chat_id"
	requestIDKey ctxKey = "request_id"
)

// WithChatID stores the chat user ID in the context.
func WithChatID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, chatIDKey, id)
}

// ChatIDFromCtx extracts the chat user ID from the context.
// Returns 0 and false if the value is missing, zero, or the wrong type.
func ChatIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(chatIDKey).(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
