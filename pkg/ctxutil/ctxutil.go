package ctxutil

import "context"

type ctxKey string

const (
	conversationIDKey ctxKey = "conversation_id"
	requestIDKey      ctxKey = "request_id"
)

// WithConversationID stores the conversation (chat) ID in the context.
func WithConversationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, conversationIDKey, id)
}

// ConversationIDFromCtx extracts the conversation ID from the context.
// Returns false if the value is missing, empty, or of the wrong type.
func ConversationIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(conversationIDKey).(string)
	if !ok || id == "" {
		return "", false
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
