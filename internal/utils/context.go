// Package utils provides general-purpose helper utilities used across the
// server and the client: typed context keys, JSON response writing, the
// resty-based HTTP client with its rate-limited transport, and id generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key the HTTP layer stores the raw {id} path parameter
// under. The value is not validated yet when it is stored.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "6562c186a4a586c6e19a4eef")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext reports false when no string id was stored.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// TraceIDCtxKey holds the X-Trace-ID of the request being served.
var TraceIDCtxKey = contextKey("traceID")

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id, or "" outside a request.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
