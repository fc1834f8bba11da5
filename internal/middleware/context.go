package middleware

import (
	"context"

	"game-admin/internal/common/logging"
	"game-admin/internal/signature"
)

type contextKey int

const (
	signedRequestKey contextKey = iota
	requestInfoKey
)

// requestInfo lets inner handlers report values back to LoggingMiddleware
type requestInfo struct {
	function string
	userID   string
}

func withRequestInfo(ctx context.Context, info *requestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey, info)
}

// RequestFrom returns the authenticated request stored by Signed
func RequestFrom(ctx context.Context) (signature.Request, bool) {
	req, ok := ctx.Value(signedRequestKey).(signature.Request)
	return req, ok
}

// WithRequest stores a signed request in ctx
func WithRequest(ctx context.Context, req signature.Request) context.Context {
	return context.WithValue(ctx, signedRequestKey, req)
}

// WithFunction records the RPC function name for logging
func WithFunction(ctx context.Context, function string) context.Context {
	if info, ok := ctx.Value(requestInfoKey).(*requestInfo); ok {
		info.function = function
	}
	return context.WithValue(ctx, logging.FunctionKey, function)
}

// WithUserID records the authenticated user for logging
func WithUserID(ctx context.Context, userID string) context.Context {
	if info, ok := ctx.Value(requestInfoKey).(*requestInfo); ok {
		info.userID = userID
	}
	return context.WithValue(ctx, logging.UserIDKey, userID)
}

// FunctionFrom returns the RPC function name recorded by Signed
func FunctionFrom(ctx context.Context) string {
	fn, _ := ctx.Value(logging.FunctionKey).(string)
	return fn
}
