// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "6562c186a4a586c6e19a4eef")

	userID, ok := GetUserIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "6562c186a4a586c6e19a4eef", userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, userID)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	_, ok := GetUserIDFromContext(ctx)

	assert.False(t, ok)
}

func TestTraceID_RoundTrip(t *testing.T) {
	assert.Empty(t, GetTraceIDFromContext(context.Background()))

	ctx := WithTraceID(context.Background(), "trace-42")
	assert.Equal(t, "trace-42", GetTraceIDFromContext(ctx))
	assert.Equal(t, "traceID", TraceIDCtxKey.String())
}
