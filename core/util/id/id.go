package id

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// Generate 生成请求 ID (UUIDv7, 按时间有序)
func Generate() string {
	if u, err := uuid.NewV7(); err == nil {
		return u.String()
	}
	return uuid.New().String()
}

// Valid 判断是否为合法的 UUID 字符串
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}

// WithContext 将请求 ID 存入 context
func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// FromContext 取出请求 ID
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(ctxKey{}).(string)
	return v, ok && v != ""
}

// FromContextOrNew 优先使用 context 中的请求 ID, 否则生成新的
func FromContextOrNew(ctx context.Context) string {
	if v, ok := FromContext(ctx); ok {
		return v
	}
	return Generate()
}
