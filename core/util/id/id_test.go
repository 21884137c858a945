package id

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	id1 := Generate()
	id2 := Generate()

	assert.NotEqual(t, id1, id2)
	assert.Len(t, id1, 36) // UUID standard length
	assert.True(t, Valid(id1))
	assert.False(t, Valid("not-a-uuid"))
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithContext(context.Background(), "req-1")
	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", got)
	assert.Equal(t, "req-1", FromContextOrNew(ctx))

	assert.True(t, Valid(FromContextOrNew(context.Background())))

	_, ok = FromContext(WithContext(context.Background(), ""))
	assert.False(t, ok)
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Generate()
	}
}
