package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerClientBucket(t *testing.T) {
	l := NewRateLimiter(1, 2, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "桶已耗尽")
	assert.True(t, l.Allow("10.0.0.2"), "不同客户端互不影响")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "补充一个令牌")
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	l := NewRateLimiter(1, 1, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	l.lastCleanup = now

	l.Allow("10.0.0.1")
	now = now.Add(30 * time.Second)
	l.Allow("10.0.0.2")
	assert.Len(t, l.visitors, 2)

	now = now.Add(45 * time.Second)
	l.Allow("10.0.0.3")
	assert.Len(t, l.visitors, 2, "超过ttl未访问的客户端被清理")
	assert.NotContains(t, l.visitors, "10.0.0.1")
}
