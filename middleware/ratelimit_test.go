package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustsBurst(t *testing.T) {
	bucket := NewTokenBucket(3, time.Hour)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := NewTokenBucket(1, 10*time.Millisecond)

	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())

	time.Sleep(25 * time.Millisecond)
	assert.True(t, bucket.Allow())
}

func TestRateLimiterIsolatesKeys(t *testing.T) {
	limiter := NewRateLimiter(time.Hour, 1)

	assert.True(t, limiter.Allow("user:a"))
	assert.False(t, limiter.Allow("user:a"))

	// A different client gets its own bucket
	assert.True(t, limiter.Allow("user:b"))
}
