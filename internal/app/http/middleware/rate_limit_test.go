package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_SlidingWindow(t *testing.T) {
	rl := newRateLimiter(3, time.Minute)
	now := time.Now()

	assert.True(t, rl.allow("1.2.3.4", now))
	assert.True(t, rl.allow("1.2.3.4", now.Add(time.Second)))
	assert.True(t, rl.allow("1.2.3.4", now.Add(2*time.Second)))
	assert.False(t, rl.allow("1.2.3.4", now.Add(3*time.Second)))

	// A different client is unaffected.
	assert.True(t, rl.allow("5.6.7.8", now.Add(3*time.Second)))

	// Once the oldest request slides out of the window, capacity returns.
	assert.True(t, rl.allow("1.2.3.4", now.Add(61*time.Second)))
}

func TestRateLimiter_WindowPrunesHistory(t *testing.T) {
	rl := newRateLimiter(2, time.Second)
	now := time.Now()

	assert.True(t, rl.allow("1.2.3.4", now))
	assert.True(t, rl.allow("1.2.3.4", now))
	assert.False(t, rl.allow("1.2.3.4", now))

	later := now.Add(2 * time.Second)
	assert.True(t, rl.allow("1.2.3.4", later))
	assert.Len(t, rl.history["1.2.3.4"], 1)
}
