package api

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(5, 30)
	start := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	rl.get("10.0.0.1", start)
	rl.get("10.0.0.2", start.Add(2*time.Minute))
	assert.Equal(t, 2, rl.size())

	rl.sweep(start.Add(visitorTTL + time.Second))
	assert.Equal(t, 1, rl.size())

	rl.sweep(start.Add(2*time.Minute + visitorTTL + time.Second))
	assert.Equal(t, 0, rl.size())
}

func TestRateLimiterKeepsBucketPerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()
	assert.Same(t, rl.get("a", now), rl.get("a", now))
	assert.NotSame(t, rl.get("a", now), rl.get("b", now))
}

func TestJanitorStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Janitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestClientKey(t *testing.T) {
	testCases := []struct {
		Desc      string
		Remote    string
		Forwarded string
		Expected  string
	}{
		{Desc: "remote addr host", Remote: "192.0.2.10:5555", Expected: "192.0.2.10"},
		{Desc: "first forwarded address", Remote: "10.0.0.1:80", Forwarded: "203.0.113.5, 10.0.0.1", Expected: "203.0.113.5"},
		{Desc: "remote addr without port", Remote: "unix", Expected: "unix"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.Remote
			if tc.Forwarded != "" {
				r.Header.Set("X-Forwarded-For", tc.Forwarded)
			}
			assert.Equal(t, tc.Expected, clientKey(r))
		})
	}
}
