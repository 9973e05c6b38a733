package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTimeout = 10 * time.Minute

// clientLimiter hands out one token bucket per client IP. Buckets of clients
// that stay idle longer than limiterIdleTimeout are dropped.
type clientLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
}

func newClientLimiter(requestsPerSecond float64, burst int) *clientLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &clientLimiter{
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		limiters: cache.New(limiterIdleTimeout, 2*limiterIdleTimeout),
	}
}

func (c *clientLimiter) allow(client string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	var limiter *rate.Limiter
	if cached, ok := c.limiters.Get(client); ok {
		limiter = cached.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(c.limit, c.burst)
	}
	c.limiters.SetDefault(client, limiter)
	return limiter.Allow()
}

func (h *handler) rateLimit(limiter *clientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}
			if !limiter.allow(client) {
				h.logger.Warn("rate limit exceeded",
					zap.String("op", "server.rateLimit"),
					zap.String("client", client),
					zap.String("path", r.URL.Path),
				)
				h.writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
