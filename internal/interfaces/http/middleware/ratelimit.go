package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/facultyfeedback/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Limiter counts hits per key in fixed windows. Allow records one hit and
// reports whether it fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int, err error)
	Limit() int
}

// WindowLimiter is the in-process Limiter. Counts are not shared between
// replicas; the Redis limiter in the cache package is.
type WindowLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	length  time.Duration
	now     func() time.Time
}

type window struct {
	start time.Time
	hits  int
}

// NewWindowLimiter allows limit hits per key every length. Idle keys are
// swept until ctx is cancelled.
func NewWindowLimiter(ctx context.Context, limit int, length time.Duration) *WindowLimiter {
	l := &WindowLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		length:  length,
		now:     time.Now,
	}
	go l.sweep(ctx)
	return l
}

func (l *WindowLimiter) Limit() int { return l.limit }

func (l *WindowLimiter) Allow(_ context.Context, key string) (bool, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.length {
		w = &window{start: now}
		l.windows[key] = w
	}
	if w.hits >= l.limit {
		return false, 0, nil
	}
	w.hits++
	return true, l.limit - w.hits, nil
}

func (l *WindowLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(2 * l.length)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.mu.Lock()
			cutoff := l.now().Add(-l.length)
			for key, w := range l.windows {
				if w.start.Before(cutoff) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// RateLimit throttles by client IP and route, so repeated logins do not use
// up the quota for refresh or register. A failing limiter lets the request
// through.
func RateLimit(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return RateLimitByKey(limiter, logger, func(c *gin.Context) string {
		return c.ClientIP() + " " + c.FullPath()
	})
}

// RateLimitByKey is RateLimit with a caller-chosen key.
func RateLimitByKey(limiter Limiter, logger *zap.Logger, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		allowed, remaining, err := limiter.Allow(c.Request.Context(), keyFunc(c))
		if err != nil {
			logger.Warn("Rate limiter unavailable", zap.Error(err), zap.String("path", c.FullPath()))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			abortWithError(c, dto.ErrCodeRateLimited, "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}
