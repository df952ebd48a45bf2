package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/m04kA/MediCare-Gateway/internal/api/handlers"
)

const (
	limiterCacheSize = 10000
	limiterIdleTTL   = 10 * time.Minute

	msgTooManyRequests = "too many requests, try again later"
)

// RateLimiter ограничивает частоту запросов с одного IP
type RateLimiter struct {
	limit    rate.Limit
	burst    int
	mu       sync.Mutex // get-or-create лимитера атомарно
	limiters *expirable.LRU[string, *rate.Limiter]
	logger   Logger
}

// NewRateLimiter perMinute запросов в минуту с запасом burst
func NewRateLimiter(perMinute, burst int, logger Logger) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL),
		logger:   logger,
	}
}

// Allow проверяет и расходует токен для ip
func (l *RateLimiter) Allow(ip string) bool {
	return l.limiterFor(ip).Allow()
}

// limiterFor возвращает лимитер ip и продлевает его TTL: Get в expirable LRU срок не обновляет, Add обновляет
func (l *RateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	l.limiters.Add(ip, limiter)
	return limiter
}

// Middleware отвечает 429, когда лимит для IP исчерпан
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.Allow(ip) {
			l.logger.Warn("%s %s - Rate limited: ip=%s", r.Method, r.URL.Path, ip)
			w.Header().Set("Retry-After", "60")
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
