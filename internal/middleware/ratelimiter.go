package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/time/rate"
)

type clientLimiters struct {
	mu     sync.Mutex
	perKey map[string]*rate.Limiter
	limit  rate.Limit
	burst  int
}

func (l *clientLimiters) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.perKey[key]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.perKey[key] = limiter
	}
	return limiter
}

// RateLimit throttles each caller independently: authenticated requests
// are keyed by Telegram user id, anonymous ones by client IP.
func RateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	limiters := &clientLimiters{
		perKey: make(map[string]*rate.Limiter),
		limit:  limit,
		burst:  burst,
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiters.limiterFor(clientKey(r)).Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if userID, ok := GetUserID(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	return "ip:" + ip
}
