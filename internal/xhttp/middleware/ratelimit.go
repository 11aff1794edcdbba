package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mihrab-app/mihrab/internal/xhttp"
)

// RateLimit applies per-IP rate limiting with an in-memory limiter per
// client. Limiters are never evicted; the server is expected to sit behind
// a proxy that bounds the client population.
func RateLimit(limit rate.Limit, burst int) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters[ip] = limiter
		}
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiterFor(xhttp.GetRequestIP(r)).Allow() {
				xhttp.SetHeaderRetryAfter(w, time.Second)
				xhttp.WriteError(w, http.StatusTooManyRequests, "rate limited")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
