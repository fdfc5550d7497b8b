package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitplanner/internal/auth"
	"github.com/2beens/fitplanner/internal/telemetry/metrics"
	"github.com/2beens/fitplanner/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit limits requests per minute, keyed by the limiter name and the caller.
// The caller is the logged-in user when known, otherwise the client IP.
func RateLimit(
	rateLimiter RequestRateLimiter,
	limiterName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := rateLimiter.Allow(
				r.Context(),
				rateLimitKey(r, limiterName),
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limiter [%s]: %s", limiterName, err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())+1))
			http.Error(
				w,
				fmt.Sprintf("retry after %.0f seconds", res.RetryAfter.Seconds()),
				http.StatusTooManyRequests,
			)
		})
	}
}

func rateLimitKey(r *http.Request, limiterName string) string {
	if userID, ok := auth.UserIDFromContext(r.Context()); ok {
		return fmt.Sprintf("%s::user::%d", limiterName, userID)
	}
	ip, err := pkg.ReadUserIP(r)
	if err != nil {
		ip = "unknown"
	}
	return fmt.Sprintf("%s::ip::%s", limiterName, ip)
}
