package ratelimit

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/bornholm/navchrome/internal/syncx"
	"github.com/bornholm/navchrome/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	rate    rate.Limit
	burst   int
	clients syncx.Map[string, *rate.Limiter]
}

type GetClientKeyFunc func(r *http.Request) (string, error)

func (l *RateLimiter) Middleware(getClientKey GetClientKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			clientKey, err := getClientKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve client key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			limiter, _ := l.clients.LoadOrStore(clientKey, rate.NewLimiter(l.rate, l.burst))

			if !limiter.Allow() {
				slog.WarnContext(ctx, "rate limit exceeded", slog.String("client", clientKey))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RemoteAddr keys clients by the host part of the request's remote address.
func RemoteAddr(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse remote address '%s'", r.RemoteAddr)
	}

	return host, nil
}

func New(rate rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate,
		burst: burst,
	}
}
