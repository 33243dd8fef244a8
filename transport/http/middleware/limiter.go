package middleware

import (
	"bloom/shared"
	"bloom/shared/cache"
	"bloom/shared/constant"
	"bloom/shared/timezone"
	"bloom/transport/http/response"
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	bucketRead        = "read"
	bucketWrite       = "write"
)

// window is a fixed rate limit window as stored in redis.
type window struct {
	Count   int   `json:"count"`
	StartAt int64 `json:"startAt"`
}

// remaining reports how many seconds of the window are left, never less than one.
func (w window) remaining(now int64, size int) int {
	left := size - int(now-w.StartAt)
	if left < 1 {
		return 1
	}

	return left
}

// RateLimit counts requests per client in fixed windows. Reads and writes
// are counted in separate buckets so polling slots cannot starve bookings.
// When redis is unreachable requests are let through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limits := a.config.App.RateLimiter
			if !limits.Enable {
				next.ServeHTTP(w, r)

				return
			}

			key := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), bucket(r))

			win, allowed, err := a.hit(r.Context(), key, limits.MaxRequests, limits.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter cache unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			left := win.remaining(timezone.Now().Unix(), limits.WindowSeconds)

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limits.MaxRequests-win.Count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			if !allowed {
				w.Header().Set(constant.ResponseHeaderRetryAfter, strconv.Itoa(left))
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hit records one request against key. Rejected requests are not counted
// and the window keeps its original expiry.
func (a *appMiddleware) hit(ctx context.Context, key string, limit, size int) (window, bool, error) {
	now := timezone.Now().Unix()

	var win window
	if err := a.cache.Get(ctx, key, &win); err != nil {
		if !errors.Is(err, cache.Nil) {
			return win, false, err //nolint:wrapcheck
		}

		win = window{StartAt: now}
	}

	if win.Count >= limit {
		return win, false, nil
	}

	win.Count++

	if err := a.cache.Save(ctx, key, win, win.remaining(now, size)); err != nil {
		return win, false, err //nolint:wrapcheck
	}

	return win, true, nil
}

func bucket(r *http.Request) string {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return bucketRead
	default:
		return bucketWrite
	}
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
