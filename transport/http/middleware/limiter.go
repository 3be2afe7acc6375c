package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rentdesk/shared"
	"rentdesk/shared/constant"
	"rentdesk/transport/http/response"

	"github.com/rs/zerolog/log"
)

const unknownAgent = "unknown"

// RateLimit allows MaxRequests per peer address within a fixed window counted in the cache.
// Forwarding headers and the User-Agent are client supplied and never part of the key. Clients are told their budget through the X-RateLimit headers. When the cache cannot be
// reached the request is served unmetered.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limit := a.config.App.RateLimiter
	window := time.Duration(limit.WindowSeconds) * time.Second

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limit.Enable {
				next.ServeHTTP(w, r)

				return
			}

			key := shared.BuildCacheKey(constant.CacheKeyRateLimit, peerAddress(r))

			count, err := a.cache.Incr(r.Context(), key, window)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			remaining := max(0, int64(limit.MaxRequests)-count)

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit.MaxRequests))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(remaining, 10))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limit.WindowSeconds))

			if count > int64(limit.MaxRequests) {
				header.Set(constant.RequestHeaderRetryAfter, strconv.Itoa(limit.WindowSeconds))
				log.Debug().Str("key", key).Int64("count", count).Msg("request limit exceeded")
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownAgent
}

// clientAddress prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer host.
// It is reported in traces only.
func clientAddress(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return peerAddress(r)
}

// peerAddress is the host of the connection that sent the request.
func peerAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
