package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/RiftStats_Go/internal/auth"
	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
)

// TokenParser verifies session tokens, satisfied by auth.Service
type TokenParser interface {
	ParseToken(token string) (domain.Profile, error)
}

// AuthMiddleware attaches the caller identity when credentials are valid.
// A matching X-API-Key grants the service admin profile; otherwise a Bearer token is parsed.
// Invalid credentials are recorded and the request continues anonymously,
// so public routes still work while protected ones reject it.
func AuthMiddleware(tokens TokenParser, apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)
			token, hasToken := bearerToken(r)
			if providedKey == "" && !hasToken {
				next.ServeHTTP(w, r)
				return
			}

			if providedKey != "" && apiKey != "" &&
				subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r.WithContext(auth.WithProfile(r.Context(), auth.ServiceProfile())))
				return
			}

			if hasToken {
				if profile, err := tokens.ParseToken(token); err == nil {
					next.ServeHTTP(w, r.WithContext(auth.WithProfile(r.Context(), profile)))
					return
				}
			}

			ip := extractIP(r, trustedProxies)
			detector.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"has_key", providedKey != "",
				"has_token", hasToken,
				"ip", ip)

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get(HeaderAuthorization)
	if len(h) <= len(BearerPrefix) || !strings.EqualFold(h[:len(BearerPrefix)], BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(h[len(BearerPrefix):])
	return token, token != ""
}

// RequireUser rejects anonymous requests
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.ProfileFromContext(r.Context()); !ok {
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := auth.ProfileFromContext(r.Context())
		if !ok {
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}
		if !p.IsAdmin {
			logger.FromContext(r.Context()).Warn(LogMsgAdminRequired, "username", p.Username, "path", r.URL.Path)
			http.Error(w, ErrMsgForbidden, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector counts failed authentications per IP over a sliding window
type SuspiciousActivityDetector struct {
	mu         sync.Mutex
	failedAuth *expirable.LRU[string, int]
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuth: expirable.NewLRU[string, int](TrackedClientLimit, nil, FailedAuthWindow),
	}
}

// RecordFailedAuth records a failed authentication attempt and returns the count in the window
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, _ := s.failedAuth.Get(ip)
	count++
	s.failedAuth.Add(ip, count)

	if count >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// ClientRateLimiter holds one token bucket per client IP
type ClientRateLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters *expirable.LRU[string, *rate.Limiter]
	rejected int
}

// NewClientRateLimiter allows rps sustained requests per IP with the given burst
func NewClientRateLimiter(rps float64, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		limiters: expirable.NewLRU[string, *rate.Limiter](TrackedClientLimit, nil, ClientLimiterIdleTTL),
	}
}

// Allow reports whether ip may make another request now
func (c *ClientRateLimiter) Allow(ip string) bool {
	c.mu.Lock()
	lim, ok := c.limiters.Get(ip)
	if !ok {
		lim = rate.NewLimiter(c.limit, c.burst)
		c.limiters.Add(ip, lim)
	}
	c.mu.Unlock()

	if lim.Allow() {
		return true
	}

	c.mu.Lock()
	c.rejected++
	n := c.rejected
	c.mu.Unlock()
	if n%HighRateLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "rejected_total", n)
	}
	return false
}

// RateLimitMiddleware enforces per-IP request rates
func RateLimitMiddleware(trustedProxies []string, limiter *ClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(extractIP(r, trustedProxies)) {
				w.Header().Set(HeaderRetryAfter, "1")
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost hop is the one our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}
