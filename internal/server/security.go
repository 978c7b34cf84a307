package server

import (
	"crypto/subtle"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// securityHeaders are set on every response
var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// ClientIPFunc names the client a request counts against
type ClientIPFunc func(r *http.Request) string

// NewClientIPFunc uses the peer address, except that requests arriving from
// a trusted proxy are attributed to the last X-Forwarded-For hop, the
// address that proxy saw connect.
func NewClientIPFunc(trustedProxies []string) ClientIPFunc {
	trusted := make(map[string]struct{}, len(trustedProxies))
	for _, p := range trustedProxies {
		trusted[strings.TrimSpace(p)] = struct{}{}
	}

	return func(r *http.Request) string {
		peer, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			peer = r.RemoteAddr
		}
		if _, ok := trusted[peer]; !ok {
			return peer
		}
		fwd := r.Header.Get(HeaderForwardedFor)
		if fwd == "" {
			return peer
		}
		if i := strings.LastIndexByte(fwd, ','); i >= 0 {
			fwd = fwd[i+1:]
		}
		return strings.TrimSpace(fwd)
	}
}

// AuthMiddleware requires the API key on every non-public path
func AuthMiddleware(apiKey string, clientIP ClientIPFunc, activity *ClientActivity) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			attempts := activity.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"key_present", got != "",
				"attempts", attempts)
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RateLimitMiddleware answers 429 with Retry-After once a client exceeds
// its request budget
func RateLimitMiddleware(clientIP ClientIPFunc, activity *ClientActivity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, wait := activity.Allow(clientIP(r))
			if !ok {
				secs := int(math.Ceil(wait.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(secs))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware sets the browser hardening headers
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
