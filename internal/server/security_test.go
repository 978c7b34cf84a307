package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	mw := AuthMiddleware(apiKey, NewClientIPFunc(nil), NewClientActivity(ActivityConfig{}))

	tests := []struct {
		name   string
		key    string
		path   string
		status int
	}{
		{"correct key", apiKey, "/api/v1/scan", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/scan", http.StatusUnauthorized},
		{"key prefix only", "secret", "/api/v1/scan", http.StatusUnauthorized},
		{"no key", "", "/api/v1/scan", http.StatusUnauthorized},
		{"healthz is public", "", "/healthz", http.StatusOK},
		{"metrics is public", "", "/metrics", http.StatusOK},
		{"version is public", "", "/version", http.StatusOK},
		{"swagger is public", "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()

			mw(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuthMiddleware_CountsFailuresPerClient(t *testing.T) {
	activity := NewClientActivity(ActivityConfig{})
	mw := AuthMiddleware("secret-key", NewClientIPFunc(nil), activity)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		mw(okHandler()).ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, 4, activity.RecordFailedAuth("10.0.0.7"))
	assert.Equal(t, 1, activity.RecordFailedAuth("10.0.0.8"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	mw := RequestSizeLimitMiddleware(8)
	var readErr error
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", strings.NewReader("0123456789abcdef"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}

func TestClientIPFunc(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"peer address", "192.168.1.5:1234", "", nil, "192.168.1.5"},
		{"forwarded ignored from untrusted peer", "192.168.1.5:1234", "1.2.3.4", nil, "192.168.1.5"},
		{"forwarded honored from trusted proxy", "10.0.0.1:80", "1.2.3.4", []string{"10.0.0.1"}, "1.2.3.4"},
		{"spoofed leftmost hop ignored", "10.0.0.1:80", "6.6.6.6, 1.2.3.4", []string{"10.0.0.1"}, "1.2.3.4"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{" 10.0.0.1 "}, "10.0.0.1"},
		{"peer without port", "192.168.1.9", "", nil, "192.168.1.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, NewClientIPFunc(tt.trusted)(req))
		})
	}
}
