package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/CarbonScan_Go/internal/database"
	"github.com/osse101/CarbonScan_Go/internal/handler"
	"github.com/osse101/CarbonScan_Go/internal/leaderboard"
	"github.com/osse101/CarbonScan_Go/internal/logger"
	"github.com/osse101/CarbonScan_Go/internal/metrics"
	"github.com/osse101/CarbonScan_Go/internal/rewards"
	"github.com/osse101/CarbonScan_Go/internal/scan"
	"github.com/osse101/CarbonScan_Go/internal/user"
)

// Services groups everything the API routes call into
type Services struct {
	Scan        scan.Service
	User        user.Service
	Leaderboard leaderboard.Service
	Catalog     []rewards.AchievementDefinition
}

// Options configures the HTTP surface
type Options struct {
	Port           int
	Version        string
	APIKey         string
	TrustedProxies []string
	Activity       ActivityConfig
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	activity := NewClientActivity(opts.Activity)
	clientIP := NewClientIPFunc(opts.TrustedProxies)

	// Outermost first
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	// Rejected keys still spend the client's request budget
	r.Use(RateLimitMiddleware(clientIP, activity))
	r.Use(AuthMiddleware(opts.APIKey, clientIP, activity))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(handler.DatabaseCheck(dbPool)))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/scan", handler.HandleScan(svcs.Scan))

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterUser(svcs.User))
			r.Get("/profile", handler.HandleGetProfile(svcs.User))
			r.Get("/scans", handler.HandleGetScanHistory(svcs.User))
			r.Get("/transactions", handler.HandleGetTransactions(svcs.User))
		})

		r.Get("/leaderboard", handler.HandleGetLeaderboard(svcs.Leaderboard))
		r.Get("/achievements", handler.HandleGetAchievements(svcs.Catalog))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		router: r,
	}
}

// Handler exposes the routed middleware stack, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		// Reuse an upstream request ID so logs correlate across hops
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		if log.Enabled(ctx, slog.LevelDebug) {
			log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))
		}

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
