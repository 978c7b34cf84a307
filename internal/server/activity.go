package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ActivityConfig sets the per-client window and its thresholds
type ActivityConfig struct {
	Window          time.Duration
	FailedAuthAlert int
	MaxRequests     int
	// MaxClients bounds how many client windows are remembered at once
	MaxClients int
}

// DefaultActivityConfig allows 1000 requests per client in five minutes
func DefaultActivityConfig() ActivityConfig {
	return ActivityConfig{
		Window:          DefaultActivityWindow,
		FailedAuthAlert: DefaultFailedAuthAlert,
		MaxRequests:     DefaultMaxRequestsPerIP,
		MaxClients:      DefaultMaxTrackedClients,
	}
}

// clientWindow is one client's counters. A window opens with the client's
// first request and lasts ActivityConfig.Window.
type clientWindow struct {
	opened     time.Time
	requests   int
	failedAuth int
}

// ClientActivity tracks request rates and failed logins per client IP.
// Idle clients age out of the cache after one window.
type ClientActivity struct {
	mu      sync.Mutex
	cfg     ActivityConfig
	clients *expirable.LRU[string, *clientWindow]
	now     func() time.Time
}

func NewClientActivity(cfg ActivityConfig) *ClientActivity {
	def := DefaultActivityConfig()
	if cfg.Window <= 0 {
		cfg.Window = def.Window
	}
	if cfg.FailedAuthAlert <= 0 {
		cfg.FailedAuthAlert = def.FailedAuthAlert
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = def.MaxRequests
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = def.MaxClients
	}
	return &ClientActivity{
		cfg:     cfg,
		clients: expirable.NewLRU[string, *clientWindow](cfg.MaxClients, nil, cfg.Window),
		now:     time.Now,
	}
}

// current returns ip's open window, starting a fresh one when the last has
// run out. Caller holds mu.
func (a *ClientActivity) current(ip string) *clientWindow {
	now := a.now()
	if w, ok := a.clients.Get(ip); ok && now.Sub(w.opened) < a.cfg.Window {
		return w
	}
	w := &clientWindow{opened: now}
	a.clients.Add(ip, w)
	return w
}

// RecordFailedAuth counts a rejected API key and alerts once the client
// reaches the threshold within its window
func (a *ClientActivity) RecordFailedAuth(ip string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	w := a.current(ip)
	w.failedAuth++
	if w.failedAuth >= a.cfg.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failedAuth)
	}
	return w.failedAuth
}

// Allow counts a request. Over the limit it returns false and how long
// until the client's window closes.
func (a *ClientActivity) Allow(ip string) (bool, time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	w := a.current(ip)
	w.requests++
	if w.requests <= a.cfg.MaxRequests {
		return true, 0
	}

	if w.requests%highRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false, w.opened.Add(a.cfg.Window).Sub(a.now())
}
