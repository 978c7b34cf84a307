package handler

import (
	"context"
	"net/http"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/osse101/CarbonScan_Go/internal/database"
	"github.com/osse101/CarbonScan_Go/internal/logger"
)

// readinessTimeout bounds every readiness probe
const readinessTimeout = 2 * time.Second

// HealthResponse is the body of /healthz and /readyz. Checks is only set on /readyz.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ReadinessCheck is one dependency /readyz probes
type ReadinessCheck struct {
	Name  string
	Probe func(ctx context.Context) error
}

// DatabaseCheck pings the connection pool
func DatabaseCheck(pool database.Pool) ReadinessCheck {
	return ReadinessCheck{Name: CheckNameDatabase, Probe: pool.Ping}
}

// HandleHealthz answers as long as the process serves HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz runs every check under a shared deadline and fails if any does
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: HealthStatusOK, Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Probe(ctx); err != nil {
				logger.FromContext(r.Context()).Error("Readiness check failed", "check", c.Name, "error", err)
				resp.Checks[c.Name] = HealthStatusUnavailable
				resp.Status = HealthStatusUnavailable
				continue
			}
			resp.Checks[c.Name] = HealthStatusOK
		}

		status := http.StatusOK
		if resp.Status != HealthStatusOK {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, resp)
	}
}

// VersionInfo describes the running build
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Revision  string `json:"revision,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// HandleVersion reports version plus the VCS stamp the Go toolchain embedded
// @Summary Build version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(version string) http.HandlerFunc {
	info := buildVersionInfo(version)
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func buildVersionInfo(version string) VersionInfo {
	info := VersionInfo{Version: version, GoVersion: runtime.Version()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}
