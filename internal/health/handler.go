// Package health serves liveness and readiness probes.
package health

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
)

const checkTimeout = 5 * time.Second

// Checker is anything that can report its own reachability.
type Checker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db       Checker
	redis    Checker
	shutdown atomic.Bool
}

func NewHandler(db, redis Checker) *Handler {
	return &Handler{db: db, redis: redis}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Liveness)
	e.GET("/readyz", h.Readiness)
}

// Liveness godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} StatusResponse
// @Router /healthz [get]
func (h *Handler) Liveness(c echo.Context) error {
	if h.shutdown.Load() {
		return writeStatus(c, http.StatusServiceUnavailable, StatusResponse{Status: "shutting_down"})
	}
	return writeStatus(c, http.StatusOK, StatusResponse{Status: "ok"})
}

// Readiness godoc
// @Summary Readiness probe checking the database and Redis
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /readyz [get]
func (h *Handler) Readiness(c echo.Context) error {
	if h.shutdown.Load() {
		return writeStatus(c, http.StatusServiceUnavailable, StatusResponse{Status: "shutting_down"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
	defer cancel()

	checks := h.runChecks(ctx)

	status, code := "ok", http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}
	return writeStatus(c, code, ReadinessResponse{Status: status, Checks: checks})
}

// SetShutdown makes both probes report 503 while the server drains.
func (h *Handler) SetShutdown(shutdown bool) {
	h.shutdown.Store(shutdown)
}

func (h *Handler) runChecks(ctx context.Context) []HealthCheck {
	targets := []struct {
		name    string
		checker Checker
	}{
		{"database", h.db},
		{"redis", h.redis},
	}

	var wg sync.WaitGroup
	checks := make([]HealthCheck, len(targets))
	for i, target := range targets {
		wg.Add(1)
		go func(i int, name string, checker Checker) {
			defer wg.Done()
			checks[i] = check(ctx, name, checker)
		}(i, target.name, target.checker)
	}
	wg.Wait()
	return checks
}

func check(ctx context.Context, name string, checker Checker) HealthCheck {
	result := HealthCheck{Name: name, Healthy: true}
	if checker == nil {
		result.Healthy = false
		result.Message = name + " checker not configured"
		return result
	}

	start := time.Now()
	err := checker.Ping(ctx)
	result.Latency = time.Since(start).String()
	if err != nil {
		result.Healthy = false
		result.Message = "ping failed"
	}
	return result
}

func writeStatus(c echo.Context, status int, data any) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	return c.JSON(status, data)
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ReadinessResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}
