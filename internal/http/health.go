package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// CheckResult is the outcome of one dependency check.
type CheckResult struct {
	Status    string `json:"status"` // ok, failing or not_configured
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// HealthReport is the body of GET /health.
type HealthReport struct {
	Status    string                 `json:"status"` // up or down
	CheckedAt time.Time              `json:"checked_at"`
	Version   string                 `json:"version,omitempty"`
	Checks    map[string]CheckResult `json:"checks"`
}

// HealthController reports whether the catalog store answers. Each check is
// bounded by healthCheckTimeout so a hung store cannot stall the report.
type HealthController struct {
	store   Pinger
	version string
}

func NewHealthController(store Pinger, version string) *HealthController {
	return &HealthController{store: store, version: version}
}

func (h *HealthController) Status(c *gin.Context) {
	database := h.checkDatabase(c.Request.Context())

	report := HealthReport{
		Status:    "up",
		CheckedAt: time.Now().UTC(),
		Version:   h.version,
		Checks:    map[string]CheckResult{"database": database},
	}

	code := http.StatusOK
	if database.Status == "failing" {
		report.Status = "down"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}

func (h *HealthController) checkDatabase(ctx context.Context) CheckResult {
	if h.store == nil {
		return CheckResult{Status: "not_configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	result := CheckResult{Status: "ok", LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		result.Status = "failing"
		result.Error = err.Error()
	}
	return result
}
