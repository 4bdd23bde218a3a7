// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	startedAt time.Time
	locale    string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string `json:"status"`
	Locale        string `json:"locale"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Timestamp     string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// locale is the configured number formatting locale.
func NewHealthController(locale string) *HealthController {
	return &HealthController{
		startedAt: time.Now(),
		locale:    locale,
	}
}

// Check handles GET /health requests.
func (h *HealthController) Check(c *gin.Context) {
	now := time.Now()

	response := HealthResponse{
		Status:        "ok",
		Locale:        h.locale,
		UptimeSeconds: int64(now.Sub(h.startedAt).Seconds()),
		Timestamp:     now.UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
