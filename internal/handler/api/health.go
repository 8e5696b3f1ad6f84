package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"badge-promotion-engine/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// @Summary Health check
// @Description Reports whether the service can reach its database
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("health check failed", "error", err.Error())
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, httperr.CodeUnavailable, "Database unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
