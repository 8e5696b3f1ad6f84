//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"badge-promotion-engine/internal/handler/api"
	"badge-promotion-engine/internal/handler/httperr"
	"badge-promotion-engine/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ok when the database answers", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", api.NewHealthHandler(pingFunc(func(context.Context) error { return nil })).Check)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("503 when the ping fails", func(t *testing.T) {
		r := gin.New()
		r.GET("/health", api.NewHealthHandler(pingFunc(func(context.Context) error {
			return errors.New("dial tcp: connection refused")
		})).Check)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, httperr.CodeUnavailable)
	})
}
