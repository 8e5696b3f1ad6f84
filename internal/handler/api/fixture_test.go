//go:build unit

package api_test

import (
	"net/http"

	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/handler/httperr"
	"badge-promotion-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	memberToken = "member-token"
	adminToken  = "admin-token"
)

// fakeAuth stands in for RequireAuth: the bearer token picks the actor.
func fakeAuth(member, admin user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.GetHeader("Authorization") {
		case "Bearer " + memberToken:
			middleware.SetActor(c, member)
		case "Bearer " + adminToken:
			middleware.SetActor(c, admin)
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				httperr.NewResponse(http.StatusUnauthorized, httperr.CodeUnauthorized, "Unauthorized", nil))
			return
		}
		c.Next()
	}
}

func newActors() (member, admin user.Actor) {
	return user.NewActor(uuid.New(), false), user.NewActor(uuid.New(), true)
}
