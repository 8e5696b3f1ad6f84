package api

import (
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requireActor aborts with 401 when no caller was resolved.
func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return user.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
