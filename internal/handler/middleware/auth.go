package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/handler/httperr"
	"badge-promotion-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey     = "actor"
	ctxUserIDKey    = "user_id"
	ctxJWTClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the bearer token into the calling actor.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "Access token required")
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware",
				"error", err.Error(),
				"request_id", GetRequestID(c),
			)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil))
			return
		}

		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				httperr.NewResponse(http.StatusForbidden, httperr.CodeForbidden, "Administrator role required", nil))
			return
		}

		c.Next()
	}
}

// SetActor stores the caller in the request context. Exported for handler tests.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(ctxActorKey, actor)
	c.Set(ctxUserIDKey, actor.UserID())
	c.Set(ctxJWTClaimsKey, map[string]any{
		"user_id":  actor.UserID().String(),
		"is_admin": actor.IsAdmin(),
	})
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}

	actor, ok := v.(user.Actor)
	return actor, ok && actor.IsAuthenticated()
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		httperr.NewResponse(http.StatusUnauthorized, httperr.CodeUnauthorized, msg, nil))
}
