package auth

import (
	"errors"
	"net/http"
	"strings"

	"growth-server/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	actorKey  = "Actor"
	userIDKey = "User-ID"
)

// Authenticate rejects requests without a valid bearer token and stores the
// resolved actor on the gin context.
func (v *Verifier) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingToken.Error(), "code": "UNAUTHORIZED"})
			return
		}

		actor, err := v.Verify(ctx, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": "UNAUTHORIZED"})
			return
		}

		c.Set(actorKey, actor)
		c.Set(userIDKey, actor.ID.String())
		c.Request = c.Request.WithContext(observability.WithFields(ctx,
			observability.Field{Key: "actor_id", Value: actor.ID.String()},
			observability.Field{Key: "actor_role", Value: actor.Role},
		))
		c.Next()
	}
}

// RequireRole lets the request through only when the actor holds one of roles.
// Must run after Authenticate.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := ActorFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": "UNAUTHORIZED"})
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrForbidden.Error(), "code": "FORBIDDEN"})
	}
}

// ActorFromContext returns the actor stored by Authenticate
func ActorFromContext(c *gin.Context) (Actor, error) {
	v, ok := c.Get(actorKey)
	if !ok {
		return Actor{}, ErrMissingToken
	}
	actor, ok := v.(Actor)
	if !ok {
		return Actor{}, errors.New("actor has unexpected type")
	}
	return actor, nil
}

// SetActor stores actor on the gin context. Used by tests and internal callers that
// have already authenticated the request.
func SetActor(c *gin.Context, actor Actor) {
	c.Set(actorKey, actor)
	c.Set(userIDKey, actor.ID.String())
}
