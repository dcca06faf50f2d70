package api

import (
	"github.com/gin-gonic/gin"

	"github.com/microblogd/microblog/internal/apperror"
	"github.com/microblogd/microblog/internal/auth"
)

// userIDKey is the gin context key holding the authenticated user id
const userIDKey = "user_id"

// RequireAuth resolves the api-key header to a user id and rejects the
// request before any handler runs when the credential is unknown.
func RequireAuth(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := resolver.Resolve(c.GetHeader("api-key"))
		if !ok {
			writeError(c, apperror.Unauthenticated())
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// requesterID returns the authenticated user id set by RequireAuth
func requesterID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
