package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// follow handles POST /api/users/:id/follow
func (r *Router) follow(c *gin.Context) {
	authorID, ok := pathID(c)
	if !ok {
		return
	}

	if err := r.services.Follows.Follow(c.Request.Context(), requesterID(c), authorID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// unfollow handles DELETE /api/users/:id/follow
func (r *Router) unfollow(c *gin.Context) {
	authorID, ok := pathID(c)
	if !ok {
		return
	}

	if err := r.services.Follows.Unfollow(c.Request.Context(), requesterID(c), authorID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}
