package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addLike handles POST /api/tweets/:id/likes
func (r *Router) addLike(c *gin.Context) {
	tweetID, ok := pathID(c)
	if !ok {
		return
	}

	if err := r.services.Likes.Add(c.Request.Context(), requesterID(c), tweetID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// removeLike handles DELETE /api/tweets/:id/likes
func (r *Router) removeLike(c *gin.Context) {
	tweetID, ok := pathID(c)
	if !ok {
		return
	}

	if err := r.services.Likes.Remove(c.Request.Context(), requesterID(c), tweetID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}
