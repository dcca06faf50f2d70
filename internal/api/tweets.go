package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// createTweet handles POST /api/tweets
func (r *Router) createTweet(c *gin.Context) {
	var req struct {
		TweetData     string  `json:"tweet_data" binding:"required"`
		TweetMediaIDs []int64 `json:"tweet_media_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "tweet_data is required")
		return
	}

	tweetID, err := r.services.Tweets.Create(c.Request.Context(), requesterID(c), req.TweetData, req.TweetMediaIDs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   true,
		"tweet_id": tweetID,
	})
}

// deleteTweet handles DELETE /api/tweets/:id
func (r *Router) deleteTweet(c *gin.Context) {
	tweetID, ok := pathID(c)
	if !ok {
		return
	}

	if err := r.services.Tweets.Delete(c.Request.Context(), requesterID(c), tweetID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": true})
}

// getFeed handles GET /api/tweets
func (r *Router) getFeed(c *gin.Context) {
	tweets, err := r.services.Feed.GetFeed(c.Request.Context(), requesterID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"tweets": tweets,
	})
}

// pathID parses the :id path parameter, writing a 422 on failure
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		invalidInput(c, "id must be a number")
		return 0, false
	}
	return id, true
}
