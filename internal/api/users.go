package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// registerUser handles POST /api/user
func (r *Router) registerUser(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "name is required")
		return
	}

	user, err := r.services.Users.Register(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":    true,
		"author_id": user.ID,
	})
}

// getProfile handles GET /api/users/:id, where :id may be "me"
func (r *Router) getProfile(c *gin.Context) {
	raw := c.Param("id")

	var targetID int64
	if raw == "me" {
		targetID = requesterID(c)
	} else {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			invalidInput(c, "user id must be a number or \"me\"")
			return
		}
		targetID = parsed
	}

	profile, err := r.services.Profile.Get(c.Request.Context(), targetID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": true,
		"user":   profile,
	})
}
