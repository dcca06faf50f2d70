package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadMedia handles POST /api/medias (multipart form, field "file")
func (r *Router) uploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		invalidInput(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(c, err)
		return
	}

	mediaID, err := r.services.Media.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   true,
		"media_id": mediaID,
	})
}
