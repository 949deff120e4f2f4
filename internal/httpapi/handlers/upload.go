package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dattran06/chatbot-backend/internal/store/rabbitmq"
)

// Upload forwards every attached file to the storage service and
// collects the retrieval URLs in input order. The URLs are appended to
// the session only when a session_id was sent; the response carries
// them either way.
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded."})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded."})
		return
	}

	if h.Uploader == nil {
		log.Printf("upload: no uploader configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			log.Printf("open %q: %v", fh.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		url, err := h.Uploader.Upload(c.Request.Context(), f, fh.Filename)
		_ = f.Close()
		if err != nil {
			log.Printf("upload %q: %v", fh.Filename, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}
		urls = append(urls, url)
	}

	sessionID := c.PostForm("session_id")
	if sessionID != "" {
		if err := h.Store.AppendFiles(c.Request.Context(), sessionID, urls); err != nil {
			log.Printf("append files: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}
		h.publish(c, rabbitmq.EventFilesUploaded, sessionID, len(urls))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    urls,
		"message": "Uploaded to Cloudinary successfully",
	})
}
