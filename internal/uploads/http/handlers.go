package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/uploads"
)

type Handler struct {
	store   uploads.MediaStore
	allowed map[string]bool
}

func Register(rg gin.IRouter, store uploads.MediaStore, allowedTypes []string) {
	h := &Handler{store: store, allowed: make(map[string]bool, len(allowedTypes))}
	for _, t := range allowedTypes {
		h.allowed[t] = true
	}

	rg.POST("/upload-image", h.upload)
}

// upload accepts a multipart image, checks its declared content type against
// the allow-list, forwards the bytes to the media host, and returns the URL.
func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apperr.Abort(c, apperr.InvalidInputMsg("A file is required."))
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !h.allowed[contentType] {
		apperr.Abort(c, apperr.Upstream("Unsupported file type"))
		return
	}

	src, err := file.Open()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	defer src.Close()

	key := uuid.NewString() + filepath.Ext(file.Filename)
	url, err := h.store.Upload(c.Request.Context(), key, contentType, src)
	if err != nil {
		apperr.Abort(c, apperr.Upstream("Image upload failed."))
		return
	}

	c.JSON(http.StatusOK, url)
}
