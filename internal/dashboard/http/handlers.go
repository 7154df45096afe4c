package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/auth"
	"github.com/labelforge/annotate-backend/internal/dashboard/service"
)

type Handler struct {
	svc *service.Service
}

func Register(rg gin.IRouter, svc *service.Service) {
	h := &Handler{svc: svc}

	rg.GET("/metrics", h.metrics)
}

func (h *Handler) metrics(c *gin.Context) {
	m, err := h.svc.Metrics(c.Request.Context(), auth.UserID(c))
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
