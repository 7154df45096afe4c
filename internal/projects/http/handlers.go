package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/auth"
	"github.com/labelforge/annotate-backend/internal/pagination"
	"github.com/labelforge/annotate-backend/internal/projects/domain"
	"github.com/labelforge/annotate-backend/internal/projects/service"
)

type Handler struct {
	svc     *service.Service
	liveURL string
}

func Register(rg gin.IRouter, svc *service.Service, liveURL string) {
	h := &Handler{svc: svc, liveURL: liveURL}

	rg.POST("/projects", h.create)
	rg.GET("/projects", h.list)
	rg.GET("/projects/:project_id", h.get)
	rg.PUT("/projects/:project_id", h.update)
	rg.DELETE("/projects/:project_id", h.delete)
}

type createReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		apperr.Abort(c, apperr.InvalidInput("project payload"))
		return
	}

	userID := auth.UserID(c)
	p, err := h.svc.Create(c.Request.Context(), userID, strings.TrimSpace(req.Name), req.Description)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	userID := auth.UserID(c)

	params := pagination.ParseParams(c)
	items, total, err := h.svc.List(c.Request.Context(), userID, params)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewPage(h.liveURL, c.Request.URL.Path, params, total, items))
}

func (h *Handler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id, auth.UserID(c))
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type updateReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *Handler) update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.InvalidInput("project payload"))
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, auth.UserID(c), domain.Update{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, auth.UserID(c)); err != nil {
		apperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.InvalidInput("project_id")
	}
	return id, nil
}
