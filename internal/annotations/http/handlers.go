package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/annotate-backend/internal/annotations/domain"
	"github.com/labelforge/annotate-backend/internal/annotations/service"
	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/pagination"
)

type Handler struct {
	svc     *service.Service
	liveURL string
}

func Register(rg gin.IRouter, svc *service.Service, liveURL string) {
	h := &Handler{svc: svc, liveURL: liveURL}

	rg.POST("/create-annotation", h.create)
	rg.GET("/list-annotations/:task_id", h.list)
	rg.PUT("/update-annotation/:annotation_id", h.update)
	rg.DELETE("/delete-annotation/:annotation_id", h.delete)
}

type createReq struct {
	TaskID      int64          `json:"task_id" binding:"required"`
	Coordinates string         `json:"coordinates"`
	Labels      string         `json:"labels"`
	Data        map[string]any `json:"data"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.InvalidInput("annotation payload"))
		return
	}

	a, err := h.svc.Create(c.Request.Context(), req.TaskID, req.Coordinates, req.Labels, req.Data)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) list(c *gin.Context) {
	taskID, err := pathID(c, "task_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	params := pagination.ParseParams(c)
	items, total, err := h.svc.ListByTask(c.Request.Context(), taskID, params)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewPage(h.liveURL, c.Request.URL.Path, params, total, items))
}

type updateReq struct {
	Coordinates *string        `json:"coordinates"`
	Labels      *string        `json:"labels"`
	Data        map[string]any `json:"data"`
}

func (h *Handler) update(c *gin.Context) {
	id, err := pathID(c, "annotation_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.InvalidInput("annotation payload"))
		return
	}

	a, err := h.svc.Update(c.Request.Context(), id, domain.Update{
		Coordinates: req.Coordinates,
		Labels:      req.Labels,
		Data:        req.Data,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := pathID(c, "annotation_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		apperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.InvalidInput(name)
	}
	return id, nil
}
