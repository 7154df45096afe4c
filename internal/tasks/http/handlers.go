package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/pagination"
	"github.com/labelforge/annotate-backend/internal/tasks/service"
)

type Handler struct {
	svc     *service.Service
	liveURL string
}

func Register(rg gin.IRouter, svc *service.Service, liveURL string) {
	h := &Handler{svc: svc, liveURL: liveURL}

	rg.POST("/create-task", h.create)
	rg.GET("/list-tasks/:project_id", h.list)
	rg.PUT("/update-task/:task_id", h.update)
	rg.DELETE("/delete-task/:task_id", h.delete)
}

type createReq struct {
	ProjectID int64  `json:"project_id" binding:"required"`
	URL       string `json:"url" binding:"required"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.InvalidInput("task payload"))
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req.ProjectID, req.URL)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) list(c *gin.Context) {
	projectID, err := pathID(c, "project_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	params := pagination.ParseParams(c)
	items, total, err := h.svc.ListByProject(c.Request.Context(), projectID, params)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewPage(h.liveURL, c.Request.URL.Path, params, total, items))
}

type updateReq struct {
	URL *string `json:"url"`
}

func (h *Handler) update(c *gin.Context) {
	id, err := pathID(c, "task_id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.InvalidInput("task payload"))
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, req.URL)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, t)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := pathID(c, "task_id")
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
