package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelforge/annotate-backend/internal/apperr"
	"github.com/labelforge/annotate-backend/internal/auth"
)

type Handler struct {
	svc *auth.Service
}

func Register(rg gin.IRouter, svc *auth.Service) {
	h := &Handler{svc: svc}

	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
	rg.POST("/token/refresh", h.refresh)
}

func (h *Handler) signup(c *gin.Context) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.InvalidInput("signup payload"))
		return
	}

	u, err := h.svc.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, signupResp{ID: u.ID, Username: u.Username})
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.InvalidInput("login payload"))
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *Handler) refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.InvalidInput("refresh payload"))
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}
