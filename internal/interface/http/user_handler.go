package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/go-items-api/internal/application"
	"github.com/oksasatya/go-items-api/internal/interface/middleware"
	"github.com/oksasatya/go-items-api/pkg/helpers"
	"github.com/oksasatya/go-items-api/pkg/response"
	"github.com/oksasatya/go-items-api/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,uname"`
	Password string `json:"password" binding:"required,pwd"`
	FullName string `json:"full_name" binding:"max=256"`
}

// tokenRequest is the OAuth2 password grant form.
type tokenRequest struct {
	GrantType string `form:"grant_type"`
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type userResponse struct {
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
}

// Register POST /register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
	})
	if errors.Is(err, userapp.ErrDuplicateUser) {
		response.Error(c, http.StatusBadRequest, "username already registered", nil)
		return
	}
	if err != nil {
		helpers.LogError(h.Logger, "register failed", err, logrus.Fields{"username": req.Username})
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"ok": true, "username": u.Username})
}

// Token POST /token (application/x-www-form-urlencoded)
func (h *UserHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindWith(&req, binding.FormPost); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.GrantType != "" && req.GrantType != "password" {
		response.Error(c, http.StatusBadRequest, "unsupported grant type", nil)
		return
	}
	tok, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, userapp.ErrInvalidCredentials) {
		response.Error(c, http.StatusBadRequest, "incorrect username or password", nil)
		return
	}
	if err != nil {
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"username": req.Username})
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	c.Header("Cache-Control", "no-store")
	response.JSON(c, http.StatusOK, tokenResponse{
		AccessToken: tok.Token,
		TokenType:   "bearer",
		ExpiresIn:   int64(tok.ExpiresIn / time.Second),
	})
}

// Me GET /me (auth required)
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Error(c, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	response.JSON(c, http.StatusOK, userResponse{Username: u.Username, FullName: u.FullName})
}
