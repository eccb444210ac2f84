package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-items-api/internal/application"
	"github.com/oksasatya/go-items-api/internal/domain/entity"
	"github.com/oksasatya/go-items-api/pkg/helpers"
	"github.com/oksasatya/go-items-api/pkg/response"
	"github.com/oksasatya/go-items-api/pkg/validation"
)

type ItemHandler struct {
	Svc    *application.ItemService
	Logger *logrus.Logger
}

func NewItemHandler(svc *application.ItemService, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{Svc: svc, Logger: logger}
}

type itemRequest struct {
	Name        string `json:"name" binding:"required,max=256"`
	Description string `json:"description" binding:"required,max=4096"`
}

// Create POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	it, err := h.Svc.Create(c.Request.Context(), entity.Item{Name: req.Name, Description: req.Description})
	if err != nil {
		helpers.LogError(h.Logger, "create item failed", err, nil)
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.JSON(c, http.StatusOK, it)
}

// List GET /items
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		helpers.LogError(h.Logger, "list items failed", err, nil)
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	if items == nil {
		items = []entity.Item{}
	}
	response.JSON(c, http.StatusOK, items)
}
