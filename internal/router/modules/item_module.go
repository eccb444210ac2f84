package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-items-api/internal/interface/http"
	"github.com/oksasatya/go-items-api/internal/interface/middleware"
)

type ItemModule struct {
	Handler  *handlers.ItemHandler
	Resolver middleware.TokenResolver
}

func NewItemModule(h *handlers.ItemHandler, resolver middleware.TokenResolver) *ItemModule {
	return &ItemModule{Handler: h, Resolver: resolver}
}

func (m *ItemModule) Register(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	items.Use(middleware.Auth(m.Resolver))
	{
		items.POST("", m.Handler.Create)
		items.GET("", m.Handler.List)
	}
}
