package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-items-api/internal/interface/http"
	"github.com/oksasatya/go-items-api/internal/interface/middleware"
)

// UserModule wires registration, login and the current-user endpoint.
// Public: POST /register, POST /token
// Protected: GET /me
type UserModule struct {
	Handler  *handlers.UserHandler
	Resolver middleware.TokenResolver
}

func NewUserModule(h *handlers.UserHandler, resolver middleware.TokenResolver) *UserModule {
	return &UserModule{Handler: h, Resolver: resolver}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/token", m.Handler.Token)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Resolver))
	{
		auth.GET("/me", m.Handler.Me)
	}
}
