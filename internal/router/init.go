package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-items-api/internal/application"
	"github.com/oksasatya/go-items-api/internal/container"
	handlers "github.com/oksasatya/go-items-api/internal/interface/http"
	"github.com/oksasatya/go-items-api/internal/interface/middleware"
	"github.com/oksasatya/go-items-api/internal/router/modules"
	"github.com/oksasatya/go-items-api/pkg/validation"
)

// InitModules wires services and handlers from the container and registers
// every module with the registry.
func InitModules(r *Registry, c *container.Container) {
	users := application.NewUserService(c.Users, c.Hasher, c.JWT, c.Logger)
	items := application.NewItemService(c.Items, c.Logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewUserModule(handlers.NewUserHandler(users, c.Logger), users))
	r.Add(modules.NewItemModule(handlers.NewItemHandler(items, c.Logger), users))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// NewEngine builds the gin engine with global middleware and all routes.
func NewEngine(c *container.Container) *gin.Engine {
	validation.Init()

	e := gin.New()
	e.Use(gin.Recovery())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.RealIP())
	if origins := c.Config.CORSOrigins(); len(origins) > 0 {
		e.Use(cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}
	if c.Config.HTTPLogEnabled || c.Config.Env == "development" {
		e.Use(middleware.RequestLogger(c.Logger))
	}

	reg := NewRegistry(e)
	InitModules(reg, c)
	reg.RegisterAll()
	return e
}
