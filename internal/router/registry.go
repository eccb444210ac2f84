package router

import "github.com/gin-gonic/gin"

type Registry struct {
	Engine  *gin.Engine
	Root    *gin.RouterGroup
	modules []Module
}

// NewRegistry mounts modules at the engine root; the public paths carry no
// version or /api prefix. Global middleware is installed on the engine itself
// so it also covers unmatched routes and CORS preflights.
func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, Root: engine.Group("/")}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.Root)
	}
}
