package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts API route registrars under the fixed /api prefix. The
// prefix carries no version segment: the dashboard contract fixes the paths.
type Router struct {
	engine     *gin.Engine
	registrars []RouteRegistrar
}

// New creates a new Router instance
func New(engine *gin.Engine) *Router {
	return &Router{engine: engine}
}

// Register adds registrars to be mounted by Setup.
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}
