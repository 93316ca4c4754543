package routes

import (
	"lolinsights/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.ProfileHandler:
			r.registerProfileHandler(handler)
		case *handlers.AssetsHandler:
			r.registerAssetsHandler(handler)
		}
	}
}

// Register the profile handler.
func (r *Router) registerProfileHandler(handler *handlers.ProfileHandler) {
	profile := r.api.Group("/profile")
	{
		profile.GET("/:gameName/:tagLine", handler.GetProfile)
		profile.GET("/:gameName/:tagLine/stats", handler.GetFilteredStats)
	}
}

// Register the assets handler.
func (r *Router) registerAssetsHandler(handler *handlers.AssetsHandler) {
	assets := r.api.Group("/assets")
	{
		assets.GET("/version", handler.GetVersion)
		assets.GET("/champion/:key", handler.GetChampion)
	}
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
