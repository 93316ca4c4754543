package modules

import (
	"lolinsights/api/cache"
	"lolinsights/api/handlers"
	"lolinsights/fetcher/assets"
	"lolinsights/fetcher/requests"
	"lolinsights/pkg/logger"
	"lolinsights/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module containing the necessary handlers.
type Module struct {
	Router         *gin.Engine
	ProfileHandler *handlers.ProfileHandler
	AssetsHandler  *handlers.AssetsHandler
}

// Shared dependencies used to build every handler.
type ModuleDependencies struct {
	Catalog  *assets.CatalogCache
	Limiter  *requests.RateLimiter
	Logger   *logger.Logger
	MemCache *cache.MemCache
	Redis    *redis.RedisClient
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()

	return &Module{
		Router:         router,
		ProfileHandler: initializeProfileHandler(deps),
		AssetsHandler:  initializeAssetsHandler(deps),
	}
}
