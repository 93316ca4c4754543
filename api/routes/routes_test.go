package routes

import (
	"testing"

	"lolinsights/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	profileHandler := &handlers.ProfileHandler{}
	assetsHandler := &handlers.AssetsHandler{}

	router.SetupRoutes(profileHandler, assetsHandler)

	routes := router.Engine.Routes()
	assert.Len(t, routes, 4)

	paths := make([]string, 0, len(routes))
	for _, route := range routes {
		paths = append(paths, route.Path)
	}
	assert.Contains(t, paths, "/api/v1/profile/:gameName/:tagLine")
	assert.Contains(t, paths, "/api/v1/profile/:gameName/:tagLine/stats")
	assert.Contains(t, paths, "/api/v1/assets/version")
	assert.Contains(t, paths, "/api/v1/assets/champion/:key")
}
