package handlers

import (
	"context"
	"net/http"
	"strconv"

	"lolinsights/fetcher/assets"

	"github.com/gin-gonic/gin"
)

// AssetCatalog is the catalog surface the handler needs.
type AssetCatalog interface {
	GetCurrentVersion(ctx context.Context) string
	ChampionNameByKey(ctx context.Context, numericKey int) string
}

// AssetsHandler exposes the DDragon version and champion catalog.
type AssetsHandler struct {
	catalog AssetCatalog
}

// Dependencies of the assets handler.
type AssetsHandlerDependencies struct {
	Catalog AssetCatalog
}

// NewAssetsHandler creates a new instance of the assets handler.
func NewAssetsHandler(deps *AssetsHandlerDependencies) *AssetsHandler {
	return &AssetsHandler{
		catalog: deps.Catalog,
	}
}

// GetVersion returns the current DDragon version in use.
func (h *AssetsHandler) GetVersion(c *gin.Context) {
	version := h.catalog.GetCurrentVersion(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"version": version})
}

// GetChampion resolves a numeric champion key into its names and icon.
func (h *AssetsHandler) GetChampion(c *gin.Context) {
	numericKey, err := strconv.Atoi(c.Params.ByName("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "the champion key must be numeric"})
		return
	}

	ctx := c.Request.Context()
	version := h.catalog.GetCurrentVersion(ctx)
	championKey := h.catalog.ChampionNameByKey(ctx, numericKey)

	c.JSON(http.StatusOK, gin.H{
		"championId":   numericKey,
		"championKey":  championKey,
		"championName": assets.ToDisplayName(championKey),
		"iconUrl":      assets.ChampionSquareURL(championKey, version),
		"version":      version,
	})
}
