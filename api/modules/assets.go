package modules

import (
	"lolinsights/api/handlers"
)

func initializeAssetsHandler(deps *ModuleDependencies) *handlers.AssetsHandler {
	assetsHandlerDeps := &handlers.AssetsHandlerDependencies{
		Catalog: deps.Catalog,
	}

	return handlers.NewAssetsHandler(assetsHandlerDeps)
}
