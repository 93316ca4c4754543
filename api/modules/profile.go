package modules

import (
	"lolinsights/api/handlers"
	profileservice "lolinsights/api/services/profile"
	accountfetcher "lolinsights/fetcher/data/account"
	leaguefetcher "lolinsights/fetcher/data/league"
	masteryfetcher "lolinsights/fetcher/data/mastery"
	matchfetcher "lolinsights/fetcher/data/match"
	playerfetcher "lolinsights/fetcher/data/player"
	"lolinsights/pkg/config"
)

func initializeProfileHandler(deps *ModuleDependencies) *handlers.ProfileHandler {
	profileDeps := &profileservice.ProfileServiceDeps{
		Accounts:  accountfetcher.CreateAccountFetcher(deps.Limiter, config.Regions.Routing),
		Players:   playerfetcher.CreatePlayerFetcher(deps.Limiter, config.Regions.Platform),
		Leagues:   leaguefetcher.CreateLeagueFetcher(deps.Limiter, config.Regions.Platform),
		Masteries: masteryfetcher.CreateMasteryFetcher(deps.Limiter, config.Regions.Platform),
		Matches:   matchfetcher.CreateMatchFetcher(deps.Limiter, config.Regions.Routing, deps.Redis),
		Catalog:   deps.Catalog,
		Redis:     deps.Redis,
		MemCache:  deps.MemCache,
		Logger:    deps.Logger,
	}

	profileService := profileservice.NewProfileService(profileDeps)

	profileHandlerDeps := &handlers.ProfileHandlerDependencies{
		ProfileService: profileService,
	}

	return handlers.NewProfileHandler(profileHandlerDeps)
}
