package profileservice

import (
	"lolinsights/api/services/testutil"
	"lolinsights/pkg/logger"
)

// Helper to initialize the mocks.
func setupTestService() (
	*ProfileService,
	*testutil.MockAccountSource,
	*testutil.MockSummonerSource,
	*testutil.MockLeagueSource,
	*testutil.MockMasterySource,
	*testutil.MockMatchSource,
	*testutil.MockAssetSource,
) {
	mockAccounts := new(testutil.MockAccountSource)
	mockSummoners := new(testutil.MockSummonerSource)
	mockLeagues := new(testutil.MockLeagueSource)
	mockMasteries := new(testutil.MockMasterySource)
	mockMatches := new(testutil.MockMatchSource)
	mockCatalog := new(testutil.MockAssetSource)

	testLogger, _ := logger.CreateLogger()

	service := &ProfileService{
		accounts:  mockAccounts,
		players:   mockSummoners,
		leagues:   mockLeagues,
		masteries: mockMasteries,
		matches:   mockMatches,
		catalog:   mockCatalog,
		log:       testLogger,
	}

	return service, mockAccounts, mockSummoners, mockLeagues, mockMasteries, mockMatches, mockCatalog
}
