package profileservice

import (
	"context"
	"fmt"
	"testing"

	"lolinsights/api/services/testutil"
	accountfetcher "lolinsights/fetcher/data/account"
	leaguefetcher "lolinsights/fetcher/data/league"
	masteryfetcher "lolinsights/fetcher/data/mastery"
	matchfetcher "lolinsights/fetcher/data/match"
	playerfetcher "lolinsights/fetcher/data/player"
	"lolinsights/fetcher/requests"
	queuevalues "lolinsights/pkg/riotvalues/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string {
	return &s
}

// Build a minimal hydrated match with the player on it.
func testMatch(matchId string, puuid string, champion string, queueId int, win bool) *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{
			MatchId:      matchId,
			Participants: []string{puuid},
		},
		Info: matchfetcher.MatchInfo{
			QueueId: queueId,
			Participants: []matchfetcher.MatchPlayer{
				{
					Puuid:        puuid,
					ChampionName: champion,
					Kills:        5,
					Deaths:       2,
					Assists:      7,
					Win:          win,
				},
			},
		},
	}
}

// Simple test for asserting that everything is fine with the profile service creation.
func TestNewProfileService(t *testing.T) {
	mockAccounts := new(testutil.MockAccountSource)
	mockMatches := new(testutil.MockMatchSource)

	service := NewProfileService(&ProfileServiceDeps{
		Accounts: mockAccounts,
		Matches:  mockMatches,
	})

	assert.NotNil(t, service)
	assert.Equal(t, mockAccounts, service.accounts)
	assert.Equal(t, mockMatches, service.matches)
}

// Test the bundle key generation.
func TestBundleKey(t *testing.T) {
	service, _, _, _, _, _, _ := setupTestService()

	key := service.bundleKey("TestPlayer", "EUW")
	assert.NotEmpty(t, key)

	// Hash shouldn't change and must ignore casing.
	assert.Equal(t, key, service.bundleKey("testplayer", "euw"))
	assert.NotEqual(t, key, service.bundleKey("OtherPlayer", "EUW"))
}

// Full resolution with ranked solo, masteries and every match hydrating.
func TestGetProfile(t *testing.T) {
	service, mockAccounts, mockSummoners, mockLeagues, mockMasteries, mockMatches, mockCatalog := setupTestService()
	ctx := context.Background()

	account := &accountfetcher.RiotAccount{
		Puuid:    "puuid-1",
		GameName: "TestPlayer",
		TagLine:  "EUW",
	}
	summoner := &playerfetcher.Summoner{
		Id:            "summoner-1",
		Puuid:         "puuid-1",
		ProfileIconId: 123,
		SummonerLevel: 250,
	}

	mockAccounts.On("GetAccountByRiotId", ctx, "TestPlayer", "EUW").Return(account, nil)
	mockSummoners.On("GetSummonerByPuuid", ctx, "puuid-1").Return(summoner, nil)

	mockLeagues.On("GetLeagueEntriesBySummoner", ctx, "summoner-1").Return([]leaguefetcher.LeagueEntry{
		{
			SummonerId:   "summoner-1",
			QueueType:    strPtr(queuevalues.RankedSolo),
			Tier:         strPtr("GOLD"),
			Rank:         strPtr("II"),
			LeaguePoints: 54,
			Wins:         30,
			Losses:       25,
		},
	}, nil)

	mockMasteries.On("GetMasteriesBySummoner", ctx, "summoner-1").Return([]masteryfetcher.MasteryEntry{
		{ChampionId: 103, ChampionLevel: 7, ChampionPoints: 200000},
		{ChampionId: 64, ChampionLevel: 6, ChampionPoints: 100000},
	}, nil)

	mockMatches.On("GetMatchList", ctx, "puuid-1", matchfetcher.DefaultMatchCount).
		Return([]string{"EUW1_1", "EUW1_2"}, nil)
	mockMatches.On("GetMatchData", ctx, "EUW1_1").
		Return(testMatch("EUW1_1", "puuid-1", "Ahri", 420, true), nil)
	mockMatches.On("GetMatchData", ctx, "EUW1_2").
		Return(testMatch("EUW1_2", "puuid-1", "LeeSin", 450, false), nil)

	mockCatalog.On("GetCurrentVersion", ctx).Return("15.1.1")
	mockCatalog.On("ChampionNameByKey", ctx, 103).Return("Ahri")
	mockCatalog.On("ChampionNameByKey", ctx, 64).Return("LeeSin")

	bundle, err := service.GetProfile(ctx, "TestPlayer", "EUW")
	assert.NoError(t, err)
	assert.NotNil(t, bundle)

	assert.Equal(t, "puuid-1", bundle.Player.Puuid)
	assert.Equal(t, "15.1.1", bundle.Version)
	assert.Empty(t, bundle.Warning)

	// Ranked solo present, flex absent since no entry came back.
	assert.NotNil(t, bundle.RankedSolo)
	assert.Equal(t, "GOLD", bundle.RankedSolo.Tier)
	assert.Equal(t, "II", bundle.RankedSolo.Division)
	assert.Nil(t, bundle.RankedFlex)

	assert.Len(t, bundle.TopMasteries, 2)
	assert.Equal(t, "Ahri", bundle.TopMasteries[0].ChampionKey)
	assert.Equal(t, "Lee Sin", bundle.TopMasteries[1].DisplayName)

	assert.Len(t, bundle.Matches, 2)
	assert.Equal(t, 2, bundle.Stats.TotalGames)
	assert.InDelta(t, 50.0, bundle.Stats.WinRateOverall, 0.001)

	testutil.VerifyAllMocks(t, mockAccounts, mockSummoners, mockLeagues, mockMasteries, mockMatches)
}

// A match that fails to hydrate is skipped with a warning, not fatal.
func TestGetProfilePartialHydration(t *testing.T) {
	service, mockAccounts, mockSummoners, mockLeagues, mockMasteries, mockMatches, mockCatalog := setupTestService()
	ctx := context.Background()

	mockAccounts.On("GetAccountByRiotId", ctx, "TestPlayer", "EUW").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1", GameName: "TestPlayer", TagLine: "EUW"}, nil)
	mockSummoners.On("GetSummonerByPuuid", ctx, "puuid-1").
		Return(&playerfetcher.Summoner{Id: "summoner-1", Puuid: "puuid-1"}, nil)
	mockLeagues.On("GetLeagueEntriesBySummoner", ctx, "summoner-1").
		Return([]leaguefetcher.LeagueEntry{}, nil)
	mockMasteries.On("GetMasteriesBySummoner", ctx, "summoner-1").
		Return([]masteryfetcher.MasteryEntry{}, nil)
	mockCatalog.On("GetCurrentVersion", ctx).Return("15.1.1")

	// A full page of ids where two fail to hydrate.
	matchIds := make([]string, 0, matchfetcher.DefaultMatchCount)
	for i := 1; i <= matchfetcher.DefaultMatchCount; i++ {
		matchId := fmt.Sprintf("EUW1_%d", i)
		matchIds = append(matchIds, matchId)

		if i == 7 || i == 19 {
			mockMatches.On("GetMatchData", ctx, matchId).
				Return(nil, &requests.ApiError{StatusCode: 500, Body: "boom"})
			continue
		}
		mockMatches.On("GetMatchData", ctx, matchId).
			Return(testMatch(matchId, "puuid-1", "Ahri", 420, i%2 == 0), nil)
	}
	mockMatches.On("GetMatchList", ctx, "puuid-1", matchfetcher.DefaultMatchCount).
		Return(matchIds, nil)

	bundle, err := service.GetProfile(ctx, "TestPlayer", "EUW")
	assert.NoError(t, err)
	assert.Len(t, bundle.Matches, 28)
	assert.Equal(t, 28, bundle.Stats.TotalGames)

	// The first failure becomes the single visible warning.
	assert.Contains(t, bundle.Warning, "EUW1_7")
	assert.NotContains(t, bundle.Warning, "EUW1_19")

	testutil.VerifyAllMocks(t, mockMatches)
}

// Identity chain failures abort the whole resolution.
func TestGetProfileIdentityFailures(t *testing.T) {
	t.Run("unknown riot id", func(t *testing.T) {
		service, mockAccounts, _, _, _, _, _ := setupTestService()
		ctx := context.Background()

		mockAccounts.On("GetAccountByRiotId", ctx, "Ghost", "EUW").
			Return(nil, requests.ErrNotFound)

		bundle, err := service.GetProfile(ctx, "Ghost", "EUW")
		assert.Nil(t, bundle)
		assert.True(t, requests.IsNotFound(err))
	})

	t.Run("summoner missing for resolved puuid", func(t *testing.T) {
		service, mockAccounts, mockSummoners, _, _, _, _ := setupTestService()
		ctx := context.Background()

		mockAccounts.On("GetAccountByRiotId", ctx, "TestPlayer", "EUW").
			Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil)
		mockSummoners.On("GetSummonerByPuuid", ctx, "puuid-1").
			Return(nil, requests.ErrNotFound)

		bundle, err := service.GetProfile(ctx, "TestPlayer", "EUW")
		assert.Nil(t, bundle)

		// A dangling puuid is corrupted upstream data, not a user typo.
		assert.False(t, requests.IsNotFound(err))
		var integrityErr *requests.DataIntegrityError
		assert.ErrorAs(t, err, &integrityErr)
	})

	t.Run("match list failure", func(t *testing.T) {
		service, mockAccounts, mockSummoners, mockLeagues, mockMasteries, mockMatches, mockCatalog := setupTestService()
		ctx := context.Background()

		mockAccounts.On("GetAccountByRiotId", ctx, "TestPlayer", "EUW").
			Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil)
		mockSummoners.On("GetSummonerByPuuid", ctx, "puuid-1").
			Return(&playerfetcher.Summoner{Id: "summoner-1"}, nil)
		mockLeagues.On("GetLeagueEntriesBySummoner", ctx, "summoner-1").
			Return([]leaguefetcher.LeagueEntry{}, nil)
		mockMasteries.On("GetMasteriesBySummoner", ctx, "summoner-1").
			Return([]masteryfetcher.MasteryEntry{}, nil)
		mockCatalog.On("GetCurrentVersion", ctx).Return("15.1.1").Maybe()
		mockMatches.On("GetMatchList", ctx, "puuid-1", matchfetcher.DefaultMatchCount).
			Return(nil, &requests.ApiError{StatusCode: 503})

		bundle, err := service.GetProfile(ctx, "TestPlayer", "EUW")
		assert.Nil(t, bundle)
		assert.Error(t, err)
	})
}

// Enrichment failures degrade into a warning, except for key errors.
func TestGetProfileEnrichmentFailures(t *testing.T) {
	t.Run("ranked failure is a warning", func(t *testing.T) {
		service, mockAccounts, mockSummoners, mockLeagues, mockMasteries, mockMatches, mockCatalog := setupTestService()
		ctx := context.Background()

		mockAccounts.On("GetAccountByRiotId", ctx, "TestPlayer", "EUW").
			Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil)
		mockSummoners.On("GetSummonerByPuuid", ctx, "puuid-1").
			Return(&playerfetcher.Summoner{Id: "summoner-1"}, nil)
		mockLeagues.On("GetLeagueEntriesBySummoner", ctx, "summoner-1").
			Return(nil, &requests.ApiError{StatusCode: 500})
		mockMasteries.On("GetMasteriesBySummoner", ctx, "summoner-1").
			Return([]masteryfetcher.MasteryEntry{}, nil)
		mockMatches.On("GetMatchList", ctx, "puuid-1", matchfetcher.DefaultMatchCount).
			Return([]string{}, nil)
		mockCatalog.On("GetCurrentVersion", ctx).Return("15.1.1")

		bundle, err := service.GetProfile(ctx, "TestPlayer", "EUW")
		assert.NoError(t, err)
		assert.Nil(t, bundle.RankedSolo)
		assert.Contains(t, bundle.Warning, "ranked")
	})

	t.Run("auth error is fatal", func(t *testing.T) {
		service, mockAccounts, mockSummoners, mockLeagues, _, _, _ := setupTestService()
		ctx := context.Background()

		mockAccounts.On("GetAccountByRiotId", ctx, "TestPlayer", "EUW").
			Return(&accountfetcher.RiotAccount{Puuid: "puuid-1"}, nil)
		mockSummoners.On("GetSummonerByPuuid", ctx, "puuid-1").
			Return(&playerfetcher.Summoner{Id: "summoner-1"}, nil)
		mockLeagues.On("GetLeagueEntriesBySummoner", ctx, "summoner-1").
			Return(nil, &requests.AuthError{StatusCode: 403})

		bundle, err := service.GetProfile(ctx, "TestPlayer", "EUW")
		assert.Nil(t, bundle)
		assert.True(t, requests.IsAuthError(err))
	})
}

// A canceled context mid hydration keeps the partial results.
func TestHydrateMatchesPartialOnCancel(t *testing.T) {
	service, _, _, _, _, mockMatches, _ := setupTestService()

	ctx, cancel := context.WithCancel(context.Background())

	mockMatches.On("GetMatchData", ctx, "EUW1_1").
		Run(func(args mock.Arguments) { cancel() }).
		Return(testMatch("EUW1_1", "puuid-1", "Ahri", 420, true), nil)

	matches, warning := service.hydrateMatches(ctx, []string{"EUW1_1", "EUW1_2", "EUW1_3"})
	assert.Len(t, matches, 1)
	assert.Empty(t, warning)

	// EUW1_2 and EUW1_3 were never fetched.
	mockMatches.AssertNotCalled(t, "GetMatchData", ctx, "EUW1_2")
}

// Ranked entry conversion edge cases.
func TestToRankedInfo(t *testing.T) {
	tests := []struct {
		name     string
		entry    *leaguefetcher.LeagueEntry
		expected *string
	}{
		{
			name:     "nil entry is unranked",
			entry:    nil,
			expected: nil,
		},
		{
			name:     "entry without tier is unranked",
			entry:    &leaguefetcher.LeagueEntry{QueueType: strPtr(queuevalues.RankedSolo)},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, toRankedInfo(tt.entry))
		})
	}

	t.Run("apex tier has no division", func(t *testing.T) {
		info := toRankedInfo(&leaguefetcher.LeagueEntry{
			QueueType:    strPtr(queuevalues.RankedSolo),
			Tier:         strPtr("CHALLENGER"),
			Rank:         strPtr("I"),
			LeaguePoints: 1200,
		})

		assert.NotNil(t, info)
		assert.Equal(t, "CHALLENGER", info.Tier)
		assert.Empty(t, info.Division)
		assert.Contains(t, info.EmblemUrl, "EMBLEM_CHALLENGER")
	})
}

// Filtered stats recompute over the cached bundle without refetching.
func TestGetFilteredStats(t *testing.T) {
	service, mockAccounts, mockSummoners, mockLeagues, mockMasteries, mockMatches, mockCatalog := setupTestService()
	ctx := context.Background()

	mockAccounts.On("GetAccountByRiotId", ctx, "TestPlayer", "EUW").
		Return(&accountfetcher.RiotAccount{Puuid: "puuid-1", GameName: "TestPlayer", TagLine: "EUW"}, nil)
	mockSummoners.On("GetSummonerByPuuid", ctx, "puuid-1").
		Return(&playerfetcher.Summoner{Id: "summoner-1"}, nil)
	mockLeagues.On("GetLeagueEntriesBySummoner", ctx, "summoner-1").
		Return([]leaguefetcher.LeagueEntry{}, nil)
	mockMasteries.On("GetMasteriesBySummoner", ctx, "summoner-1").
		Return([]masteryfetcher.MasteryEntry{}, nil)
	mockCatalog.On("GetCurrentVersion", ctx).Return("15.1.1")

	mockMatches.On("GetMatchList", ctx, "puuid-1", matchfetcher.DefaultMatchCount).
		Return([]string{"EUW1_1", "EUW1_2"}, nil)
	mockMatches.On("GetMatchData", ctx, "EUW1_1").
		Return(testMatch("EUW1_1", "puuid-1", "Ahri", 420, true), nil)
	mockMatches.On("GetMatchData", ctx, "EUW1_2").
		Return(testMatch("EUW1_2", "puuid-1", "LeeSin", 450, false), nil)

	result, err := service.GetFilteredStats(ctx, "TestPlayer", "EUW", "ranked_solo", "")
	assert.NoError(t, err)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, 1, result.Stats.TotalGames)
	assert.InDelta(t, 100.0, result.Stats.WinRateOverall, 0.001)
}
