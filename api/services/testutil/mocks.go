package testutil

import (
	"context"
	accountfetcher "lolinsights/fetcher/data/account"
	leaguefetcher "lolinsights/fetcher/data/league"
	masteryfetcher "lolinsights/fetcher/data/mastery"
	matchfetcher "lolinsights/fetcher/data/match"
	playerfetcher "lolinsights/fetcher/data/player"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock implementations used on the profile service tests.
// ============================================================================

// Account resolution mock.
type MockAccountSource struct {
	mock.Mock
}

func (m *MockAccountSource) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*accountfetcher.RiotAccount, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accountfetcher.RiotAccount), args.Error(1)
}

// Summoner resolution mock.
type MockSummonerSource struct {
	mock.Mock
}

func (m *MockSummonerSource) GetSummonerByPuuid(ctx context.Context, puuid string) (*playerfetcher.Summoner, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.Summoner), args.Error(1)
}

// League entries mock.
type MockLeagueSource struct {
	mock.Mock
}

func (m *MockLeagueSource) GetLeagueEntriesBySummoner(ctx context.Context, summonerId string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, summonerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

// Mastery entries mock.
type MockMasterySource struct {
	mock.Mock
}

func (m *MockMasterySource) GetMasteriesBySummoner(ctx context.Context, summonerId string) ([]masteryfetcher.MasteryEntry, error) {
	args := m.Called(ctx, summonerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]masteryfetcher.MasteryEntry), args.Error(1)
}

// Match list and hydration mock.
type MockMatchSource struct {
	mock.Mock
}

func (m *MockMatchSource) GetMatchList(ctx context.Context, puuid string, count int) ([]string, error) {
	args := m.Called(ctx, puuid, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMatchSource) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

// Asset catalog mock.
type MockAssetSource struct {
	mock.Mock
}

func (m *MockAssetSource) GetCurrentVersion(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockAssetSource) ChampionNameByKey(ctx context.Context, numericKey int) string {
	args := m.Called(ctx, numericKey)
	return args.String(0)
}
