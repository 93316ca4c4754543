package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"lolinsights/fetcher/requests"
	"lolinsights/pkg/redis"
	"strconv"
	"time"
)

const (
	// Match records are immutable after the game ends, so the cache
	// TTL is only bounding memory on the Redis side.
	matchCacheTTL    = 24 * time.Hour
	matchCachePrefix = "riot:match:"

	// Default amount of matches fetched for a profile.
	DefaultMatchCount = 30
)

// The match fetcher with it's limiter, routing region base URL and cache.
type MatchFetcher struct {
	limiter *requests.RateLimiter
	baseUrl string
	redis   *redis.RedisClient
}

// Create a instance of the match fetcher.
// The Redis client may be nil, memoization is then skipped entirely.
func CreateMatchFetcher(limiter *requests.RateLimiter, region string, redisClient *redis.RedisClient) *MatchFetcher {
	return &MatchFetcher{
		limiter: limiter,
		baseUrl: fmt.Sprintf("https://%s.api.riotgames.com", region),
		redis:   redisClient,
	}
}

// Get a players match list, most recent first, order as supplied by Riot.
func (m *MatchFetcher) GetMatchList(ctx context.Context, puuid string, count int) ([]string, error) {
	if count <= 0 {
		count = DefaultMatchCount
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqUrl := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids", m.baseUrl, puuid)
	params := map[string]string{
		"count": strconv.Itoa(count),
	}

	resp, err := requests.AuthRequest(ctx, reqUrl, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var matches []string
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return matches, nil
}

// Get a given match data, memoized on Redis by the match id.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string) (*MatchData, error) {
	if cached := m.getCachedMatch(ctx, matchId); cached != nil {
		return cached, nil
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqUrl := fmt.Sprintf("%s/lol/match/v5/matches/%s", m.baseUrl, matchId)

	resp, err := requests.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	// A match without participants is malformed and treated the same
	// as a failed fetch by the hydration loop.
	if len(matchData.Info.Participants) == 0 {
		return nil, &requests.DataIntegrityError{
			Resource: "match " + matchId,
			Reason:   "info.participants is missing or empty",
		}
	}

	m.setCachedMatch(ctx, matchId, &matchData)
	return &matchData, nil
}

// Try the Redis cache, returning nil on any miss or error.
func (m *MatchFetcher) getCachedMatch(ctx context.Context, matchId string) *MatchData {
	if m.redis == nil {
		return nil
	}

	cached, err := m.redis.Get(ctx, matchCachePrefix+matchId)
	if err != nil {
		return nil
	}

	var matchData MatchData
	if err := json.Unmarshal([]byte(cached), &matchData); err != nil {
		return nil
	}
	if len(matchData.Info.Participants) == 0 {
		return nil
	}
	return &matchData
}

// Store the match on Redis, cache errors are not fatal.
func (m *MatchFetcher) setCachedMatch(ctx context.Context, matchId string, matchData *MatchData) {
	if m.redis == nil {
		return
	}

	matchJson, err := json.Marshal(matchData)
	if err != nil {
		return
	}
	m.redis.Set(ctx, matchCachePrefix+matchId, matchJson, matchCacheTTL)
}
