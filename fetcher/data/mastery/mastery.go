package masteryfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"lolinsights/fetcher/requests"
	"sort"
)

// The mastery fetcher with it's limiter and platform region base URL.
type MasteryFetcher struct {
	limiter *requests.RateLimiter // Pointer to the limiter, since it's shared.
	baseUrl string
}

// Create a mastery fetcher for the given platform region.
func CreateMasteryFetcher(limiter *requests.RateLimiter, region string) *MasteryFetcher {
	return &MasteryFetcher{
		limiter: limiter,
		baseUrl: fmt.Sprintf("https://%s.api.riotgames.com", region),
	}
}

// Return of the champion-mastery-v4 endpoint.
type MasteryEntry struct {
	ChampionId     int `json:"championId"`
	ChampionLevel  int `json:"championLevel"`
	ChampionPoints int `json:"championPoints"`
}

// Get all the champion masteries of a given summoner.
func (m *MasteryFetcher) GetMasteriesBySummoner(ctx context.Context, summonerId string) ([]MasteryEntry, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqUrl := fmt.Sprintf("%s/lol/champion-mastery/v4/champion-masteries/by-summoner/%s", m.baseUrl, summonerId)

	resp, err := requests.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []MasteryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return entries, nil
}

// TopMasteries returns the first n entries by points descending.
// The upstream list usually comes pre-sorted, but that is not trusted.
// Ties break by champion id ascending so the result is deterministic.
func TopMasteries(entries []MasteryEntry, n int) []MasteryEntry {
	sorted := make([]MasteryEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ChampionPoints != sorted[j].ChampionPoints {
			return sorted[i].ChampionPoints > sorted[j].ChampionPoints
		}
		return sorted[i].ChampionId < sorted[j].ChampionId
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	return sorted[:n]
}
