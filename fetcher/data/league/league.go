package leaguefetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"lolinsights/fetcher/requests"
)

// The league fetcher with it's limiter and platform region base URL.
type LeagueFetcher struct {
	limiter *requests.RateLimiter // Pointer to the limiter, since it's shared.
	baseUrl string
}

// Create a league fetcher for the given platform region.
func CreateLeagueFetcher(limiter *requests.RateLimiter, region string) *LeagueFetcher {
	return &LeagueFetcher{
		limiter: limiter,
		baseUrl: fmt.Sprintf("https://%s.api.riotgames.com", region),
	}
}

// Get a given player entries for each queue.
func (l *LeagueFetcher) GetLeagueEntriesBySummoner(ctx context.Context, summonerId string) ([]LeagueEntry, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqUrl := fmt.Sprintf("%s/lol/league/v4/entries/by-summoner/%s", l.baseUrl, summonerId)

	resp, err := requests.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return entries, nil
}

// PickQueueEntry selects the entry matching the queue type exactly.
// Nil is a valid outcome and means the player is unranked on that queue.
func PickQueueEntry(entries []LeagueEntry, queueType string) *LeagueEntry {
	for i := range entries {
		if entries[i].QueueType != nil && *entries[i].QueueType == queueType {
			return &entries[i]
		}
	}
	return nil
}
