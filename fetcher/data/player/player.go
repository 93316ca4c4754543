package playerfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"lolinsights/fetcher/requests"
)

// The player fetcher with it's limiter and platform region base URL.
type PlayerFetcher struct {
	limiter *requests.RateLimiter // Pointer to the limiter, since it's shared.
	baseUrl string
}

// Create a player fetcher for the given platform region.
func CreatePlayerFetcher(limiter *requests.RateLimiter, region string) *PlayerFetcher {
	return &PlayerFetcher{
		limiter: limiter,
		baseUrl: fmt.Sprintf("https://%s.api.riotgames.com", region),
	}
}

// Return of the summoner-v4 endpoint.
type Summoner struct {
	Id            string `json:"id"`
	AccountId     string `json:"accountId"`
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Get a players summoner data.
func (p *PlayerFetcher) GetSummonerByPuuid(ctx context.Context, puuid string) (*Summoner, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqUrl := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s", p.baseUrl, puuid)

	resp, err := requests.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var summonerData Summoner
	if err := json.NewDecoder(resp.Body).Decode(&summonerData); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &summonerData, nil
}
