package accountfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"lolinsights/fetcher/requests"
	"net/url"
)

// The account fetcher with it's limiter and routing region base URL.
type AccountFetcher struct {
	limiter *requests.RateLimiter // Pointer to the limiter, since it's shared.
	baseUrl string
}

// Create a account fetcher for the given routing region.
func CreateAccountFetcher(limiter *requests.RateLimiter, region string) *AccountFetcher {
	return &AccountFetcher{
		limiter: limiter,
		baseUrl: fmt.Sprintf("https://%s.api.riotgames.com", region),
	}
}

// Return of the account-v1 endpoint.
type RiotAccount struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Get the account for a literal (gameName, tagLine) pair.
// The pair is passed as supplied, a mismatch surfaces as a 404 from Riot.
func (a *AccountFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*RiotAccount, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqUrl := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		a.baseUrl, url.PathEscape(gameName), url.PathEscape(tagLine))

	resp, err := requests.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var account RiotAccount
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	if account.Puuid == "" {
		return nil, &requests.DataIntegrityError{
			Resource: "account",
			Reason:   "response is missing the puuid",
		}
	}

	return &account, nil
}
