package profileservice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"lolinsights/api/cache"
	"lolinsights/api/dto"
	statsservice "lolinsights/api/services/stats"
	accountfetcher "lolinsights/fetcher/data/account"
	leaguefetcher "lolinsights/fetcher/data/league"
	masteryfetcher "lolinsights/fetcher/data/mastery"
	matchfetcher "lolinsights/fetcher/data/match"
	playerfetcher "lolinsights/fetcher/data/player"

	"lolinsights/fetcher/assets"
	"lolinsights/fetcher/requests"
	"lolinsights/pkg/logger"
	"lolinsights/pkg/messages"
	"lolinsights/pkg/redis"
	queuevalues "lolinsights/pkg/riotvalues/queue"
	tiervalues "lolinsights/pkg/riotvalues/tier"
)

const (
	// How many mastery entries the bundle carries.
	topMasteryCount = 3

	// Hydrated bundles are kept briefly so the filter endpoint can
	// recompute stats without re-hitting upstream.
	bundleCacheTTL    = 2 * time.Minute
	bundleCachePrefix = "profile:bundle:"

	// Lock held while a refresh for the same Riot ID is in flight.
	refreshLockTTL    = 15 * time.Second
	refreshLockPrefix = "profile:lock:"
)

// Returned when a refresh for the same Riot ID is already running.
var ErrRefreshInProgress = errors.New(messages.OperationInProgress)

// AccountSource resolves a Riot ID to a account.
type AccountSource interface {
	GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*accountfetcher.RiotAccount, error)
}

// SummonerSource resolves a puuid to the summoner record.
type SummonerSource interface {
	GetSummonerByPuuid(ctx context.Context, puuid string) (*playerfetcher.Summoner, error)
}

// LeagueSource fetches the ranked entries of a summoner.
type LeagueSource interface {
	GetLeagueEntriesBySummoner(ctx context.Context, summonerId string) ([]leaguefetcher.LeagueEntry, error)
}

// MasterySource fetches the champion masteries of a summoner.
type MasterySource interface {
	GetMasteriesBySummoner(ctx context.Context, summonerId string) ([]masteryfetcher.MasteryEntry, error)
}

// MatchSource lists and hydrates matches for a puuid.
type MatchSource interface {
	GetMatchList(ctx context.Context, puuid string, count int) ([]string, error)
	GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error)
}

// AssetSource resolves versions and champion keys.
type AssetSource interface {
	GetCurrentVersion(ctx context.Context) string
	ChampionNameByKey(ctx context.Context, numericKey int) string
}

// ProfileService runs the full resolution pipeline:
// identity -> ranked/mastery enrichment -> match hydration -> stats.
type ProfileService struct {
	accounts  AccountSource
	players   SummonerSource
	leagues   LeagueSource
	masteries MasterySource
	matches   MatchSource
	catalog   AssetSource

	redis    *redis.RedisClient
	memCache *cache.MemCache
	log      *logger.Logger
}

// Dependencies of the profile service.
type ProfileServiceDeps struct {
	Accounts  AccountSource
	Players   SummonerSource
	Leagues   LeagueSource
	Masteries MasterySource
	Matches   MatchSource
	Catalog   AssetSource

	Redis    *redis.RedisClient
	MemCache *cache.MemCache
	Logger   *logger.Logger
}

// NewProfileService creates a service for handling profile resolutions.
func NewProfileService(deps *ProfileServiceDeps) *ProfileService {
	return &ProfileService{
		accounts:  deps.Accounts,
		players:   deps.Players,
		leagues:   deps.Leagues,
		masteries: deps.Masteries,
		matches:   deps.Matches,
		catalog:   deps.Catalog,
		redis:     deps.Redis,
		memCache:  deps.MemCache,
		log:       deps.Logger,
	}
}

// GetProfile resolves a (gameName, tagLine) pair into the enriched
// profile bundle. Identity failures abort, enrichment and per-match
// failures degrade into a single warning.
func (s *ProfileService) GetProfile(ctx context.Context, gameName string, tagLine string) (*dto.ProfileBundle, error) {
	cacheKey := s.bundleKey(gameName, tagLine)
	if bundle := s.cachedBundle(ctx, cacheKey); bundle != nil {
		return bundle, nil
	}

	release, err := s.acquireRefreshLock(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}
	defer release()

	// Identity chain, fatal on any failure.
	account, err := s.accounts.GetAccountByRiotId(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	summoner, err := s.players.GetSummonerByPuuid(ctx, account.Puuid)
	if err != nil {
		// A summoner missing for a puuid we just resolved is corrupted
		// upstream data, not a user facing not-found.
		if requests.IsNotFound(err) {
			return nil, &requests.DataIntegrityError{
				Resource: "summoner",
				Reason:   fmt.Sprintf("no summoner found for resolved puuid %s", account.Puuid),
			}
		}
		return nil, err
	}

	var warnings []string

	// Ranked standing enrichment, non-fatal except for key errors.
	rankedSolo, rankedFlex, err := s.rankedStandings(ctx, summoner.Id)
	if err != nil {
		if requests.IsAuthError(err) {
			return nil, err
		}
		warnings = append(warnings, "couldn't fetch the ranked standings")
		s.log.Warnf("ranked enrichment failed for %s#%s: %v", gameName, tagLine, err)
	}

	// Mastery enrichment, same policy.
	topMasteries, err := s.topMasteries(ctx, summoner.Id)
	if err != nil {
		if requests.IsAuthError(err) {
			return nil, err
		}
		warnings = append(warnings, "couldn't fetch the champion masteries")
		s.log.Warnf("mastery enrichment failed for %s#%s: %v", gameName, tagLine, err)
	}

	// Match list failure leaves nothing to show, so it aborts.
	matchIds, err := s.matches.GetMatchList(ctx, account.Puuid, matchfetcher.DefaultMatchCount)
	if err != nil {
		return nil, err
	}

	matches, hydrationWarning := s.hydrateMatches(ctx, matchIds)
	if hydrationWarning != "" {
		warnings = append(warnings, hydrationWarning)
	}

	version := s.catalog.GetCurrentVersion(ctx)

	bundle := &dto.ProfileBundle{
		Player: dto.PlayerInfo{
			GameName:       account.GameName,
			TagLine:        account.TagLine,
			Puuid:          account.Puuid,
			SummonerId:     summoner.Id,
			ProfileIconId:  summoner.ProfileIconId,
			ProfileIconUrl: assets.ProfileIconURL(summoner.ProfileIconId, version),
			SummonerLevel:  summoner.SummonerLevel,
			RevisionDate:   summoner.RevisionDate,
		},
		RankedSolo:   rankedSolo,
		RankedFlex:   rankedFlex,
		TopMasteries: topMasteries,
		Matches:      matches,
		Stats:        statsservice.Aggregate(matches, account.Puuid),
		Version:      version,
		Warning:      strings.Join(warnings, "; "),
	}

	s.storeBundle(ctx, cacheKey, bundle)
	return bundle, nil
}

// GetFilteredStats recomputes the aggregation over the cached bundle
// under a queue bucket and/or champion substring filter. It only hits
// upstream when no bundle is resident for the pair.
func (s *ProfileService) GetFilteredStats(ctx context.Context, gameName string, tagLine string, queueBucket string, championSubstring string) (*dto.FilteredStats, error) {
	bundle := s.cachedBundle(ctx, s.bundleKey(gameName, tagLine))
	if bundle == nil {
		var err error
		bundle, err = s.GetProfile(ctx, gameName, tagLine)
		if err != nil {
			return nil, err
		}
	}

	filtered := statsservice.FilterMatches(bundle.Matches, bundle.Player.Puuid, queueBucket, championSubstring)
	return &dto.FilteredStats{
		Stats:   statsservice.Aggregate(filtered, bundle.Player.Puuid),
		Matches: filtered,
	}, nil
}

// Fetch the league entries once and pick the solo and flex standings.
func (s *ProfileService) rankedStandings(ctx context.Context, summonerId string) (*dto.RankedInfo, *dto.RankedInfo, error) {
	entries, err := s.leagues.GetLeagueEntriesBySummoner(ctx, summonerId)
	if err != nil {
		return nil, nil, err
	}

	solo := toRankedInfo(leaguefetcher.PickQueueEntry(entries, queuevalues.RankedSolo))
	flex := toRankedInfo(leaguefetcher.PickQueueEntry(entries, queuevalues.RankedFlex))
	return solo, flex, nil
}

// Fetch the masteries and resolve the top entries to display names.
func (s *ProfileService) topMasteries(ctx context.Context, summonerId string) ([]dto.MasteryInfo, error) {
	entries, err := s.masteries.GetMasteriesBySummoner(ctx, summonerId)
	if err != nil {
		return nil, err
	}

	version := s.catalog.GetCurrentVersion(ctx)
	top := masteryfetcher.TopMasteries(entries, topMasteryCount)

	masteries := make([]dto.MasteryInfo, 0, len(top))
	for _, entry := range top {
		// Name resolution failures fall back to a synthetic label,
		// the entry itself is never dropped.
		championKey := s.catalog.ChampionNameByKey(ctx, entry.ChampionId)
		masteries = append(masteries, dto.MasteryInfo{
			ChampionId:  entry.ChampionId,
			ChampionKey: championKey,
			DisplayName: assets.ToDisplayName(championKey),
			Level:       entry.ChampionLevel,
			Points:      entry.ChampionPoints,
			IconUrl:     assets.ChampionSquareURL(championKey, version),
		})
	}
	return masteries, nil
}

// Hydrate the match ids in order, skipping individual failures.
// The first failure message becomes the caller visible warning, every
// failure goes to the log. A canceled context returns the partial list.
func (s *ProfileService) hydrateMatches(ctx context.Context, matchIds []string) ([]matchfetcher.MatchData, string) {
	matches := make([]matchfetcher.MatchData, 0, len(matchIds))
	var warning string

	for _, matchId := range matchIds {
		if ctx.Err() != nil {
			break
		}

		matchData, err := s.matches.GetMatchData(ctx, matchId)
		if err != nil {
			s.log.Warnf("skipping match %s: %v", matchId, err)
			if warning == "" {
				warning = fmt.Sprintf("failed to fetch details for match %s, some matches may not load", matchId)
			}
			continue
		}

		matches = append(matches, *matchData)
	}
	return matches, warning
}

// Convert a league entry into the ranked DTO.
// A missing entry, or one without a valid tier, is unranked and nil.
func toRankedInfo(entry *leaguefetcher.LeagueEntry) *dto.RankedInfo {
	if entry == nil || entry.Tier == nil || !tiervalues.IsValid(*entry.Tier) {
		return nil
	}

	division := ""
	if entry.Rank != nil && !tiervalues.IsApex(*entry.Tier) {
		division = *entry.Rank
	}

	queue := ""
	if entry.QueueType != nil {
		queue = *entry.QueueType
	}

	return &dto.RankedInfo{
		Queue:        queue,
		Tier:         *entry.Tier,
		Division:     division,
		LeaguePoints: entry.LeaguePoints,
		Wins:         entry.Wins,
		Losses:       entry.Losses,
		EmblemUrl:    assets.RankEmblemURL(*entry.Tier),
	}
}

// Consistent hash based key for the bundle and lock entries.
func (s *ProfileService) bundleKey(gameName string, tagLine string) string {
	keyData := fmt.Sprintf("%s|%s",
		strings.ToLower(gameName),
		strings.ToLower(tagLine))

	hasher := sha256.New()
	hasher.Write([]byte(keyData))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Load a resident bundle, memory first, then Redis.
func (s *ProfileService) cachedBundle(ctx context.Context, cacheKey string) *dto.ProfileBundle {
	if s.memCache != nil {
		if cached, ok := s.memCache.Get(bundleCachePrefix + cacheKey).(*dto.ProfileBundle); ok {
			return cached
		}
	}

	if s.redis == nil {
		return nil
	}
	cached, err := s.redis.Get(ctx, bundleCachePrefix+cacheKey)
	if err != nil {
		return nil
	}

	var bundle dto.ProfileBundle
	if err := json.Unmarshal([]byte(cached), &bundle); err != nil {
		return nil
	}

	if s.memCache != nil {
		s.memCache.Set(bundleCachePrefix+cacheKey, &bundle, bundleCacheTTL)
	}
	return &bundle
}

// Store the bundle on both cache levels, errors are not fatal.
func (s *ProfileService) storeBundle(ctx context.Context, cacheKey string, bundle *dto.ProfileBundle) {
	if s.memCache != nil {
		s.memCache.Set(bundleCachePrefix+cacheKey, bundle, bundleCacheTTL)
	}

	if s.redis == nil {
		return
	}
	bundleJson, err := json.Marshal(bundle)
	if err != nil {
		return
	}
	s.redis.Set(ctx, bundleCachePrefix+cacheKey, bundleJson, bundleCacheTTL)
}

// Guard against concurrent refreshes of the same Riot ID.
// A Redis outage degrades to no locking rather than failing.
func (s *ProfileService) acquireRefreshLock(ctx context.Context, gameName string, tagLine string) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}

	lockKey := refreshLockPrefix + s.bundleKey(gameName, tagLine)
	lockAcquired, err := s.redis.SetNX(ctx, lockKey, "processing", refreshLockTTL)
	if err != nil {
		return func() {}, nil
	}
	if !lockAcquired {
		return nil, ErrRefreshInProgress
	}

	return func() {
		s.redis.Del(context.Background(), lockKey)
	}, nil
}
