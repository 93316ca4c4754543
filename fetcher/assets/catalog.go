package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"lolinsights/fetcher/requests"
	"lolinsights/pkg/redis"
	"strconv"
	"sync/atomic"
	"time"
)

// CatalogChampion is a single resolvable champion of the catalog.
type CatalogChampion struct {
	NumericKey  int    `json:"key"`
	CanonicalId string `json:"id"`
	DisplayName string `json:"name"`
}

// ChampionCatalog holds every champion of a single game version.
// It is replaced wholesale on refresh and never mutated in place,
// so readers can't observe a half updated catalog.
type ChampionCatalog struct {
	Version   string                     `json:"version"`
	Champions map[string]CatalogChampion `json:"champions"`

	byKey map[int]string
}

// ChampionByKey resolves a numeric champion key to it's catalog entry.
func (c *ChampionCatalog) ChampionByKey(numericKey int) (CatalogChampion, bool) {
	canonicalId, ok := c.byKey[numericKey]
	if !ok {
		return CatalogChampion{}, false
	}
	return c.Champions[canonicalId], true
}

// Cached version string with it's fetch time.
type versionEntry struct {
	value     string
	fetchedAt time.Time
}

// CatalogCache caches the current game version and the champion catalog
// keyed by that version. At most one catalog version is resident at a time.
// Concurrent refreshes are tolerated, last write wins and every write is
// equally valid.
type CatalogCache struct {
	redis   *redis.RedisClient
	baseUrl string
	version atomic.Pointer[versionEntry]
	catalog atomic.Pointer[ChampionCatalog]
}

// Create a catalog cache. The Redis client may be nil, the cache then
// works purely in-process.
func CreateCatalogCache(redisClient *redis.RedisClient) *CatalogCache {
	return &CatalogCache{
		redis:   redisClient,
		baseUrl: ddragon,
	}
}

// GetCurrentVersion returns the current DDragon version.
// A version fetched within the freshness window is returned as is,
// otherwise a refresh is attempted. On failure the last known-good
// version is returned, else the hardcoded fallback. Never errors.
func (c *CatalogCache) GetCurrentVersion(ctx context.Context) string {
	if entry := c.version.Load(); entry != nil && time.Since(entry.fetchedAt) < versionFreshness {
		return entry.value
	}

	version, err := c.fetchLatestVersion(ctx)
	if err != nil {
		// Keep serving the stale value when the refresh fails.
		if entry := c.version.Load(); entry != nil {
			return entry.value
		}
		if cached := c.versionFromRedis(ctx); cached != "" {
			return cached
		}
		return FallbackVersion
	}

	c.version.Store(&versionEntry{value: version, fetchedAt: time.Now()})
	c.storeVersionOnRedis(ctx, version)
	return version
}

// GetChampionCatalog returns the catalog for the exact version.
// A nil return means the catalog is unavailable, which callers must
// treat as a valid, handled state.
func (c *CatalogCache) GetChampionCatalog(ctx context.Context, version string) *ChampionCatalog {
	if catalog := c.catalog.Load(); catalog != nil && catalog.Version == version {
		return catalog
	}

	catalog := c.catalogFromRedis(ctx, version)
	if catalog == nil {
		var err error
		catalog, err = c.fetchCatalog(ctx, version)
		if err != nil {
			return nil
		}
		c.storeCatalogOnRedis(ctx, catalog)
	}

	// Replace the resident catalog, discarding any older version.
	c.catalog.Store(catalog)
	return catalog
}

// ChampionNameByKey resolves a numeric champion key on the current
// version catalog, with a synthetic label fallback so mastery entries
// are never dropped over a missing name.
func (c *CatalogCache) ChampionNameByKey(ctx context.Context, numericKey int) string {
	version := c.GetCurrentVersion(ctx)
	catalog := c.GetChampionCatalog(ctx, version)
	if catalog != nil {
		if champion, ok := catalog.ChampionByKey(numericKey); ok {
			return champion.CanonicalId
		}
	}
	return fmt.Sprintf("Champion %d", numericKey)
}

// Get the latest version of the data from the ddragon.
func (c *CatalogCache) fetchLatestVersion(ctx context.Context) (string, error) {
	url := fmt.Sprint(c.baseUrl, "api/versions.json")
	resp, err := requests.Request(ctx, url)
	if err != nil {
		return "", fmt.Errorf("couldn't get the current version: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("versions endpoint returned status code %d", resp.StatusCode)
	}

	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	if len(versions) == 0 {
		return "", fmt.Errorf("no versions available")
	}
	return versions[0], nil
}

// Get the champion catalog from the datadragon for a exact version.
func (c *CatalogCache) fetchCatalog(ctx context.Context, version string) (*ChampionCatalog, error) {
	url := fmt.Sprintf("%scdn/%s/data/en_US/champion.json", c.baseUrl, version)
	resp, err := requests.Request(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champion catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("catalog endpoint returned status code %d", resp.StatusCode)
	}

	var championsData fullChampion
	if err := json.NewDecoder(resp.Body).Decode(&championsData); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	return buildCatalog(version, championsData), nil
}

// Build the immutable catalog value from the raw champion.json data.
func buildCatalog(version string, championsData fullChampion) *ChampionCatalog {
	catalog := &ChampionCatalog{
		Version:   version,
		Champions: make(map[string]CatalogChampion, len(championsData.Data)),
		byKey:     make(map[int]string, len(championsData.Data)),
	}

	for _, entry := range championsData.Data {
		numericKey, err := strconv.Atoi(entry.Key)
		if err != nil {
			continue
		}
		catalog.Champions[entry.Id] = CatalogChampion{
			NumericKey:  numericKey,
			CanonicalId: entry.Id,
			DisplayName: entry.Name,
		}
		catalog.byKey[numericKey] = entry.Id
	}
	return catalog
}

// Read the last known version from Redis.
func (c *CatalogCache) versionFromRedis(ctx context.Context) string {
	if c.redis == nil {
		return ""
	}
	result, err := c.redis.ListHead(ctx, versionKey)
	if err != nil {
		return ""
	}
	return result
}

// Push the version to Redis, errors are not fatal.
func (c *CatalogCache) storeVersionOnRedis(ctx context.Context, version string) {
	if c.redis == nil {
		return
	}
	c.redis.ReplaceList(ctx, versionKey, version)
}

// Read a catalog for the exact version from Redis.
func (c *CatalogCache) catalogFromRedis(ctx context.Context, version string) *ChampionCatalog {
	if c.redis == nil {
		return nil
	}

	cached, err := c.redis.Get(ctx, catalogPrefix+version)
	if err != nil {
		return nil
	}

	var catalog ChampionCatalog
	if err := json.Unmarshal([]byte(cached), &catalog); err != nil {
		return nil
	}

	// Rebuild the derived key index, it is not serialized.
	catalog.byKey = make(map[int]string, len(catalog.Champions))
	for canonicalId, champion := range catalog.Champions {
		catalog.byKey[champion.NumericKey] = canonicalId
	}
	return &catalog
}

// Store the catalog on Redis keyed by version, errors are not fatal.
func (c *CatalogCache) storeCatalogOnRedis(ctx context.Context, catalog *ChampionCatalog) {
	if c.redis == nil {
		return
	}
	catalogJson, err := json.Marshal(catalog)
	if err != nil {
		return
	}
	c.redis.Set(ctx, catalogPrefix+catalog.Version, catalogJson, 0)
}
