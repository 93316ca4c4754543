package assets

import "time"

// Consts used across the package.
const (
	ddragon       = "https://ddragon.leagueoflegends.com/"
	versionKey    = "ddragon:versions"
	catalogPrefix = "ddragon:catalog:"

	// FallbackVersion is used when no version was ever fetched and the
	// DDragon is unreachable.
	FallbackVersion = "14.14.1"

	// How long a fetched version is considered fresh.
	versionFreshness = 60 * time.Second
)

// Definition for extracting the champion catalog data.
type fullChampion struct {
	Data map[string]championEntry `json:"data"`
}

// Single champion entry as served by the DDragon champion.json.
type championEntry struct {
	Id   string `json:"id"`   // DDragon canonical id, e.g. "MissFortune".
	Key  string `json:"key"`  // Numeric champion key as a string.
	Name string `json:"name"` // Human display name, e.g. "Miss Fortune".
}
