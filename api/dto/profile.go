package dto

import (
	matchfetcher "lolinsights/fetcher/data/match"
)

// PlayerInfo is the resolved identity plus the summoner record.
type PlayerInfo struct {
	GameName       string `json:"gameName"`
	TagLine        string `json:"tagLine"`
	Puuid          string `json:"puuid"`
	SummonerId     string `json:"summonerId"`
	ProfileIconId  int    `json:"profileIconId"`
	ProfileIconUrl string `json:"profileIconUrl"`
	SummonerLevel  int    `json:"summonerLevel"`
	RevisionDate   int64  `json:"revisionDate"`
}

// RankedInfo is a single ranked queue standing.
// A absent standing is represented by a nil pointer on the bundle,
// never by a fabricated tier.
type RankedInfo struct {
	Queue        string `json:"queue"`
	Tier         string `json:"tier"`
	Division     string `json:"division,omitempty"`
	LeaguePoints int    `json:"lp"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	EmblemUrl    string `json:"emblemUrl"`
}

// MasteryInfo is a single top mastery entry with resolved names.
type MasteryInfo struct {
	ChampionId  int    `json:"championId"`
	ChampionKey string `json:"championKey"` // DDragon canonical id.
	DisplayName string `json:"championName"`
	Level       int    `json:"level"`
	Points      int    `json:"points"`
	IconUrl     string `json:"iconUrl"`
}

// ProfileBundle is the full enriched profile returned by a resolution.
type ProfileBundle struct {
	Player       PlayerInfo               `json:"player"`
	RankedSolo   *RankedInfo              `json:"rankedSolo,omitempty"`
	RankedFlex   *RankedInfo              `json:"rankedFlex,omitempty"`
	TopMasteries []MasteryInfo            `json:"topMasteries,omitempty"`
	Matches      []matchfetcher.MatchData `json:"matches"`
	Stats        AggregatedStats          `json:"stats"`
	Version      string                   `json:"version"`
	Warning      string                   `json:"warning,omitempty"`
}

// FilteredStats is the result of a filter/aggregate call, recomputed
// from already hydrated matches.
type FilteredStats struct {
	Stats   AggregatedStats          `json:"stats"`
	Matches []matchfetcher.MatchData `json:"matches"`
}
