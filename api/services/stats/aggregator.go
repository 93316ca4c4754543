package statsservice

import (
	"lolinsights/api/dto"
	matchfetcher "lolinsights/fetcher/data/match"
	queuevalues "lolinsights/pkg/riotvalues/queue"
	"math"
	"slices"
	"sort"
	"strings"
)

// How many champions the per-champion breakdown keeps.
const topChampionCount = 5

// Running per-champion accumulator, keyed by champion name.
type championAccumulator struct {
	championId int
	name       string
	games      int
	wins       int
	kills      int
	deaths     int
	assists    int
}

// Aggregate reduces a list of match records into the player's overall
// and per-champion statistics. Matches where the player's participant
// is missing contribute nothing, not zeros. Pure and deterministic.
func Aggregate(matches []matchfetcher.MatchData, puuid string) dto.AggregatedStats {
	var totalKills, totalDeaths, totalAssists, totalWins int
	contributing := 0

	accumulators := make(map[string]*championAccumulator)
	// Champion names in first-encounter order, so ties on games played
	// break deterministically.
	var encounterOrder []string

	for i := range matches {
		participant := FindParticipant(&matches[i], puuid)
		if participant == nil {
			continue
		}
		contributing++

		totalKills += participant.Kills
		totalDeaths += participant.Deaths
		totalAssists += participant.Assists
		if participant.Win {
			totalWins++
		}

		name := participant.ChampionName
		if name == "" {
			continue
		}

		acc, exists := accumulators[name]
		if !exists {
			acc = &championAccumulator{
				championId: participant.ChampionId,
				name:       name,
			}
			accumulators[name] = acc
			encounterOrder = append(encounterOrder, name)
		}
		acc.games++
		acc.kills += participant.Kills
		acc.deaths += participant.Deaths
		acc.assists += participant.Assists
		if participant.Win {
			acc.wins++
		}
	}

	// Stable sort over the encounter order keeps ties deterministic.
	sorted := make([]*championAccumulator, len(encounterOrder))
	for i, name := range encounterOrder {
		sorted[i] = accumulators[name]
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].games > sorted[j].games
	})

	topCount := topChampionCount
	if topCount > len(sorted) {
		topCount = len(sorted)
	}

	topChampions := make([]dto.ChampionStat, 0, topCount)
	for _, acc := range sorted[:topCount] {
		topChampions = append(topChampions, dto.ChampionStat{
			ChampionId:   acc.championId,
			ChampionName: acc.name,
			GamesPlayed:  acc.games,
			Wins:         acc.wins,
			WinRate:      rate(acc.wins, acc.games),
			AvgKills:     average(acc.kills, acc.games),
			AvgDeaths:    average(acc.deaths, acc.games),
			AvgAssists:   average(acc.assists, acc.games),
		})
	}

	return dto.AggregatedStats{
		TotalGames:     contributing,
		WinRateOverall: rate(totalWins, contributing),
		AverageKDAOverall: dto.KDA{
			Kills:   average(totalKills, contributing),
			Deaths:  average(totalDeaths, contributing),
			Assists: average(totalAssists, contributing),
		},
		TopChampionsStats: topChampions,
	}
}

// FilterMatches selects the matches on a queue bucket and/or with the
// player on a champion whose name contains the given substring.
// It never refetches, operating only on already hydrated records.
func FilterMatches(matches []matchfetcher.MatchData, puuid string, queueBucket string, championSubstring string) []matchfetcher.MatchData {
	filtered := matches

	if queueBucket != "" && queueBucket != "all" {
		queueIds, known := queuevalues.FilterBuckets[queueBucket]
		if !known {
			// A unknown bucket selects nothing.
			return []matchfetcher.MatchData{}
		}
		var kept []matchfetcher.MatchData
		for i := range filtered {
			if slices.Contains(queueIds, filtered[i].Info.QueueId) {
				kept = append(kept, filtered[i])
			}
		}
		filtered = kept
	}

	championSubstring = strings.TrimSpace(strings.ToLower(championSubstring))
	if championSubstring != "" {
		var kept []matchfetcher.MatchData
		for i := range filtered {
			participant := FindParticipant(&filtered[i], puuid)
			if participant == nil {
				continue
			}
			if strings.Contains(strings.ToLower(participant.ChampionName), championSubstring) {
				kept = append(kept, filtered[i])
			}
		}
		filtered = kept
	}

	if filtered == nil {
		return []matchfetcher.MatchData{}
	}
	return filtered
}

// FindParticipant locates the player's own participant record.
// Nil when the player is absent from the match.
func FindParticipant(match *matchfetcher.MatchData, puuid string) *matchfetcher.MatchPlayer {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].Puuid == puuid {
			return &match.Info.Participants[i]
		}
	}
	return nil
}

// KdaRatio is the display ratio (kills+assists)/deaths, with the
// zero-deaths convention of using the numerator alone. A 0/0/0 line
// yields 0, never NaN.
func KdaRatio(kills int, deaths int, assists int) float64 {
	numerator := float64(kills + assists)
	if deaths == 0 {
		return numerator
	}
	return numerator / float64(deaths)
}

// Percentage of wins over games, zero when there are no games.
func rate(wins int, games int) float64 {
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}

// Average rounded to one decimal place, zero when there are no games.
func average(total int, games int) float64 {
	if games == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(games)*10) / 10
}
