package dto

// KDA holds average kills, deaths and assists, one decimal place.
type KDA struct {
	Kills   float64 `json:"kills"`
	Deaths  float64 `json:"deaths"`
	Assists float64 `json:"assists"`
}

// ChampionStat is the aggregate of every match the player played
// that champion.
type ChampionStat struct {
	ChampionId   int     `json:"championId"`
	ChampionName string  `json:"championName"`
	GamesPlayed  int     `json:"gamesPlayed"`
	Wins         int     `json:"wins"`
	WinRate      float64 `json:"winRate"`
	AvgKills     float64 `json:"avgKills"`
	AvgDeaths    float64 `json:"avgDeaths"`
	AvgAssists   float64 `json:"avgAssists"`
}

// AggregatedStats is the reduction of a match list for one player.
type AggregatedStats struct {
	TotalGames        int            `json:"totalGames"`
	WinRateOverall    float64        `json:"winRateOverall"`
	AverageKDAOverall KDA            `json:"averageKDAOverall"`
	TopChampionsStats []ChampionStat `json:"topChampionsStats"`
}
