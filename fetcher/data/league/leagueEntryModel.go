package leaguefetcher

// Define the type returned by the league entries.
// Tier and Rank come as pointers, a entry without a tier is treated
// as unranked by the callers, never as a error.
type LeagueEntry struct {
	SummonerId   string  `json:"summonerId"`
	Puuid        string  `json:"puuid"`
	Tier         *string `json:"tier,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	QueueType    *string `json:"queueType,omitempty"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	FreshBlood   bool    `json:"freshBlood"`
	HotStreak    bool    `json:"hotStreak"`
}
