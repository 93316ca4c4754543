package matchfetcher

import (
	"encoding/json"
	"time"
)

// Handle the conversion of the int timestamps from riot.
type RiotTime time.Time

// Add the riot time UnmarshalJSON.
func (rt *RiotTime) UnmarshalJSON(b []byte) error {
	var timestamp int64
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}

	// Convert milliseconds to time.Time
	*rt = RiotTime(time.UnixMilli(timestamp))
	return nil
}

// MarshalJSON writes the timestamp back as milliseconds, so cached
// match records round trip through Redis unchanged.
func (rt RiotTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(rt).UnixMilli())
}

// Get the true time.
func (rt RiotTime) Time() time.Time {
	return time.Time(rt)
}

// Return type from the match_v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// Match metadata, the matchId is the natural key for memoization.
type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// Match information.
type MatchInfo struct {
	EndOfGameResult string        `json:"endOfGameResult"`
	GameCreation    RiotTime      `json:"gameCreation"`
	GameDuration    int           `json:"gameDuration"`
	GameMode        string        `json:"gameMode"`
	GameVersion     string        `json:"gameVersion"`
	Participants    []MatchPlayer `json:"participants"`
	QueueId         int           `json:"queueId"`
	Teams           []TeamInfo    `json:"teams"`
}

// Player results.
type MatchPlayer struct {
	Puuid                       string `json:"puuid"`
	TeamId                      int    `json:"teamId"`
	ChampionId                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	ChampionLevel               int    `json:"champLevel"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	Win                         bool   `json:"win"`
	Item0                       int    `json:"item0"`
	Item1                       int    `json:"item1"`
	Item2                       int    `json:"item2"`
	Item3                       int    `json:"item3"`
	Item4                       int    `json:"item4"`
	Item5                       int    `json:"item5"`
	Item6                       int    `json:"item6"`
	Summoner1Id                 int    `json:"summoner1Id"`
	Summoner2Id                 int    `json:"summoner2Id"`
	Perks                       Perks  `json:"perks"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	VisionScore                 int    `json:"visionScore"`
	GoldEarned                  int    `json:"goldEarned"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
}

// Items returns the seven item slots in order.
func (p *MatchPlayer) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// Rune perks of the player.
type Perks struct {
	Styles []PerkStyle `json:"styles"`
}

// A single perk style tree, primaryStyle or subStyle.
type PerkStyle struct {
	Description string          `json:"description"`
	Style       int             `json:"style"`
	Selections  []PerkSelection `json:"selections"`
}

// A selected rune inside a style tree.
type PerkSelection struct {
	Perk int `json:"perk"`
}

// Team information.
type TeamInfo struct {
	Bans   []Ban `json:"bans"`
	TeamId int   `json:"teamId"`
	Win    bool  `json:"win"`
}

// Ban information.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}
