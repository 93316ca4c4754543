package queuevalues

import "fmt"

// Queue type strings used by the league-v4 entries.
const (
	RankedSolo = "RANKED_SOLO_5x5"
	RankedFlex = "RANKED_FLEX_SR"
)

// Map of the queue ids to their ranked queue type, when ranked.
var RankedQueueValue = map[int]string{
	420: RankedSolo,
	440: RankedFlex,
}

// Buckets accepted by the match history queue filter.
// A unknown bucket matches nothing, "all" matches everything.
var FilterBuckets = map[string][]int{
	"all":         nil,
	"ranked_solo": {420},
	"ranked_flex": {440},
	"normal":      {400, 430},
	"aram":        {450},
}

// Display names for the queue ids.
var queueNames = map[int]string{
	0:    "Custom",
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	480:  "Swiftplay",
	700:  "Clash",
	720:  "ARAM Clash",
	830:  "Co-op vs AI Intro",
	840:  "Co-op vs AI Beginner",
	850:  "Co-op vs AI Intermediate",
	900:  "URF",
	1020: "One for All",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
	1700: "Arena",
	1900: "Pick URF",
	2000: "Tutorial 1",
	2010: "Tutorial 2",
	2020: "Tutorial 3",
}

// QueueName returns the display name of a given queue id.
func QueueName(queueId int) string {
	if name, ok := queueNames[queueId]; ok {
		return name
	}
	return fmt.Sprintf("Queue %d", queueId)
}
