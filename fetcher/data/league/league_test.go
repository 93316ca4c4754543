package leaguefetcher

import (
	"testing"

	queuevalues "lolinsights/pkg/riotvalues/queue"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestPickQueueEntry(t *testing.T) {
	solo := LeagueEntry{
		QueueType: strPtr(queuevalues.RankedSolo),
		Tier:      strPtr("GOLD"),
	}
	flex := LeagueEntry{
		QueueType: strPtr(queuevalues.RankedFlex),
		Tier:      strPtr("SILVER"),
	}
	entries := []LeagueEntry{flex, solo}

	t.Run("exact queue match", func(t *testing.T) {
		picked := PickQueueEntry(entries, queuevalues.RankedSolo)
		assert.NotNil(t, picked)
		assert.Equal(t, "GOLD", *picked.Tier)
	})

	t.Run("absent queue is unranked", func(t *testing.T) {
		assert.Nil(t, PickQueueEntry([]LeagueEntry{solo}, queuevalues.RankedFlex))
		assert.Nil(t, PickQueueEntry(nil, queuevalues.RankedSolo))
	})

	t.Run("entries without a queue type are skipped", func(t *testing.T) {
		assert.Nil(t, PickQueueEntry([]LeagueEntry{{Tier: strPtr("GOLD")}}, queuevalues.RankedSolo))
	})
}
