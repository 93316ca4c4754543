package masteryfetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopMasteries(t *testing.T) {
	entries := []MasteryEntry{
		{ChampionId: 64, ChampionLevel: 6, ChampionPoints: 100000},
		{ChampionId: 103, ChampionLevel: 7, ChampionPoints: 250000},
		{ChampionId: 238, ChampionLevel: 5, ChampionPoints: 80000},
		{ChampionId: 1, ChampionLevel: 4, ChampionPoints: 50000},
	}

	t.Run("orders by points descending", func(t *testing.T) {
		top := TopMasteries(entries, 3)

		assert.Len(t, top, 3)
		assert.Equal(t, 103, top[0].ChampionId)
		assert.Equal(t, 64, top[1].ChampionId)
		assert.Equal(t, 238, top[2].ChampionId)
	})

	t.Run("does not trust the upstream ordering", func(t *testing.T) {
		reversed := []MasteryEntry{entries[3], entries[2], entries[0], entries[1]}

		assert.Equal(t, TopMasteries(entries, 3), TopMasteries(reversed, 3))
	})

	t.Run("ties break by champion id", func(t *testing.T) {
		tied := []MasteryEntry{
			{ChampionId: 238, ChampionPoints: 100000},
			{ChampionId: 64, ChampionPoints: 100000},
		}

		top := TopMasteries(tied, 2)
		assert.Equal(t, 64, top[0].ChampionId)
		assert.Equal(t, 238, top[1].ChampionId)
	})

	t.Run("clamps to the available entries", func(t *testing.T) {
		assert.Len(t, TopMasteries(entries, 10), 4)
		assert.Empty(t, TopMasteries(nil, 3))
		assert.Empty(t, TopMasteries(entries, 0))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		original := make([]MasteryEntry, len(entries))
		copy(original, entries)

		TopMasteries(entries, 2)
		assert.Equal(t, original, entries)
	})
}
