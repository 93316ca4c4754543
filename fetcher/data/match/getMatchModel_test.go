package matchfetcher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRiotTime(t *testing.T) {
	var parsed struct {
		GameCreation RiotTime `json:"gameCreation"`
	}

	err := json.Unmarshal([]byte(`{"gameCreation": 1704067200000}`), &parsed)
	assert.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1704067200000), parsed.GameCreation.Time())

	// Cached records must round trip back to the same millis.
	encoded, err := json.Marshal(parsed)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"gameCreation": 1704067200000}`, string(encoded))

	// Riot sends millis, not a string timestamp.
	err = json.Unmarshal([]byte(`{"gameCreation": "2024-01-01"}`), &parsed)
	assert.Error(t, err)
}

func TestItems(t *testing.T) {
	player := MatchPlayer{Item0: 3089, Item1: 3020, Item6: 3364}

	items := player.Items()
	assert.Equal(t, [7]int{3089, 3020, 0, 0, 0, 0, 3364}, items)
}
