package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChampionSquareURL(t *testing.T) {
	url := ChampionSquareURL("Cho'Gath", "15.1.1")
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/15.1.1/img/champion/Chogath.png", url)

	// Raw API spellings normalize the same way.
	assert.Equal(t, url, ChampionSquareURL(" Chogath ", "15.1.1"))
}

func TestItemIconURL(t *testing.T) {
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/15.1.1/img/item/3089.png", ItemIconURL(3089, "15.1.1"))

	// Slot 0 is a empty inventory slot, not a asset.
	assert.Equal(t, "empty-slot", ItemIconURL(0, "15.1.1"))
}

func TestSummonerSpellIconURL(t *testing.T) {
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/15.1.1/img/spell/SummonerFlash.png", SummonerSpellIconURL(4, "15.1.1"))

	// Unknown spells get a placeholder instead of a broken link.
	assert.Contains(t, SummonerSpellIconURL(999, "15.1.1"), "placehold")
}

func TestRuneIconURL(t *testing.T) {
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/img/perk-images/Styles/Domination/Electrocute/Electrocute.png", RuneIconURL(8112))
	assert.Contains(t, RuneIconURL(1), "placehold")
}

func TestRankEmblemURL(t *testing.T) {
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/img/ranked-emblems/EMBLEM_GOLD.png", RankEmblemURL("GOLD"))
	assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/img/ranked-emblems/EMBLEM_GOLD.png", RankEmblemURL(" gold "))
}

func TestFormatGameDuration(t *testing.T) {
	assert.Equal(t, "23m 05s", FormatGameDuration(1385))
	assert.Equal(t, "0m 00s", FormatGameDuration(0))
	assert.Equal(t, "60m 00s", FormatGameDuration(3600))
}
