package assets

import (
	"fmt"
	"strings"
)

// Summoner spell ids to their DDragon asset keys.
var summonerSpellKeys = map[int]string{
	1:  "SummonerBoost", // Cleanse
	3:  "SummonerExhaust",
	4:  "SummonerFlash",
	6:  "SummonerHaste", // Ghost
	7:  "SummonerHeal",
	11: "SummonerSmite",
	12: "SummonerTeleport",
	13: "SummonerMana", // Clarity
	14: "SummonerDot", // Ignite
	21: "SummonerBarrier",
	32: "SummonerSnowball", // Mark (ARAM)
}

// Rune and rune tree ids to their static perk image paths.
// These are not versioned on the DDragon like champions and items.
var runeIconPaths = map[int]string{
	// Precision
	8005: "perk-images/Styles/Precision/PressTheAttack/PressTheAttack.png",
	8008: "perk-images/Styles/Precision/LethalTempo/LethalTempoTemp.png",
	8021: "perk-images/Styles/Precision/FleetFootwork/FleetFootwork.png",
	8010: "perk-images/Styles/Precision/Conqueror/Conqueror.png",
	// Domination
	8112: "perk-images/Styles/Domination/Electrocute/Electrocute.png",
	8124: "perk-images/Styles/Domination/Predator/Predator.png",
	8128: "perk-images/Styles/Domination/DarkHarvest/DarkHarvest.png",
	9923: "perk-images/Styles/Domination/HailOfBlades/HailOfBlades.png",
	// Sorcery
	8214: "perk-images/Styles/Sorcery/SummonAery/SummonAery.png",
	8229: "perk-images/Styles/Sorcery/ArcaneComet/ArcaneComet.png",
	8230: "perk-images/Styles/Sorcery/PhaseRush/PhaseRush.png",
	// Resolve
	8437: "perk-images/Styles/Resolve/GraspOfTheUndying/GraspOfTheUndying.png",
	8439: "perk-images/Styles/Resolve/VeteranAftershock/VeteranAftershock.png",
	8465: "perk-images/Styles/Resolve/Guardian/Guardian.png",
	// Inspiration
	8351: "perk-images/Styles/Inspiration/GlacialAugment/GlacialAugment.png",
	8360: "perk-images/Styles/Inspiration/UnsealedSpellbook/UnsealedSpellbook.png",
	8369: "perk-images/Styles/Inspiration/FirstStrike/FirstStrike.png",
	// Rune tree icons, keyed by the primary style ids.
	8000: "perk-images/Styles/7201_Precision.png",
	8100: "perk-images/Styles/7200_Domination.png",
	8200: "perk-images/Styles/7202_Sorcery.png",
	8300: "perk-images/Styles/7203_Whimsy.png", // Inspiration
	8400: "perk-images/Styles/7204_Resolve.png",
}

// ChampionSquareURL builds the square icon URL for a champion name.
// The name goes through the normalizer, so raw API spellings work.
func ChampionSquareURL(championName string, version string) string {
	canonicalId := ToCanonicalId(strings.TrimSpace(championName))
	if canonicalId == "" {
		return "https://placehold.co/48x48.png?text=NoCh"
	}
	return fmt.Sprintf("%scdn/%s/img/champion/%s.png", ddragon, version, canonicalId)
}

// ItemIconURL builds the icon URL for a item id.
// Item id 0 is a empty inventory slot, not a asset.
func ItemIconURL(itemId int, version string) string {
	if itemId == 0 {
		return "empty-slot"
	}
	return fmt.Sprintf("%scdn/%s/img/item/%d.png", ddragon, version, itemId)
}

// ProfileIconURL builds the icon URL for a profile icon id.
func ProfileIconURL(profileIconId int, version string) string {
	return fmt.Sprintf("%scdn/%s/img/profileicon/%d.png", ddragon, version, profileIconId)
}

// SummonerSpellIconURL builds the icon URL for a summoner spell id,
// with a placeholder for spells outside the table.
func SummonerSpellIconURL(spellId int, version string) string {
	spellKey, ok := summonerSpellKeys[spellId]
	if !ok {
		return fmt.Sprintf("https://placehold.co/32x32.png?text=S%d", spellId)
	}
	return fmt.Sprintf("%scdn/%s/img/spell/%s.png", ddragon, version, spellKey)
}

// RuneIconURL builds the icon URL for a rune or rune tree id.
// The perk image paths are static and not versioned.
func RuneIconURL(runeId int) string {
	iconPath, ok := runeIconPaths[runeId]
	if !ok {
		return fmt.Sprintf("https://placehold.co/32x32.png?text=R%d", runeId)
	}
	return fmt.Sprintf("%scdn/img/%s", ddragon, iconPath)
}

// RankEmblemURL builds the emblem URL for a ranked tier.
// Emblems live on a static unversioned path as well.
func RankEmblemURL(tier string) string {
	return fmt.Sprintf("%scdn/img/ranked-emblems/EMBLEM_%s.png", ddragon, strings.ToUpper(strings.TrimSpace(tier)))
}

// FormatGameDuration renders a match duration like "23m 05s".
func FormatGameDuration(durationInSeconds int) string {
	minutes := durationInSeconds / 60
	seconds := durationInSeconds % 60
	return fmt.Sprintf("%dm %02ds", minutes, seconds)
}
