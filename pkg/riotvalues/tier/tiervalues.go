package tiervalues

import (
	"slices"
	"strings"
)

// Ordered tier names, lowest first.
var tierNames = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER"}

// Apex tiers carry no division on the league entries.
var apexTiers = []string{"MASTER", "GRANDMASTER", "CHALLENGER"}

// Ordered division names, lowest first.
var rankNames = []string{"IV", "III", "II", "I"}

// IsValid reports whether the tier is a known ranked tier.
func IsValid(tier string) bool {
	return slices.Contains(tierNames, normalize(tier))
}

// IsApex reports whether the tier has no division.
func IsApex(tier string) bool {
	return slices.Contains(apexTiers, normalize(tier))
}

// Compare returns a negative, zero or positive value ordering two
// (tier, division) pairs, lowest standing first. Unknown tiers sort lowest.
func Compare(tierA, rankA, tierB, rankB string) int {
	tierDiff := slices.Index(tierNames, normalize(tierA)) - slices.Index(tierNames, normalize(tierB))
	if tierDiff != 0 {
		return tierDiff
	}
	return slices.Index(rankNames, normalize(rankA)) - slices.Index(rankNames, normalize(rankB))
}

// DisplayName formats a tier for the UI, e.g. "GOLD" -> "Gold".
func DisplayName(tier string) string {
	tier = normalize(tier)
	if len(tier) == 0 {
		return "Unranked"
	}
	return tier[:1] + strings.ToLower(tier[1:])
}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
