package assets

import (
	"strings"
	"unicode"
)

// Champions whose DDragon id doesn't follow the generic sanitization,
// keyed by both the display form and the id itself so API supplied
// values resolve too. Wukong is the notable one, it's id bears no
// resemblance to the display name.
var championNameExceptions = map[string]string{
	"Aurelion Sol":   "AurelionSol",
	"AurelionSol":    "AurelionSol",
	"Cho'Gath":       "Chogath",
	"Chogath":        "Chogath",
	"Dr. Mundo":      "DrMundo",
	"DrMundo":        "DrMundo",
	"Fiddlesticks":   "Fiddlesticks",
	"FiddleSticks":   "Fiddlesticks",
	"Jarvan IV":      "JarvanIV",
	"JarvanIV":       "JarvanIV",
	"Kai'Sa":         "Kaisa",
	"Kaisa":          "Kaisa",
	"Kha'Zix":        "Khazix",
	"Khazix":         "Khazix",
	"Kog'Maw":        "KogMaw",
	"KogMaw":         "KogMaw",
	"LeBlanc":        "Leblanc",
	"Leblanc":        "Leblanc",
	"Lee Sin":        "LeeSin",
	"LeeSin":         "LeeSin",
	"Master Yi":      "MasterYi",
	"MasterYi":       "MasterYi",
	"Miss Fortune":   "MissFortune",
	"MissFortune":    "MissFortune",
	"Nunu & Willump": "Nunu",
	"Nunu":           "Nunu",
	"Rek'Sai":        "RekSai",
	"RekSai":         "RekSai",
	"Renata Glasc":   "Renata",
	"Renata":         "Renata",
	"Tahm Kench":     "TahmKench",
	"TahmKench":      "TahmKench",
	"Twisted Fate":   "TwistedFate",
	"TwistedFate":    "TwistedFate",
	"Vel'Koz":        "Velkoz",
	"Velkoz":         "Velkoz",
	"Xin Zhao":       "XinZhao",
	"XinZhao":        "XinZhao",
	"Wukong":         "MonkeyKing",
	"MonkeyKing":     "MonkeyKing",
	"K'Sante":        "KSante",
	"KSante":         "KSante",
}

// Inverse mapping restricted to the ids the UI needs spelled out.
var canonicalToDisplayName = map[string]string{
	"AurelionSol": "Aurelion Sol",
	"Chogath":     "Cho'Gath",
	"DrMundo":     "Dr. Mundo",
	"JarvanIV":    "Jarvan IV",
	"Kaisa":       "Kai'Sa",
	"Khazix":      "Kha'Zix",
	"KogMaw":      "Kog'Maw",
	"Leblanc":     "LeBlanc",
	"LeeSin":      "Lee Sin",
	"MasterYi":    "Master Yi",
	"MissFortune": "Miss Fortune",
	"Nunu":        "Nunu & Willump",
	"RekSai":      "Rek'Sai",
	"Renata":      "Renata Glasc",
	"TahmKench":   "Tahm Kench",
	"TwistedFate": "Twisted Fate",
	"Velkoz":      "Vel'Koz",
	"XinZhao":     "Xin Zhao",
	"MonkeyKing":  "Wukong",
	"KSante":      "K'Sante",
}

// ToCanonicalId maps a arbitrary champion name, API or user supplied,
// to the DDragon canonical id. Exception table first, then generic
// sanitization. Never returns empty for non-empty input.
func ToCanonicalId(rawName string) string {
	if rawName == "" {
		return ""
	}

	if canonicalId, ok := championNameExceptions[rawName]; ok {
		return canonicalId
	}

	canonicalId := sanitizeName(rawName)

	// Fixups for names the generic pass cases wrong.
	switch canonicalId {
	case "Reksai":
		canonicalId = "RekSai"
	case "Ksante":
		canonicalId = "KSante"
	case "LeBlanc":
		canonicalId = "Leblanc"
	}

	if canonicalId == "" {
		// Best effort, keep the input rather than returning nothing.
		return rawName
	}
	return canonicalId
}

// ToDisplayName maps a canonical id back to the human display form.
// A id not present in the inverse table is returned unchanged.
func ToDisplayName(canonicalOrRawName string) string {
	if canonicalOrRawName == "" {
		return "Unknown Champion"
	}

	// Already a display form the table knows about.
	for _, displayName := range canonicalToDisplayName {
		if displayName == canonicalOrRawName {
			return canonicalOrRawName
		}
	}

	if displayName, ok := canonicalToDisplayName[canonicalOrRawName]; ok {
		return displayName
	}
	return canonicalOrRawName
}

// Generic sanitization: drop punctuation except spaces and apostrophes,
// PascalCase each word, then drop the apostrophes.
func sanitizeName(rawName string) string {
	var cleaned strings.Builder
	for _, r := range rawName {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '\'' {
			cleaned.WriteRune(r)
		}
	}

	var canonicalId strings.Builder
	for _, part := range strings.Fields(cleaned.String()) {
		canonicalId.WriteString(strings.ToUpper(part[:1]))
		canonicalId.WriteString(strings.ToLower(part[1:]))
	}

	return strings.ReplaceAll(canonicalId.String(), "'", "")
}
