package tiervalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("GOLD"))
	assert.True(t, IsValid(" gold "))
	assert.True(t, IsValid("CHALLENGER"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("WOOD"))
}

func TestIsApex(t *testing.T) {
	assert.True(t, IsApex("MASTER"))
	assert.True(t, IsApex("grandmaster"))
	assert.False(t, IsApex("DIAMOND"))
	assert.False(t, IsApex(""))
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare("GOLD", "I", "PLATINUM", "IV"))
	assert.Positive(t, Compare("GOLD", "I", "GOLD", "II"))
	assert.Zero(t, Compare("GOLD", "II", "gold", "ii"))

	// Unknown tiers sort below everything.
	assert.Negative(t, Compare("WOOD", "I", "IRON", "IV"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Gold", DisplayName("GOLD"))
	assert.Equal(t, "Grandmaster", DisplayName("GRANDMASTER"))
	assert.Equal(t, "Unranked", DisplayName(""))
}
