package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierPremium(t *testing.T) {
	assert.False(t, TierFree.Premium())
	assert.True(t, TierPlus.Premium())
	assert.True(t, TierPro.Premium())
}

func TestTierValid(t *testing.T) {
	assert.True(t, TierFree.Valid())
	assert.False(t, Tier("gold").Valid())
	assert.False(t, Tier("").Valid())
}

func TestDefaultData(t *testing.T) {
	d := DefaultData()
	assert.Equal(t, "Explorer", d.Nickname)
	assert.Equal(t, "Ready for a new day!", d.StatusTagline)
	assert.Empty(t, d.DOB)
}
