// Package user holds the user profile and subscription tier slots.
package user

// Tier is the subscription level. It is stored locally and read by the
// retake gate; there is no server-side entitlement check.
type Tier string

const (
	TierFree Tier = "free"
	TierPlus Tier = "plus"
	TierPro  Tier = "pro"
)

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierPlus, TierPro:
		return true
	}
	return false
}

// Premium reports whether t unlocks premium behavior (unlimited
// retakes).
func (t Tier) Premium() bool {
	return t == TierPlus || t == TierPro
}

// TierSlot is the durable shape of the tier slot.
type TierSlot struct {
	Tier Tier `json:"tier"`
}

// Data is the user's profile: presentation-owned fields the engine
// stores but never interprets. DOB may be partial ("1990", "1990-04").
type Data struct {
	Nickname      string `json:"nickname"`
	DOB           string `json:"dob"`
	StatusTagline string `json:"statusTagline"`
}

// DefaultData returns the profile a fresh install starts with.
func DefaultData() Data {
	return Data{
		Nickname:      "Explorer",
		StatusTagline: "Ready for a new day!",
	}
}
