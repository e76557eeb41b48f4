package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwcare/glowy/internal/catalog"
)

func TestBind(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	sp, err := Bind(cat, "strained", "Strained")
	require.NoError(t, err)
	assert.Equal(t, "Strained", sp.Profile)
	assert.Len(t, sp.Weeks, 6)

	// The bound plan is a copy; mutating it must not bleed into the
	// shared catalog template.
	sp.Weeks[0].ThemeRef = "mutated"
	assert.NotEqual(t, "mutated", cat.PlanFor("strained").Weeks[0].ThemeRef)
}

func TestBindUnknownProfile(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)

	_, err = Bind(cat, "mystery", "Mystery")
	assert.ErrorIs(t, err, ErrPlanUnavailable)
}
