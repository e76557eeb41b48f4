package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwcare/glowy/internal/assessment"
)

func openTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	opts.DBPath = filepath.Join(t.TempDir(), "glowy.db")
	opts.DisableLLM = true
	a, err := New(context.Background(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestBindPlanResolvesDisplayLabel(t *testing.T) {
	labels := map[string]string{"strained": "Strained"}
	a := openTestApp(t, Options{
		ProfileLabel: func(key string) string { return labels[key] },
	})

	ctx := context.Background()
	bound := a.BindPlan(ctx, assessment.Result{ProfileKey: "strained", Score: 50})
	require.True(t, bound)

	sp, err := a.Plan(ctx)
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "Strained", sp.Profile)
	assert.Len(t, sp.Weeks, 6)
}

func TestBindPlanDefaultsToRawKey(t *testing.T) {
	a := openTestApp(t, Options{})

	ctx := context.Background()
	require.True(t, a.BindPlan(ctx, assessment.Result{ProfileKey: "radiant", Score: 10}))

	sp, err := a.Plan(ctx)
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "radiant", sp.Profile)
}

func TestBindPlanUnknownProfile(t *testing.T) {
	a := openTestApp(t, Options{})

	ctx := context.Background()
	assert.False(t, a.BindPlan(ctx, assessment.Result{ProfileKey: "unknown", Score: 0}))

	sp, err := a.Plan(ctx)
	require.NoError(t, err)
	assert.Nil(t, sp)
}
