package activities

import (
	"math/rand/v2"

	"github.com/gwcare/glowy/internal/catalog"
)

// drawFallback samples a batch from the generic pool without
// replacement. Every drawn activity starts uncompleted and carries its
// TaskRef for the presentation layer to localize.
func drawFallback(pool []catalog.FallbackActivity, rng *rand.Rand) []Activity {
	n := FallbackBatchSize
	if n > len(pool) {
		n = len(pool)
	}

	out := make([]Activity, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		out = append(out, Activity{
			ID:      pool[idx].ID,
			TaskRef: pool[idx].TaskRef,
		})
	}
	return out
}
