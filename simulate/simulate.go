package simulate

import (
	"context"
	"math/rand"

	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/effect"
	"github.com/networkee/ergmee/sampler"
)

// Row is one sample: the observed z-statistic vector at this point in the
// chain, recomputed directly (not accumulated from Δz) so it reflects the
// graph's actual state at emission time.
type Row struct {
	Step  int
	Stats []float64
}

// SnapshotFunc is called once per emitted Row with the chain's current
// graph, for callers that want to persist periodic graph snapshots
// (e.g. to Pajek files named "<prefix>_<i>.net").
type SnapshotFunc func(step int, g *core.Graph) error

// Run performs burnin sweeps with no output, then sampleSize rounds of
// interval sweeps each followed by one emitted Row (and, if snapshot is
// non-nil, one snapshot call). model.Theta is read-only throughout.
func Run(termCtx context.Context, kernel sampler.Kernel, state *effect.Context, rng *rand.Rand, model *sampler.Model, burnin, interval, sampleSize int, snapshot SnapshotFunc) ([]Row, error) {
	if _, _, err := sampler.Sweep(termCtx, kernel, state, rng, model, burnin); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, sampleSize)
	for s := 0; s < sampleSize; s++ {
		if _, _, err := sampler.Sweep(termCtx, kernel, state, rng, model, interval); err != nil {
			return rows, err
		}

		stats := make([]float64, len(model.Effects))
		for k, e := range model.Effects {
			stats[k] = e.StatDirect(state)
		}
		rows = append(rows, Row{Step: s, Stats: stats})

		if snapshot != nil {
			if err := snapshot(s, state.G); err != nil {
				return rows, err
			}
		}
	}

	return rows, nil
}
