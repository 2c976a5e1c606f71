package sampler

import (
	"math/rand"

	"github.com/networkee/ergmee/effect"
)

// BasicKernel implements spec.md §4.4's basic sampler: propose a
// uniformly random dyad toggle and accept via the plain Metropolis
// criterion min(1, exp(Σθₖ·Δzₖ)).
type BasicKernel struct{}

func (k *BasicKernel) Step(ctx *effect.Context, rng *rand.Rand, model *Model) (bool, []float64, error) {
	i, j := randomDyad(ctx.G, rng)
	if model.ForbidReciprocity && !ctx.G.HasEdge(i, j) && ctx.G.HasEdge(j, i) {
		return false, nil, nil // would create a forbidden reciprocated arc
	}

	score, dz := model.changeStat(ctx, i, j)
	if !metropolisAccept(rng, score) {
		return false, nil, nil
	}

	if err := toggleAndSync(ctx, i, j); err != nil {
		return false, nil, err
	}

	return true, dz, nil
}
