package sampler

import (
	"math/rand"

	"github.com/networkee/ergmee/effect"
)

// IFDKernel implements spec.md §4.4's Improved Fixed Density sampler:
// each step pairs one deletion of a random existing edge with one
// addition at a random non-edge, so the edge count is invariant across
// every accepted step. K is an auxiliary parameter added to the log
// acceptance ratio; it is set once when the kernel is built and nothing
// updates it during a run. The kernel only reads it.
type IFDKernel struct {
	K float64
}

func (k *IFDKernel) Step(ctx *effect.Context, rng *rand.Rand, model *Model) (bool, []float64, error) {
	edges := ctx.G.EdgeList()
	if len(edges) == 0 {
		return false, nil, nil
	}
	del := edges[rng.Intn(len(edges))]
	addI, addJ := randomNonEdge(ctx.G, rng)

	scoreDel, dzDel := model.changeStat(ctx, del.From, del.To)
	scoreAdd, dzAdd := model.changeStat(ctx, addI, addJ)

	if !metropolisAccept(rng, scoreDel+scoreAdd+k.K) {
		return false, nil, nil
	}

	if err := toggleAndSync(ctx, del.From, del.To); err != nil {
		return false, nil, err
	}
	if err := toggleAndSync(ctx, addI, addJ); err != nil {
		return false, nil, err
	}

	dz := make([]float64, len(dzDel))
	for idx := range dz {
		dz[idx] = dzDel[idx] + dzAdd[idx]
	}

	return true, dz, nil
}
