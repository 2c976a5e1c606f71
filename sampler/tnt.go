package sampler

import (
	"math"
	"math/rand"

	"github.com/networkee/ergmee/effect"
)

// TNTKernel implements spec.md §4.4's Tie-No-Tie proposal: with
// probability ½ propose deleting a uniformly random existing edge,
// otherwise propose adding a uniformly random non-edge. The acceptance
// ratio is corrected for the proposal's asymmetry by E/(D-E) (or its
// reciprocal), where D is the total number of possible dyads and E the
// current edge count.
type TNTKernel struct{}

func (k *TNTKernel) Step(ctx *effect.Context, rng *rand.Rand, model *Model) (bool, []float64, error) {
	edges := ctx.G.EdgeList()
	e := len(edges)
	d := totalPossibleDyads(ctx.G)

	var i, j int
	proposingDeletion := e > 0 && rng.Float64() < 0.5
	if proposingDeletion {
		pick := edges[rng.Intn(e)]
		i, j = pick.From, pick.To
	} else {
		i, j = randomNonEdge(ctx.G, rng)
		if model.ForbidReciprocity && ctx.G.HasEdge(j, i) {
			return false, nil, nil
		}
	}

	score, dz := model.changeStat(ctx, i, j)
	logAccept := score + math.Log(tntCorrection(float64(e), float64(d), proposingDeletion))
	if !metropolisAccept(rng, logAccept) {
		return false, nil, nil
	}

	if err := toggleAndSync(ctx, i, j); err != nil {
		return false, nil, err
	}

	return true, dz, nil
}

// tntCorrection returns E/(D-E) when proposing a deletion, and its
// reciprocal (D-E)/E when proposing an addition.
func tntCorrection(e, d float64, proposingDeletion bool) float64 {
	ratio := e / (d - e)
	if proposingDeletion {
		return ratio
	}

	return 1 / ratio
}
