package sampler

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/effect"
)

// Model bundles a bound effect set with the estimator's current parameter
// vector. It is read-only from a kernel's perspective: only the
// estimator's outer loop ever assigns to Theta.
type Model struct {
	Effects           []*effect.Effect
	Theta             []float64
	ForbidReciprocity bool
}

// NewModel validates that theta has one entry per effect.
func NewModel(effects []*effect.Effect, theta []float64, forbidReciprocity bool) (*Model, error) {
	if len(theta) != len(effects) {
		return nil, fmt.Errorf("%w: got %d theta for %d effects", ErrThetaLengthMismatch, len(theta), len(effects))
	}

	return &Model{Effects: effects, Theta: theta, ForbidReciprocity: forbidReciprocity}, nil
}

// changeStat returns Σθₖ·Δzₖ for toggling (i,j) against ctx's current
// (pre-toggle) state, alongside the per-effect Δz vector so the caller
// can accumulate Σ Δz independently of θ.
func (m *Model) changeStat(ctx *effect.Context, i, j int) (float64, []float64) {
	dz := make([]float64, len(m.Effects))
	var sum float64
	for k, e := range m.Effects {
		dz[k] = e.DeltaZ(ctx, i, j)
		sum += m.Theta[k] * dz[k]
	}

	return sum, dz
}

// Kernel is one proposal/acceptance strategy. Step performs exactly one
// MCMC step (for IFD, one paired add+delete), mutating ctx.G and
// ctx.Cache together only when the proposal is accepted. The returned
// dz, when accepted is true, is the Σ Δz contribution of that step.
type Kernel interface {
	Step(ctx *effect.Context, rng *rand.Rand, model *Model) (accepted bool, dz []float64, err error)
}

// Sweep runs kernel for the given number of steps, polling ctx.Done()
// between steps so a chain can honor a termination request within one
// step — spec.md §4.4's "must return within one iteration" contract.
// Returns the accumulated Σ Δz vector across every accepted step and the
// count of accepted steps, so callers can derive the acceptance rate
// spec.md §4.3's trace record names.
func Sweep(termCtx context.Context, kernel Kernel, state *effect.Context, rng *rand.Rand, model *Model, steps int) ([]float64, int, error) {
	total := make([]float64, len(model.Effects))
	accepted := 0
	for s := 0; s < steps; s++ {
		select {
		case <-termCtx.Done():
			return total, accepted, termCtx.Err()
		default:
		}

		ok, dz, err := kernel.Step(state, rng, model)
		if err != nil {
			return total, accepted, err
		}
		if ok {
			accepted++
			for idx := range total {
				total[idx] += dz[idx]
			}
		}
	}

	return total, accepted, nil
}

func metropolisAccept(rng *rand.Rand, logScore float64) bool {
	if logScore >= 0 {
		return true
	}

	return rng.Float64() < math.Exp(logScore)
}

// randomDyad picks a uniformly random candidate dyad for the graph's
// shape: cross-mode for bipartite, any unordered/ordered distinct pair
// otherwise (ordered naturally falls out of picking i then j
// independently, which is what a directed model needs).
func randomDyad(g *core.Graph, rng *rand.Rand) (int, int) {
	n := g.N()
	if g.Bipartite() {
		nA := g.ModeACount()

		return rng.Intn(nA), nA + rng.Intn(n-nA)
	}
	for {
		i, j := rng.Intn(n), rng.Intn(n)
		if i != j {
			return i, j
		}
	}
}

func randomNonEdge(g *core.Graph, rng *rand.Rand) (int, int) {
	for {
		i, j := randomDyad(g, rng)
		if !g.HasEdge(i, j) {
			return i, j
		}
	}
}

func totalPossibleDyads(g *core.Graph) int {
	n := g.N()
	switch {
	case g.Bipartite():
		nA := g.ModeACount()

		return nA * (n - nA)
	case g.Directed():
		return n * (n - 1)
	default:
		return n * (n - 1) / 2
	}
}

func toggleAndSync(ctx *effect.Context, i, j int) error {
	delta, err := ctx.G.ToggleEdge(i, j)
	if err != nil {
		return err
	}

	return ctx.Cache.UpdateAfterEdgeChange(ctx.G, i, j, delta)
}
