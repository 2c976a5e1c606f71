package effect

import (
	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/twopath"
)

// AltKTwoPaths is the ungated analogue of AltTriangles: it sums the same
// decay-weighted two-path-count shift over every dyad affected by the
// toggle, without requiring the closing dyad to be an edge. Directed
// models use the Mix variant (the directed two-path count); one-mode
// models use Two.
func registerTwoPaths(r *Registry) {
	r.register("AltKTwoPaths", factory{
		needsLambda: true,
		build: func(lambda float64, attrName string) (*Effect, error) {
			e := &Effect{Lambda: lambda, decay: newDecayTable(lambda, r.maxCachedPower)}
			e.deltaFn = func(_ *Effect, ctx *Context, i, j int) float64 {
				variant, pairsOf := twoPathVariant(ctx.G)
				sign := signOf(ctx.G, i, j)
				var sum float64
				for _, p := range pairsOf(ctx.G, i, j) {
					c := int64(ctx.Cache.Get(variant, p.a, p.b))
					sum += lambda * (e.decay.pow(c) - e.decay.pow(c+sign))
				}

				return sum
			}
			e.directFn = func(_ *Effect, ctx *Context) float64 {
				variant, _ := twoPathVariant(ctx.G)

				return slowWeightedPairSum(ctx, variant, lambda, e.decay, false)
			}

			return e, nil
		},
	})
}

func twoPathVariant(g *core.Graph) (twopath.Variant, func(g *core.Graph, i, j int) []pair) {
	if g.Directed() {
		return twopath.Mix, mixForwardPairs
	}

	return twopath.Two, twoPairs
}
