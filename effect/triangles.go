package effect

import (
	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/twopath"
)

// The four directed alternating-k-triangle types (T transitive, C cyclic,
// D, U) all share one shape: toggling (i,j) shifts the two-path count of
// a small set of OTHER dyads by exactly one; the pair is only a genuine
// triangle contribution while the closing dyad (a,b) is itself an edge.
// T and C both rest on the Mix variant but enumerate opposite
// orientations (forward vs reverse two-paths through i,j); D and U rest
// on In and Out respectively, the same pairs the two-path cache itself
// updates for those variants.

func registerTriangles(r *Registry) {
	r.register("AltKTrianglesT", factory{needsLambda: true, shapeCheck: directedOnly, build: buildTriangle(twopath.Mix, mixForwardPairs, r.maxCachedPower)})
	r.register("AltKTrianglesC", factory{needsLambda: true, shapeCheck: directedOnly, build: buildTriangle(twopath.Mix, mixReversePairs, r.maxCachedPower)})
	r.register("AltKTrianglesD", factory{needsLambda: true, shapeCheck: directedOnly, build: buildTriangle(twopath.In, inPairs, r.maxCachedPower)})
	r.register("AltKTrianglesU", factory{needsLambda: true, shapeCheck: directedOnly, build: buildTriangle(twopath.Out, outPairs, r.maxCachedPower)})
	r.register("AltTriangles", factory{needsLambda: true, build: buildTriangle(twopath.Two, twoPairs, r.maxCachedPower)})
}

func buildTriangle(variant twopath.Variant, pairsOf func(g *core.Graph, i, j int) []pair, maxCachedPower int) func(float64, string) (*Effect, error) {
	return func(lambda float64, attrName string) (*Effect, error) {
		e := &Effect{Lambda: lambda, decay: newDecayTable(lambda, maxCachedPower)}
		e.deltaFn = func(_ *Effect, ctx *Context, i, j int) float64 {
			sign := signOf(ctx.G, i, j)
			var sum float64
			for _, p := range pairsOf(ctx.G, i, j) {
				if !ctx.G.HasEdge(p.a, p.b) && !ctx.G.HasEdge(p.b, p.a) {
					continue // gated: only count pairs whose closing dyad is an edge
				}
				c := int64(ctx.Cache.Get(variant, p.a, p.b))
				sum += lambda * (e.decay.pow(c) - e.decay.pow(c+sign))
			}
			// The toggled dyad's own term enters or leaves the gated sum
			// whenever the toggle changes whether {i,j} is joined by an edge.
			if !ctx.G.Directed() || !ctx.G.HasEdge(j, i) {
				own := lambda * (1 - e.decay.pow(int64(ctx.Cache.Get(variant, i, j))))
				if variant == twopath.Mix {
					own += lambda * (1 - e.decay.pow(int64(ctx.Cache.Get(variant, j, i))))
				}
				sum += float64(sign) * own
			}

			return sum
		}
		e.directFn = func(_ *Effect, ctx *Context) float64 {
			return slowWeightedPairSum(ctx, variant, lambda, e.decay, true)
		}

		return e, nil
	}
}
