package effect

import (
	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/twopath"
)

// slowWeightedPairSum recomputes Σ λ(1-(1-1/λ)^c) over every dyad in the
// graph (gated=false) or every edge (gated=true), where c is the current
// two-path count under variant; for A2P and B2P only dyads inside that
// variant's mode are visited. O(N^2) — used only to cross-check the
// closed-form DeltaZ implementations in tests, never on a sampler's hot
// path.
func slowWeightedPairSum(ctx *Context, variant twopath.Variant, lambda float64, decay *decayTable, gated bool) float64 {
	n := ctx.G.N()
	var sum float64
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				continue
			}
			if variant != twopath.Mix && b < a {
				continue // unordered variants: count each pair once
			}
			if variant == twopath.A2P && (ctx.G.ModeOf(a) != core.ModeA || ctx.G.ModeOf(b) != core.ModeA) {
				continue // A2P holds mode-A pairs only
			}
			if variant == twopath.B2P && (ctx.G.ModeOf(a) != core.ModeB || ctx.G.ModeOf(b) != core.ModeB) {
				continue // B2P holds mode-B pairs only
			}
			if gated && !ctx.G.HasEdge(a, b) && !ctx.G.HasEdge(b, a) {
				continue
			}
			c := int64(ctx.Cache.Get(variant, a, b))
			sum += lambda * (1 - decay.pow(c))
		}
	}

	return sum
}
