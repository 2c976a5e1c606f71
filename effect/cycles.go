package effect

import (
	"math"

	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/twopath"
)

func registerCycles(r *Registry) {
	r.register("FourCycles", factory{shapeCheck: bipartiteOnly, build: buildFourCycles})
	r.register("BipartiteAltKCyclesA", factory{needsLambda: true, shapeCheck: bipartiteOnly, build: buildBipartiteAltKCycles(twopath.A2P, a2pPairs, r.maxCachedPower)})
	r.register("BipartiteAltKCyclesB", factory{needsLambda: true, shapeCheck: bipartiteOnly, build: buildBipartiteAltKCycles(twopath.B2P, b2pPairs, r.maxCachedPower)})
	r.register("PowerFourCycles", factory{needsLambda: true, shapeCheck: bipartiteOnly, build: buildPowerFourCycles})
	// BipartiteAltK4CyclesA's closed form conflates the A2P two-path count
	// with the four-cycle binomial count rather than keeping them
	// distinct, and is known not correct. Kept gated behind Experimental
	// so it can be used for regression comparison, never in a production
	// model.
	r.register("BipartiteAltK4CyclesA", factory{needsLambda: true, shapeCheck: bipartiteOnly, experimental: true, build: buildBipartiteAltK4CyclesA(r.maxCachedPower)})
}

func binomial2(n int64) float64 {
	f := float64(n)

	return f * (f - 1) / 2
}

func buildFourCycles(lambda float64, attrName string) (*Effect, error) {
	e := &Effect{}
	e.deltaFn = func(_ *Effect, ctx *Context, a, b int) float64 {
		sign := signOf(ctx.G, a, b)
		var sum float64
		for _, p := range a2pPairs(ctx.G, a, b) {
			c := int64(ctx.Cache.Get(twopath.A2P, p.a, p.b))
			sum += binomial2(c+sign) - binomial2(c)
		}

		return sum
	}
	e.directFn = func(_ *Effect, ctx *Context) float64 {
		nA := ctx.G.ModeACount()
		var sum float64
		for a := 0; a < nA; a++ {
			for a2 := a + 1; a2 < nA; a2++ {
				sum += binomial2(int64(ctx.Cache.Get(twopath.A2P, a, a2)))
			}
		}

		return sum
	}

	return e, nil
}

func buildBipartiteAltKCycles(variant twopath.Variant, pairsOf func(g *core.Graph, a, b int) []pair, maxCachedPower int) func(float64, string) (*Effect, error) {
	return func(lambda float64, attrName string) (*Effect, error) {
		e := &Effect{Lambda: lambda, decay: newDecayTable(lambda, maxCachedPower)}
		e.deltaFn = func(_ *Effect, ctx *Context, a, b int) float64 {
			sign := signOf(ctx.G, a, b)
			var sum float64
			for _, p := range pairsOf(ctx.G, a, b) {
				c := int64(ctx.Cache.Get(variant, p.a, p.b))
				sum += lambda * (e.decay.pow(c) - e.decay.pow(c+sign))
			}

			return sum
		}
		e.directFn = func(_ *Effect, ctx *Context) float64 {
			return slowWeightedPairSum(ctx, variant, lambda, e.decay, false)
		}

		return e, nil
	}
}

// buildPowerFourCycles: z = Σ_v f(v)^(1/λ) where f(v) is the total
// four-cycle count incident to v via its own mode's two-path variant.
// f(v) requires an O(N) sum over that node's two-path row, so this effect
// is marked Slow and excluded from production sweeps; it is intended for
// small models or verification runs only.
func buildPowerFourCycles(lambda float64, attrName string) (*Effect, error) {
	exp := 1 / lambda
	e := &Effect{Lambda: lambda, slow: true}
	e.deltaFn = func(_ *Effect, ctx *Context, a, b int) float64 {
		return slowPowerFourCyclesAfterToggle(ctx, a, b, exp) - slowPowerFourCyclesDirect(ctx, exp)
	}
	e.directFn = func(_ *Effect, ctx *Context) float64 {
		return slowPowerFourCyclesDirect(ctx, exp)
	}

	return e, nil
}

func nodeFourCycleCount(ctx *Context, variant twopath.Variant, v, lo, hi int) float64 {
	var total float64
	for u := lo; u < hi; u++ {
		if u == v {
			continue
		}
		total += binomial2(int64(ctx.Cache.Get(variant, v, u)))
	}

	return total
}

func slowPowerFourCyclesDirect(ctx *Context, exp float64) float64 {
	nA := ctx.G.ModeACount()
	n := ctx.G.N()
	var sum float64
	for a := 0; a < nA; a++ {
		sum += powOrZero(nodeFourCycleCount(ctx, twopath.A2P, a, 0, nA), exp)
	}
	for b := nA; b < n; b++ {
		sum += powOrZero(nodeFourCycleCount(ctx, twopath.B2P, b, nA, n), exp)
	}

	return sum
}

// slowPowerFourCyclesAfterToggle recomputes the statistic on a cloned,
// toggled graph — the only honest way to evaluate a non-incremental
// effect's Δz without mutating the caller's state.
func slowPowerFourCyclesAfterToggle(ctx *Context, a, b int, exp float64) float64 {
	g2 := ctx.G.Clone()
	_, _ = g2.ToggleEdge(a, b)
	c2 := twopath.New(twopath.KindDense, g2)
	ctx2 := &Context{G: g2, Cache: c2, Attrs: ctx.Attrs}

	return slowPowerFourCyclesDirect(ctx2, exp)
}

func powOrZero(base, exp float64) float64 {
	if base <= 0 {
		return 0
	}

	return math.Pow(base, exp)
}

// buildBipartiteAltK4CyclesA reproduces the source's flawed closed form:
// it applies decay weighting (meant for a two-path count) directly to the
// four-cycle binomial count instead of treating the two as distinct
// statistics. Exists only for experimental/regression use.
func buildBipartiteAltK4CyclesA(maxCachedPower int) func(float64, string) (*Effect, error) {
	return func(lambda float64, attrName string) (*Effect, error) {
		e := &Effect{Lambda: lambda, decay: newDecayTable(lambda, maxCachedPower), Experimental: true}
		e.deltaFn = func(_ *Effect, ctx *Context, a, b int) float64 {
			sign := signOf(ctx.G, a, b)
			var sum float64
			for _, p := range a2pPairs(ctx.G, a, b) {
				c := int64(ctx.Cache.Get(twopath.A2P, p.a, p.b))
				before := binomial2(c)
				after := binomial2(c + sign)
				sum += lambda * (e.decay.pow(int64(before)) - e.decay.pow(int64(after)))
			}

			return sum
		}
		e.directFn = func(_ *Effect, ctx *Context) float64 {
			nA := ctx.G.ModeACount()
			var sum float64
			for a := 0; a < nA; a++ {
				for a2 := a + 1; a2 < nA; a2++ {
					c := int64(ctx.Cache.Get(twopath.A2P, a, a2))
					sum += lambda * (1 - e.decay.pow(int64(binomial2(c))))
				}
			}

			return sum
		}

		return e, nil
	}
}
