package effect

import "github.com/networkee/ergmee/core"

func registerStars(r *Registry) {
	r.register("AltInStars", factory{
		needsLambda: true,
		build:       buildStar(altInStarDelta, directAltInStars, r.maxCachedPower),
	})
	r.register("AltOutStars", factory{
		needsLambda: true,
		build:       buildStar(altOutStarDelta, directAltOutStars, r.maxCachedPower),
	})
	r.register("AltStars", factory{
		needsLambda: true,
		build:       buildStar(altStarsDelta, directAltStars, r.maxCachedPower),
	})
}

func buildStar(delta func(e *Effect, ctx *Context, i, j int) float64, direct func(e *Effect, ctx *Context) float64, maxCachedPower int) func(float64, string) (*Effect, error) {
	return func(lambda float64, attrName string) (*Effect, error) {
		return &Effect{Lambda: lambda, decay: newDecayTable(lambda, maxCachedPower), deltaFn: delta, directFn: direct}, nil
	}
}

// altInStarDelta centers the alternating-k-star statistic on the
// in-degree of the toggle's head node j; altOutStarDelta centers it on the
// out-degree of the tail node i. On undirected graphs InDegree and
// OutDegree coincide, but the two still read different endpoints, so each
// counts only one endpoint's star term.
func altInStarDelta(e *Effect, ctx *Context, i, j int) float64 {
	before := int64(ctx.G.InDegree(j))

	return starShift(e.decay, e.Lambda, before, signOf(ctx.G, i, j))
}

func altOutStarDelta(e *Effect, ctx *Context, i, j int) float64 {
	before := int64(ctx.G.OutDegree(i))

	return starShift(e.decay, e.Lambda, before, signOf(ctx.G, i, j))
}

// altStarsDelta is the undirected/bipartite form: toggling an edge changes
// both endpoints' degree simultaneously, so both contribute a term.
func altStarsDelta(e *Effect, ctx *Context, i, j int) float64 {
	sign := signOf(ctx.G, i, j)
	di := int64(ctx.G.Degree(i))
	dj := int64(ctx.G.Degree(j))

	return starShift(e.decay, e.Lambda, di, sign) + starShift(e.decay, e.Lambda, dj, sign)
}

func starShift(decay *decayTable, lambda float64, before int64, sign int64) float64 {
	after := before + sign

	return lambda * (decay.pow(before) - decay.pow(after))
}

func signOf(g *core.Graph, i, j int) int64 {
	if g.HasEdge(i, j) {
		return -1
	}

	return 1
}

func directAltInStars(e *Effect, ctx *Context) float64 {
	var sum float64
	for v := 0; v < ctx.G.N(); v++ {
		sum += e.Lambda * (1 - e.decay.pow(int64(ctx.G.InDegree(v))))
	}

	return sum
}

func directAltOutStars(e *Effect, ctx *Context) float64 {
	var sum float64
	for v := 0; v < ctx.G.N(); v++ {
		sum += e.Lambda * (1 - e.decay.pow(int64(ctx.G.OutDegree(v))))
	}

	return sum
}

func directAltStars(e *Effect, ctx *Context) float64 {
	var sum float64
	for v := 0; v < ctx.G.N(); v++ {
		sum += e.Lambda * (1 - e.decay.pow(int64(ctx.G.Degree(v))))
	}

	return sum
}
