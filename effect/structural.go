package effect

func registerStructural(r *Registry) {
	r.register("Arc", factory{
		build: func(lambda float64, attrName string) (*Effect, error) {
			return &Effect{
				Name:    "Arc",
				deltaFn: deltaArc,
				directFn: func(e *Effect, ctx *Context) float64 {
					return float64(len(ctx.G.EdgeList()))
				},
			}, nil
		},
	})

	r.register("Reciprocity", factory{
		shapeCheck: directedOnly,
		build: func(lambda float64, attrName string) (*Effect, error) {
			return &Effect{
				Name:     "Reciprocity",
				deltaFn:  deltaReciprocity,
				directFn: directReciprocity,
			}, nil
		},
	})
}

// deltaArc: toggling (i,j) changes the arc count by exactly ±1.
func deltaArc(e *Effect, ctx *Context, i, j int) float64 {
	if ctx.G.HasEdge(i, j) {
		return -1
	}

	return 1
}

// deltaReciprocity: toggling (i,j) only changes the reciprocated-dyad
// count when the reverse arc (j,i) is already present.
func deltaReciprocity(e *Effect, ctx *Context, i, j int) float64 {
	if !ctx.G.HasEdge(j, i) {
		return 0
	}
	if ctx.G.HasEdge(i, j) {
		return -1
	}

	return 1
}

func directReciprocity(e *Effect, ctx *Context) float64 {
	var count float64
	for _, edge := range ctx.G.EdgeList() {
		if ctx.G.HasEdge(edge.To, edge.From) {
			count++
		}
	}

	return count / 2 // each reciprocated pair counted once per direction
}
