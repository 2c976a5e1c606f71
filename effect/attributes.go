package effect

import (
	"math"

	"github.com/networkee/ergmee/attr"
)

// Attribute-keyed effects all follow the same shape: a per-dyad
// contribution function of the bound attribute's values at i and j, added
// or removed with the toggle's sign. A dyad touching an NA value
// contributes zero — this package does not impute missing covariates.
func registerAttributeEffects(r *Registry) {
	r.register("Sender", factory{needsAttr: true, build: buildAttrPair(senderValue)})
	r.register("Receiver", factory{needsAttr: true, build: buildAttrPair(receiverValue)})
	r.register("Interaction", factory{needsAttr: true, build: buildAttrPair(interactionValue)})
	r.register("Matching", factory{needsAttr: true, build: buildAttrPair(matchingValue)})
	r.register("Mismatching", factory{needsAttr: true, build: buildAttrPair(mismatchingValue)})
	r.register("Diff", factory{needsAttr: true, build: buildAttrPair(diffValue)})
	r.register("JaccardSimilarity", factory{needsAttr: true, build: buildAttrPair(jaccardValue)})
	r.register("MatchingReciprocity", factory{needsAttr: true, shapeCheck: directedOnly, build: buildReciprocityGated(matchingValue)})
	r.register("DiffReciprocity", factory{needsAttr: true, shapeCheck: directedOnly, build: buildReciprocityGated(diffValue)})
}

type attrPairFunc func(a *attr.Attribute, i, j int) (float64, bool)

func buildAttrPair(value attrPairFunc) func(float64, string) (*Effect, error) {
	return func(lambda float64, attrName string) (*Effect, error) {
		e := &Effect{AttrName: attrName}
		e.deltaFn = func(_ *Effect, ctx *Context, i, j int) float64 {
			a, err := ctx.Attrs.Get(attrName)
			if err != nil {
				return 0
			}
			v, ok := value(a, i, j)
			if !ok {
				return 0
			}

			return v * float64(signOf(ctx.G, i, j))
		}
		e.directFn = func(_ *Effect, ctx *Context) float64 {
			a, err := ctx.Attrs.Get(attrName)
			if err != nil {
				return 0
			}
			var sum float64
			for _, edge := range ctx.G.EdgeList() {
				if v, ok := value(a, edge.From, edge.To); ok {
					sum += v
				}
			}

			return sum
		}

		return e, nil
	}
}

// buildReciprocityGated contributes value(i,j) only for dyads whose
// reverse arc already exists, mirroring plain Reciprocity but weighted by
// an attribute relation instead of counting 1.
func buildReciprocityGated(value attrPairFunc) func(float64, string) (*Effect, error) {
	return func(lambda float64, attrName string) (*Effect, error) {
		e := &Effect{AttrName: attrName}
		e.deltaFn = func(_ *Effect, ctx *Context, i, j int) float64 {
			if !ctx.G.HasEdge(j, i) {
				return 0
			}
			a, err := ctx.Attrs.Get(attrName)
			if err != nil {
				return 0
			}
			v, ok := value(a, i, j)
			if !ok {
				return 0
			}

			return v * float64(signOf(ctx.G, i, j))
		}
		e.directFn = func(_ *Effect, ctx *Context) float64 {
			a, err := ctx.Attrs.Get(attrName)
			if err != nil {
				return 0
			}
			var sum float64
			for _, edge := range ctx.G.EdgeList() {
				if !ctx.G.HasEdge(edge.To, edge.From) {
					continue
				}
				if v, ok := value(a, edge.From, edge.To); ok {
					sum += v
				}
			}

			return sum / 2

		}

		return e, nil
	}
}

func senderValue(a *attr.Attribute, i, j int) (float64, bool) {
	if a.IsNA(i) {
		return 0, false
	}

	return float64(a.Binary(i)), true
}

func receiverValue(a *attr.Attribute, i, j int) (float64, bool) {
	if a.IsNA(j) {
		return 0, false
	}

	return float64(a.Binary(j)), true
}

func interactionValue(a *attr.Attribute, i, j int) (float64, bool) {
	if a.IsNA(i) || a.IsNA(j) {
		return 0, false
	}
	if a.Binary(i) == 1 && a.Binary(j) == 1 {
		return 1, true
	}

	return 0, true
}

func matchingValue(a *attr.Attribute, i, j int) (float64, bool) {
	if a.IsNA(i) || a.IsNA(j) {
		return 0, false
	}
	if a.Categorical(i) == a.Categorical(j) {
		return 1, true
	}

	return 0, true
}

func mismatchingValue(a *attr.Attribute, i, j int) (float64, bool) {
	if a.IsNA(i) || a.IsNA(j) {
		return 0, false
	}
	if a.Categorical(i) != a.Categorical(j) {
		return 1, true
	}

	return 0, true
}

func diffValue(a *attr.Attribute, i, j int) (float64, bool) {
	if a.IsNA(i) || a.IsNA(j) {
		return 0, false
	}

	return math.Abs(a.Continuous(i) - a.Continuous(j)), true
}

func jaccardValue(a *attr.Attribute, i, j int) (float64, bool) {
	if a.IsNA(i) || a.IsNA(j) {
		return 0, false
	}

	return jaccard(a.Set(i), a.Set(j)), true
}

// jaccard computes |A∩B|/|A∪B| over two sorted, deduplicated slices.
func jaccard(a, b []int) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	var inter, union int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			inter++
			union++
			i++
			j++
		case a[i] < b[j]:
			union++
			i++
		default:
			union++
			j++
		}
	}
	union += (len(a) - i) + (len(b) - j)

	return float64(inter) / float64(union)
}
