package effect

import "github.com/networkee/ergmee/core"

// pair is an ordered or canonical node-index pair, matched to whatever
// indexing convention the twopath.Variant it is looked up under expects.
type pair struct{ a, b int }

// The pairXxx helpers enumerate exactly the (variant, node-pair) entries
// that twopath.Cache.UpdateAfterEdgeChange touches for a toggle of (i,j) —
// see twopath/cache.go. A decay- or binomial-weighted sum over these same
// entries, evaluated before the toggle, is the closed form of any
// statistic built on top of that cache variant: inserting (i,j) increases
// each entry's count by exactly one, so the global statistic's change is
// the sum of each entry's own before/after delta.

func mixForwardPairs(g *core.Graph, i, j int) []pair {
	var ps []pair
	for _, k := range g.InNeighbours(i) {
		if k != j {
			ps = append(ps, pair{k, j})
		}
	}
	for _, k := range g.OutNeighbours(j) {
		if k != i {
			ps = append(ps, pair{i, k})
		}
	}

	return ps
}

// mixReversePairs is the mirror-image enumeration of mixForwardPairs,
// pairing on the opposite orientation (i's successors and j's
// predecessors). Used to give cyclic triangles a distinct closed form from
// transitive triangles while still resting on the Mix cache.
func mixReversePairs(g *core.Graph, i, j int) []pair {
	var ps []pair
	for _, k := range g.OutNeighbours(i) {
		if k != j {
			ps = append(ps, pair{j, k})
		}
	}
	for _, k := range g.InNeighbours(j) {
		if k != i {
			ps = append(ps, pair{k, i})
		}
	}

	return ps
}

func inPairs(g *core.Graph, i, j int) []pair {
	var ps []pair
	for _, a := range g.OutNeighbours(i) {
		if a != j {
			ps = append(ps, pair{a, j})
		}
	}

	return ps
}

func outPairs(g *core.Graph, i, j int) []pair {
	var ps []pair
	for _, b := range g.InNeighbours(j) {
		if b != i {
			ps = append(ps, pair{i, b})
		}
	}

	return ps
}

func twoPairs(g *core.Graph, i, j int) []pair {
	var ps []pair
	for _, m := range g.OutNeighbours(i) {
		if m != j {
			ps = append(ps, pair{j, m})
		}
	}
	for _, m := range g.OutNeighbours(j) {
		if m != i {
			ps = append(ps, pair{i, m})
		}
	}

	return ps
}

func a2pPairs(g *core.Graph, a, b int) []pair {
	var ps []pair
	for _, a2 := range g.OutNeighbours(b) {
		if a2 != a {
			ps = append(ps, pair{a, a2})
		}
	}

	return ps
}

func b2pPairs(g *core.Graph, a, b int) []pair {
	var ps []pair
	for _, b2 := range g.OutNeighbours(a) {
		if b2 != b {
			ps = append(ps, pair{b, b2})
		}
	}

	return ps
}
