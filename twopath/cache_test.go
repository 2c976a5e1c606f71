package twopath_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/twopath"
)

// slowTwo recomputes two[i,j] directly from the graph, ignoring any cache.
func slowTwo(g *core.Graph, i, j int) uint64 {
	var count uint64
	for _, k := range g.OutNeighbours(i) {
		if k == j {
			continue
		}
		if g.HasEdge(j, k) {
			count++
		}
	}

	return count
}

func slowMix(g *core.Graph, i, j int) uint64 {
	var count uint64
	for _, k := range g.OutNeighbours(i) {
		if g.HasEdge(k, j) {
			count++
		}
	}

	return count
}

func slowIn(g *core.Graph, i, j int) uint64 {
	var count uint64
	for _, k := range g.InNeighbours(i) {
		if g.HasEdge(k, j) {
			count++
		}
	}

	return count
}

func slowOut(g *core.Graph, i, j int) uint64 {
	var count uint64
	for _, k := range g.OutNeighbours(i) {
		if g.HasEdge(j, k) {
			count++
		}
	}

	return count
}

func slowA2P(g *core.Graph, a, a2 int) uint64 {
	var count uint64
	for _, b := range g.OutNeighbours(a) {
		if g.HasEdge(a2, b) {
			count++
		}
	}

	return count
}

func slowB2P(g *core.Graph, b, b2 int) uint64 {
	var count uint64
	for _, a := range g.OutNeighbours(b) {
		if g.HasEdge(a, b2) {
			count++
		}
	}

	return count
}

// TestCache_DirectedInvariant checks property 1 (cache == recomputed count)
// across random insertion/deletion sequences on a directed graph, for both
// storage Kinds.
func TestCache_DirectedInvariant(t *testing.T) {
	for _, kind := range []twopath.Kind{twopath.KindDense, twopath.KindHash} {
		kind := kind
		rapid.Check(t, func(rt *rapid.T) {
			n := rapid.IntRange(2, 8).Draw(rt, "n")
			g := core.NewGraph(n, core.WithDirected())
			c := twopath.New(kind, g)
			steps := rapid.IntRange(0, 40).Draw(rt, "steps")
			for s := 0; s < steps; s++ {
				i := rapid.IntRange(0, n-1).Draw(rt, "i")
				j := rapid.IntRange(0, n-1).Draw(rt, "j")
				if i == j {
					continue
				}
				delta, err := g.ToggleEdge(i, j)
				if err != nil {
					continue
				}
				if err := c.UpdateAfterEdgeChange(g, i, j, delta); err != nil {
					rt.Fatalf("update: %v", err)
				}
			}
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					if got, want := c.Get(twopath.Mix, a, b), slowMix(g, a, b); got != want {
						rt.Fatalf("Mix(%d,%d) = %d; want %d", a, b, got, want)
					}
					if got, want := c.Get(twopath.In, a, b), slowIn(g, a, b); got != want {
						rt.Fatalf("In(%d,%d) = %d; want %d", a, b, got, want)
					}
					if got, want := c.Get(twopath.Out, a, b), slowOut(g, a, b); got != want {
						rt.Fatalf("Out(%d,%d) = %d; want %d", a, b, got, want)
					}
				}
			}
		})
	}
}

// TestCache_UndirectedInvariant mirrors the directed check for the
// undirected Two[] variant.
func TestCache_UndirectedInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 8).Draw(rt, "n")
		g := core.NewGraph(n)
		c := twopath.New(twopath.KindHash, g)
		steps := rapid.IntRange(0, 40).Draw(rt, "steps")
		for s := 0; s < steps; s++ {
			i := rapid.IntRange(0, n-1).Draw(rt, "i")
			j := rapid.IntRange(0, n-1).Draw(rt, "j")
			if i == j {
				continue
			}
			delta, err := g.ToggleEdge(i, j)
			if err != nil {
				continue
			}
			if err := c.UpdateAfterEdgeChange(g, i, j, delta); err != nil {
				rt.Fatalf("update: %v", err)
			}
		}
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if got, want := c.Get(twopath.Two, a, b), slowTwo(g, a, b); got != want {
					rt.Fatalf("Two(%d,%d) = %d; want %d", a, b, got, want)
				}
			}
		}
	})
}

// TestCache_BipartiteInvariant covers A2P/B2P consistency against a
// direct recount of each pair's shared neighbours.
func TestCache_BipartiteInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		nA := rapid.IntRange(1, 4).Draw(rt, "nA")
		nB := rapid.IntRange(1, 4).Draw(rt, "nB")
		n := nA + nB
		g := core.NewGraph(n, core.WithBipartite(nA))
		c := twopath.New(twopath.KindDense, g)
		steps := rapid.IntRange(0, 30).Draw(rt, "steps")
		for s := 0; s < steps; s++ {
			a := rapid.IntRange(0, nA-1).Draw(rt, "a")
			b := rapid.IntRange(nA, n-1).Draw(rt, "b")
			delta, err := g.ToggleEdge(a, b)
			if err != nil {
				continue
			}
			if err := c.UpdateAfterEdgeChange(g, a, b, delta); err != nil {
				rt.Fatalf("update: %v", err)
			}
		}
		for a := 0; a < nA; a++ {
			for a2 := 0; a2 < nA; a2++ {
				if got, want := c.Get(twopath.A2P, a, a2), slowA2P(g, a, a2); got != want {
					rt.Fatalf("A2P(%d,%d) = %d; want %d", a, a2, got, want)
				}
			}
		}
		for b := nA; b < n; b++ {
			for b2 := nA; b2 < n; b2++ {
				if got, want := c.Get(twopath.B2P, b, b2), slowB2P(g, b, b2); got != want {
					rt.Fatalf("B2P(%d,%d) = %d; want %d", b, b2, got, want)
				}
			}
		}
	})
}

// TestCache_EmptyRoundTrip covers spec.md §8 property 2: any sequence of
// insertions and deletions returning to the empty graph leaves the cache
// empty (all counters zero).
func TestCache_EmptyRoundTrip(t *testing.T) {
	g := core.NewGraph(5, core.WithDirected())
	c := twopath.New(twopath.KindHash, g)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {3, 4}}
	for _, e := range edges {
		delta, _ := g.ToggleEdge(e[0], e[1])
		_ = c.UpdateAfterEdgeChange(g, e[0], e[1], delta)
	}
	for _, e := range edges {
		delta, _ := g.ToggleEdge(e[0], e[1])
		_ = c.UpdateAfterEdgeChange(g, e[0], e[1], delta)
	}
	for a := 0; a < 5; a++ {
		for b := 0; b < 5; b++ {
			if c.Get(twopath.Mix, a, b) != 0 || c.Get(twopath.In, a, b) != 0 || c.Get(twopath.Out, a, b) != 0 {
				t.Fatalf("expected empty cache after round trip at (%d,%d)", a, b)
			}
		}
	}
}

// TestS1_BipartiteFourCycleSetup reproduces the graph shape of scenario S1
// and checks the A2P/B2P cache values it depends on.
func TestS1_BipartiteFourCycleSetup(t *testing.T) {
	g := core.NewGraph(4, core.WithBipartite(2))
	for _, e := range [][2]int{{0, 2}, {0, 3}, {1, 2}, {1, 3}} {
		if err := g.InsertEdge(e[0], e[1]); err != nil {
			t.Fatalf("insert %v: %v", e, err)
		}
	}
	c := twopath.New(twopath.KindDense, g)
	if got := c.Get(twopath.A2P, 0, 1); got != 2 {
		t.Errorf("A2P(0,1) = %d; want 2 (both share 2 and 3)", got)
	}
	if got := c.Get(twopath.B2P, 2, 3); got != 2 {
		t.Errorf("B2P(2,3) = %d; want 2 (both share 0 and 1)", got)
	}
}
