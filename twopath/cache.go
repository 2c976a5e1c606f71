// File: cache.go
// Role: Variant/Kind definitions, the Cache interface, and the shared
// incremental-update algorithm that runs over both denseStorage and
// hashStorage via the unexported storage interface.
package twopath

import "github.com/networkee/ergmee/core"

// Variant names one of the six two-path mappings of doc.go.
type Variant uint8

const (
	Mix Variant = iota // directed, ordered
	In                 // directed, symmetric
	Out                // directed, symmetric
	Two                // undirected one-mode, symmetric
	A2P                // bipartite mode-A pairs, symmetric
	B2P                // bipartite mode-B pairs, symmetric
)

// Kind selects a Cache's storage strategy.
type Kind uint8

const (
	// KindDense trades memory for guaranteed O(1) access via flat slices.
	KindDense Kind = iota
	// KindHash trades worst-case access time for sub-quadratic memory on
	// sparse graphs; absent entries are implicitly zero.
	KindHash
)

// Cache is the polymorphic two-path cache contract. Implementations must
// keep every variant's counts consistent with the bound Graph after every
// UpdateAfterEdgeChange call.
type Cache interface {
	// Get returns the current count for the given variant and node pair.
	// For Mix the pair is ordered (i "precedes" j); for every other
	// variant the result is identical regardless of argument order.
	Get(v Variant, i, j int) uint64

	// UpdateAfterEdgeChange brings the cache into consistency with g after
	// the edge (i,j) was toggled by delta (+1 = inserted, -1 = removed).
	// g must already reflect the toggle. Complexity: O(deg(i) + deg(j)).
	UpdateAfterEdgeChange(g *core.Graph, i, j int, delta int) error

	// Clear resets every counter to zero.
	Clear()
}

// storage is the minimal counter abstraction denseStorage and hashStorage
// each implement; New wires it to the shared update algorithm below.
type storage interface {
	get(v Variant, i, j int) uint64
	add(v Variant, i, j int, delta int64)
	clear()
}

// New allocates a Cache of the requested Kind, sized for g's shape, and
// initializes it by scanning g's current edge set once. Complexity:
// O(N^2) for KindDense, O(V+E) expected for KindHash.
func New(kind Kind, g *core.Graph) Cache {
	var st storage
	switch kind {
	case KindHash:
		st = newHashStorage()
	default:
		st = newDenseStorage(g)
	}
	c := &cache{st: st}
	c.rebuild(g)

	return c
}

// cache implements Cache atop a pluggable storage backend, and holds the
// shared incremental-update algorithm (identical for dense and hash
// storage — only the counter representation differs).
type cache struct {
	st storage
}

func (c *cache) Get(v Variant, i, j int) uint64 { return c.st.get(v, i, j) }

func (c *cache) Clear() { c.st.clear() }

// rebuild populates the cache from scratch by replaying every edge of g as
// an insertion. Used only at construction and by DebugCache's slow path.
func (c *cache) rebuild(g *core.Graph) {
	c.st.clear()
	if g.Bipartite() {
		for _, e := range g.EdgeList() {
			a, b := e.From, e.To
			if g.ModeOf(a) == core.ModeB {
				a, b = b, a
			}
			c.applyBipartite(g, a, b, +1)
		}

		return
	}
	if g.Directed() {
		for _, e := range g.EdgeList() {
			c.applyDirected(g, e.From, e.To, +1)
		}

		return
	}
	for _, e := range g.EdgeList() {
		c.applyUndirected(g, e.From, e.To, +1)
	}
}

// UpdateAfterEdgeChange dispatches to the shape-specific incremental
// algorithm. g must already reflect the (i,j) toggle (see doc.go).
func (c *cache) UpdateAfterEdgeChange(g *core.Graph, i, j int, delta int) error {
	switch {
	case g.Bipartite():
		a, b := i, j
		if g.ModeOf(a) == core.ModeB {
			a, b = b, a
		}
		c.applyBipartite(g, a, b, delta)
	case g.Directed():
		c.applyDirected(g, i, j, delta)
	default:
		c.applyUndirected(g, i, j, delta)
	}

	return nil
}

// applyDirected implements the mix/in/out incremental rules derived from
// the definitions in doc.go: toggling i->j changes mix[k,j] for k->i,
// mix[i,k] for j->k, in[a,j] for i->a and out[i,b] for b->j (this departs
// from spec.md §4.2's literal prose for In/Out, which does not satisfy the
// cache-consistency invariant of spec.md §8 as worded).
func (c *cache) applyDirected(g *core.Graph, i, j int, delta int) {
	d := int64(delta)
	for _, k := range g.InNeighbours(i) {
		if k != j {
			c.st.add(Mix, k, j, d)
		}
	}
	for _, k := range g.OutNeighbours(j) {
		if k != i {
			c.st.add(Mix, i, k, d)
		}
	}
	for _, a := range g.OutNeighbours(i) {
		if a != j {
			c.st.add(In, a, j, d)
		}
	}
	for _, b := range g.InNeighbours(j) {
		if b != i {
			c.st.add(Out, i, b, d)
		}
	}
}

// applyUndirected implements the two[] incremental rule for one-mode
// undirected graphs.
func (c *cache) applyUndirected(g *core.Graph, i, j int, delta int) {
	d := int64(delta)
	for _, m := range g.OutNeighbours(i) {
		if m != j {
			c.st.add(Two, j, m, d)
		}
	}
	for _, m := range g.OutNeighbours(j) {
		if m != i {
			c.st.add(Two, i, m, d)
		}
	}
}

// applyBipartite implements the A2P/B2P incremental rule of spec.md §4.2.
// a must be a mode-A node, b a mode-B node.
func (c *cache) applyBipartite(g *core.Graph, a, b int, delta int) {
	d := int64(delta)
	for _, a2 := range g.OutNeighbours(b) {
		if a2 != a {
			c.st.add(A2P, a, a2, d)
		}
	}
	for _, b2 := range g.OutNeighbours(a) {
		if b2 != b {
			c.st.add(B2P, b, b2, d)
		}
	}
}
