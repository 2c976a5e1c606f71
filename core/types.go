// File: types.go
// Role: Graph shape (node count, directed/bipartite flags), GraphOption
// functional options, and the NewGraph constructor.
package core

// Mode identifies which partition class a node belongs to in a bipartite
// graph. For one-mode graphs every node reports ModeA.
type Mode uint8

const (
	ModeA Mode = iota
	ModeB
)

// GraphOption configures a Graph before construction. Following the
// teacher's functional-option idiom, options are applied in order and later
// options override earlier ones.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (i -> j distinct from j -> i).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithBipartite declares the graph two-mode: nodes [0,nA) are mode A, nodes
// [nA,N) are mode B, and every edge must cross modes.
func WithBipartite(nA int) GraphOption {
	return func(g *Graph) {
		g.bipartite = true
		g.modeACount = nA
	}
}

// WithLoops permits self-loops (i == j). Ignored for bipartite graphs, since
// a cross-mode edge can never be a self-loop.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a mutable graph over the fixed node set [0,N). It supports
// directed, undirected, and bipartite shapes, and exposes the O(1)
// operations the two-path cache and sampler loop depend on.
//
// Graph holds no mutex: see doc.go for the single-writer ownership
// contract.
type Graph struct {
	n          int
	directed   bool
	bipartite  bool
	modeACount int
	allowLoops bool

	// out[i] holds successors of i (for undirected graphs, all neighbours).
	// in[i] holds predecessors of i (for undirected graphs, identical to out[i]).
	out []map[int]struct{}
	in  []map[int]struct{}

	edgeCount int
}

// NewGraph allocates an edge-less Graph over n nodes with the given
// options applied. Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	g := &Graph{
		n:   n,
		out: make([]map[int]struct{}, n),
		in:  make([]map[int]struct{}, n),
	}
	for i := 0; i < n; i++ {
		g.out[i] = make(map[int]struct{})
		g.in[i] = make(map[int]struct{})
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// N returns the node count.
func (g *Graph) N() int { return g.n }

// Directed reports whether the graph's edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Bipartite reports whether the graph is two-mode.
func (g *Graph) Bipartite() bool { return g.bipartite }

// ModeACount returns the number of mode-A nodes (0 for one-mode graphs).
func (g *Graph) ModeACount() int { return g.modeACount }

// AllowLoops reports whether self-loops are permitted.
func (g *Graph) AllowLoops() bool { return g.allowLoops }

// EdgeCount returns the total number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// ModeOf reports whether node i belongs to mode A or mode B. For one-mode
// graphs every node is ModeA.
func (g *Graph) ModeOf(i int) Mode {
	if g.bipartite && i >= g.modeACount {
		return ModeB
	}

	return ModeA
}

func (g *Graph) validIndex(i int) bool {
	return i >= 0 && i < g.n
}
