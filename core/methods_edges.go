// File: methods_edges.go
// Role: Edge lifecycle — HasEdge/InsertEdge/RemoveEdge — and degree queries.
// Determinism: no ordering is implied by these O(1) operations; iteration
// order guarantees live in methods_neighbours.go.
package core

import "fmt"

// HasEdge reports whether i->j (or, for undirected graphs, the unordered
// pair {i,j}) is currently present. Complexity: O(1) expected.
func (g *Graph) HasEdge(i, j int) bool {
	if !g.validIndex(i) || !g.validIndex(j) {
		return false
	}
	_, ok := g.out[i][j]

	return ok
}

// InsertEdge adds the edge i-j (or arc i->j for directed graphs).
//
// Preconditions, checked in order:
//  1. i,j in [0,N) — else ErrInvalidNodeIndex.
//  2. i != j, unless AllowLoops() — else ErrSelfLoop.
//  3. for bipartite graphs, ModeOf(i) != ModeOf(j) — else ErrCrossModeRequired.
//  4. !HasEdge(i,j) — else ErrEdgeExists.
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(i, j int) error {
	if !g.validIndex(i) || !g.validIndex(j) {
		return fmt.Errorf("%w: (%d,%d) vs N=%d", ErrInvalidNodeIndex, i, j, g.n)
	}
	if i == j && !g.allowLoops {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, i)
	}
	if g.bipartite && g.ModeOf(i) == g.ModeOf(j) {
		return fmt.Errorf("%w: (%d,%d)", ErrCrossModeRequired, i, j)
	}
	if g.HasEdge(i, j) {
		return fmt.Errorf("%w: (%d,%d)", ErrEdgeExists, i, j)
	}

	g.out[i][j] = struct{}{}
	g.in[j][i] = struct{}{}
	if !g.directed && i != j {
		g.out[j][i] = struct{}{}
		g.in[i][j] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge i-j (or arc i->j). Requires HasEdge(i,j),
// else ErrEdgeNotFound. Complexity: O(1) amortized.
func (g *Graph) RemoveEdge(i, j int) error {
	if !g.HasEdge(i, j) {
		return fmt.Errorf("%w: (%d,%d)", ErrEdgeNotFound, i, j)
	}

	delete(g.out[i], j)
	delete(g.in[j], i)
	if !g.directed && i != j {
		delete(g.out[j], i)
		delete(g.in[i], j)
	}
	g.edgeCount--

	return nil
}

// ToggleEdge flips the presence of i-j: inserts it if absent, removes it if
// present. Returns the direction of the toggle (+1 = inserted, -1 =
// removed) so callers can feed it straight to a two-path cache update.
func (g *Graph) ToggleEdge(i, j int) (delta int, err error) {
	if g.HasEdge(i, j) {
		return -1, g.RemoveEdge(i, j)
	}

	return +1, g.InsertEdge(i, j)
}

// OutDegree returns |OutNeighbours(i)|. Complexity: O(1).
func (g *Graph) OutDegree(i int) int {
	if !g.validIndex(i) {
		return 0
	}

	return len(g.out[i])
}

// InDegree returns |InNeighbours(i)|. Complexity: O(1).
func (g *Graph) InDegree(i int) int {
	if !g.validIndex(i) {
		return 0
	}

	return len(g.in[i])
}

// Degree returns OutDegree(i) for undirected graphs (where OutDegree ==
// InDegree) and is a convenience alias used throughout the effect library.
func (g *Graph) Degree(i int) int {
	return g.OutDegree(i)
}
