// Package core defines the Graph type at the heart of ergmee: a mutable
// directed, undirected, or bipartite graph over a fixed node set 0..N-1,
// with O(1) amortized edge insertion/deletion and O(1) neighbour-set
// membership.
//
// Unlike a general-purpose graph library, Graph's vertex set is fixed at
// construction (an ERGM chain never adds or removes nodes, only edges), so
// nodes are addressed by plain int rather than string identifiers, and
// adjacency is stored as one map per node rather than a nested string-keyed
// map.
//
// Graph carries no internal locking: a single sampler goroutine holds
// exclusive write access to a Graph for the duration of a sweep, and
// change-statistic functions only ever read it. Callers needing concurrent
// access must synchronize externally.
//
// Configuration (GraphOption):
//
//	WithDirected()     — edges are one-way; Out/In neighbour sets differ.
//	WithBipartite(nA)  — first nA nodes are mode A, the rest mode B; edges
//	                     are only legal across modes.
//	WithLoops()        — permit self-loops (from == to).
//
// Core methods:
//
//	HasEdge(i,j) bool
//	InsertEdge(i,j) error
//	RemoveEdge(i,j) error
//	OutNeighbours(i) []int   // sorted, stable
//	InNeighbours(i) []int    // sorted, stable; equals OutNeighbours for undirected graphs
//	Degree/OutDegree/InDegree(i) int
//	EdgeList() []Edge        // sorted by (From,To)
//	Clone() *Graph
package core
