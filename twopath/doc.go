// Package twopath maintains, for a core.Graph, the incrementally-updated
// counts of length-two paths between node pairs that the change-statistic
// library depends on to stay sub-linear in N.
//
// Six logical mappings are modeled behind one Cache interface and one
// Variant-tagged accessor, realizing SPEC_FULL.md's "function pointer
// tables / compile-time switches become a runtime interface" redesign:
//
//	Mix  (directed)   mix[i,j]  = |{k: i->k->j}|            (ordered)
//	In   (directed)   in[i,j]   = |{k: k->i and k->j}|      (symmetric)
//	Out  (directed)   out[i,j]  = |{k: i->k and j->k}|      (symmetric)
//	Two  (undirected) two[i,j]  = |{k: i-k-j}|              (symmetric)
//	A2P  (bipartite)  A2P[a,a'] = |{b in mode B: a-b, a'-b}| (symmetric, mode A)
//	B2P  (bipartite)  B2P[b,b'] = |{a in mode A: a-b, a'-b}| (symmetric, mode B)
//
// Counts are kept for pairs of distinct nodes only; Get on a diagonal pair
// (i,i) returns 0.
//
// One Cache implementation runs over two storage strategies: denseStorage
// (flat slices, O(N^2) memory, O(1) access) and hashStorage (maps with
// absent-means-zero semantics, sub-quadratic memory). Kind selects between
// them at construction time; callers depend only on the Cache interface.
//
// UpdateAfterEdgeChange visits only the neighbours of the toggled dyad's
// endpoints, never the whole graph — the reason the sampler's inner loop
// scales to millions of toggles.
package twopath
