// Package effect implements the change-statistic library: one pure
// function Δzₖ(G,i,j) per named model term, plus a direct (brute-force)
// recomputation of zₖ(G) used only to verify the incremental form in
// tests. Every effect is obtained from a Registry by name — the sampler
// and estimator only ever see *Effect values and call their DeltaZ and
// StatDirect methods.
//
// Effects that cannot be expressed sub-linearly against the two-path
// caches are marked Slow() and excluded from production sweeps; they
// exist for cross-checking the closed-form effects against a
// straightforward recomputation.
package effect
