// Package chain is the ownership aggregate SPEC_FULL.md §9 calls for: one
// struct exclusively owning a graph, its two-path cache, its attribute
// store, and its RNG, so no cyclic graph↔cache↔attribute references ever
// need to exist. The sampler and estimator only ever see the narrow
// *effect.Context view a Chain hands out — never the Chain itself.
package chain
