// File: debug.go
// Role: DebugCache, a Cache wrapper that recomputes every updated variant
// from scratch after each UpdateAfterEdgeChange and compares it against the
// incremental result, raising ErrCacheInconsistency on any mismatch. Opt-in
// only (expensive): wire it in when a config's debugAssertCache flag is set.
package twopath

import (
	"fmt"

	"github.com/networkee/ergmee/core"
)

// DebugCache wraps an inner Cache (typically the Kind the chain actually
// uses) with a full rebuild and an all-pairs comparison after every
// update. Intended for tests and debug builds, not production sweeps.
type DebugCache struct {
	inner Cache
	kind  Kind
}

// NewDebug wraps a freshly-built Cache of the given Kind in a DebugCache
// bound to g.
func NewDebug(kind Kind, g *core.Graph) *DebugCache {
	return &DebugCache{inner: New(kind, g), kind: kind}
}

func (d *DebugCache) Get(v Variant, i, j int) uint64 { return d.inner.Get(v, i, j) }

func (d *DebugCache) Clear() { d.inner.Clear() }

// UpdateAfterEdgeChange delegates to the inner cache, then recomputes the
// shadow cache from g (now reflecting the toggle) and asserts every variant
// relevant to g's shape agrees with the incremental result for every node
// pair (for A2P and B2P: every pair inside that variant's mode).
func (d *DebugCache) UpdateAfterEdgeChange(g *core.Graph, i, j int, delta int) error {
	if err := d.inner.UpdateAfterEdgeChange(g, i, j, delta); err != nil {
		return err
	}

	shadow := New(d.kind, g) // O(V+E) slow rebuild from the current graph
	variants := variantsFor(g)
	for _, v := range variants {
		lo, hi := 0, g.N()
		switch v {
		case A2P:
			hi = g.ModeACount()
		case B2P:
			lo = g.ModeACount()
		}
		for p := lo; p < hi; p++ {
			for q := lo; q < hi; q++ {
				if d.inner.Get(v, p, q) != shadow.Get(v, p, q) {
					return fmt.Errorf("%w: variant=%d (%d,%d) incremental=%d recomputed=%d",
						ErrCacheInconsistency, v, p, q, d.inner.Get(v, p, q), shadow.Get(v, p, q))
				}
			}
		}
	}

	return nil
}

func variantsFor(g *core.Graph) []Variant {
	switch {
	case g.Bipartite():
		return []Variant{A2P, B2P}
	case g.Directed():
		return []Variant{Mix, In, Out}
	default:
		return []Variant{Two}
	}
}
