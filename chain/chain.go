package chain

import (
	"math/rand"

	"github.com/networkee/ergmee/attr"
	"github.com/networkee/ergmee/core"
	"github.com/networkee/ergmee/effect"
	"github.com/networkee/ergmee/twopath"
)

// Chain owns every piece of mutable state a single estimation or
// simulation run touches. It is created once per run and dropped at the
// end — there is no explicit Close, since nothing it owns holds an OS
// resource; file handles belong to the caller (cmd/ergmee), not the
// chain.
type Chain struct {
	g     *core.Graph
	cache twopath.Cache
	attrs *attr.Store
	rng   *rand.Rand
	seed  int64
}

// Option configures a Chain at construction.
type Option func(*options)

type options struct {
	debugCache bool
}

// WithDebugCache wraps the chain's two-path cache in twopath.DebugCache,
// which recomputes and cross-checks every incremental update. Expensive —
// intended for a config's debugAssertCache flag, not production runs.
func WithDebugCache() Option {
	return func(o *options) { o.debugCache = true }
}

// New builds a Chain around an already-constructed graph and attribute
// store, allocating a two-path cache of the given Kind and seeding the
// chain's own RNG deterministically from seed.
func New(g *core.Graph, cacheKind twopath.Kind, attrs *attr.Store, seed int64, opts ...Option) *Chain {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var cache twopath.Cache
	if o.debugCache {
		cache = twopath.NewDebug(cacheKind, g)
	} else {
		cache = twopath.New(cacheKind, g)
	}

	return &Chain{
		g:     g,
		cache: cache,
		attrs: attrs,
		rng:   rand.New(rand.NewSource(seed)),
		seed:  seed,
	}
}

// Context returns the narrow read-view the sampler and effect library
// operate against. Every call returns a view of the chain's *current*
// state — it is not a snapshot.
func (c *Chain) Context() *effect.Context {
	return &effect.Context{G: c.g, Cache: c.cache, Attrs: c.attrs}
}

// RNG returns the chain's own random source. Only the chain's sampler
// loop should draw from it, preserving the "each chain owns its own RNG,
// no shared mutable state between chains" contract of SPEC_FULL.md §5.
func (c *Chain) RNG() *rand.Rand { return c.rng }

// Seed returns the seed the chain's RNG was constructed from, for
// recording in trace output headers.
func (c *Chain) Seed() int64 { return c.seed }

// Graph exposes the chain's graph for read-only inspection (e.g. writing
// a snapshot). Callers must not mutate it outside the sampler's own
// toggle/cache-update pairing.
func (c *Chain) Graph() *core.Graph { return c.g }

// NodeCount is a convenience passthrough.
func (c *Chain) NodeCount() int { return c.g.N() }
