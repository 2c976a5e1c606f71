package effect

import (
	"fmt"

	"github.com/networkee/ergmee/core"
)

// Effect is a bound, ready-to-evaluate model term: a name, its parameters
// (decay λ and/or a bound attribute), and the two pure functions every
// term must provide.
type Effect struct {
	Name         string
	Lambda       float64
	AttrName     string
	Experimental bool
	slow         bool

	deltaFn  func(e *Effect, ctx *Context, i, j int) float64
	directFn func(e *Effect, ctx *Context) float64
	decay    *decayTable
}

// DeltaZ evaluates the change statistic for toggling dyad (i,j) against
// the pre-toggle state in ctx.
func (e *Effect) DeltaZ(ctx *Context, i, j int) float64 { return e.deltaFn(e, ctx, i, j) }

// StatDirect recomputes the effect's global statistic from scratch. Used
// for testing the closed forms, not for production sweeps.
func (e *Effect) StatDirect(ctx *Context) float64 {
	if e.directFn == nil {
		panic(fmt.Sprintf("effect: %s has no direct recomputation", e.Name))
	}

	return e.directFn(e, ctx)
}

// Slow reports whether this effect's DeltaZ is O(1)/O(degree) or whether
// it falls back to an O(N)-or-worse recomputation. Binding code should
// reject a Slow effect from a production sweep unless the caller
// explicitly opts in.
func (e *Effect) Slow() bool { return e.slow }

// factory builds a bound Effect from its parameters, validating them
// against the bound graph's shape.
type factory struct {
	build        func(lambda float64, attrName string) (*Effect, error)
	experimental bool
	needsLambda  bool
	needsAttr    bool
	shapeCheck   func(g *core.Graph) error
}

// Registry resolves effect names to bound Effect instances.
type Registry struct {
	factories      map[string]factory
	experimental   bool
	maxCachedPower int
}

// RegistryOption configures a Registry at construction.
type RegistryOption func(*Registry)

// WithExperimental enables binding effects flagged experimental. Without
// it, Bind on such a name returns ErrExperimentalDisabled.
func WithExperimental() RegistryOption {
	return func(r *Registry) { r.experimental = true }
}

// WithMaxCachedPower caps the size of every decay lookup table this
// Registry's effects build (see decay.go). n <= 0 is ignored and falls
// back to defaultMaxCachedPower.
func WithMaxCachedPower(n int) RegistryOption {
	return func(r *Registry) { r.maxCachedPower = n }
}

// NewRegistry builds a Registry with every effect in this package
// registered under its canonical name.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{factories: make(map[string]factory)}
	for _, opt := range opts {
		opt(r)
	}
	registerStructural(r)
	registerStars(r)
	registerTriangles(r)
	registerTwoPaths(r)
	registerCycles(r)
	registerAttributeEffects(r)

	return r
}

func (r *Registry) register(name string, f factory) {
	r.factories[name] = f
}

// Bind resolves name against g's shape, binding lambda and/or attrName as
// the effect requires.
func (r *Registry) Bind(name string, lambda float64, attrName string, g *core.Graph) (*Effect, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	if f.experimental && !r.experimental {
		return nil, fmt.Errorf("%w: %q", ErrExperimentalDisabled, name)
	}
	if f.needsLambda && (lambda <= 1) {
		return nil, fmt.Errorf("%w: %q got %v", ErrInvalidLambda, name, lambda)
	}
	if f.needsAttr && attrName == "" {
		return nil, fmt.Errorf("%w: %q", ErrAttributeRequired, name)
	}
	if f.shapeCheck != nil {
		if err := f.shapeCheck(g); err != nil {
			return nil, fmt.Errorf("effect %q: %w", name, err)
		}
	}

	return f.build(lambda, attrName)
}

// Names returns every registered effect name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}

	return names
}

func directedOnly(g *core.Graph) error {
	if !g.Directed() {
		return ErrDirectedOnly
	}

	return nil
}

func bipartiteOnly(g *core.Graph) error {
	if !g.Bipartite() {
		return ErrBipartiteOnly
	}

	return nil
}
