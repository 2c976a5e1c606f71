package effect

import "errors"

// ErrUnknownEffect is returned by Registry.Bind for a name with no
// registered factory.
var ErrUnknownEffect = errors.New("effect: unknown effect name")

// ErrExperimentalDisabled is returned by Registry.Bind when an effect
// marked experimental is requested from a Registry built without
// WithExperimental.
var ErrExperimentalDisabled = errors.New("effect: experimental effect requires WithExperimental")

// ErrInvalidLambda is returned when a decay-parameterized effect is bound
// with a non-positive or unit lambda, which would make (1-1/λ) undefined
// or degenerate.
var ErrInvalidLambda = errors.New("effect: lambda must be > 1")

// ErrAttributeRequired is returned when an attribute-keyed effect is bound
// without naming an attribute.
var ErrAttributeRequired = errors.New("effect: attribute name required")

// ErrDirectedOnly is returned when a directed-only effect is bound against
// an undirected or bipartite model.
var ErrDirectedOnly = errors.New("effect: directed graphs only")

// ErrBipartiteOnly is returned when a bipartite-only effect is bound
// against a one-mode model.
var ErrBipartiteOnly = errors.New("effect: bipartite graphs only")
