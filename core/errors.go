// File: errors.go
// Role: sentinel errors for the core package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("%w: ...", ErrX).
package core

import "errors"

var (
	// ErrInvalidNodeIndex indicates a node index outside [0,N).
	ErrInvalidNodeIndex = errors.New("core: node index out of range")

	// ErrSelfLoop indicates a self-loop was attempted when loops are disallowed.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrCrossModeRequired indicates a bipartite edge did not cross A/B modes.
	ErrCrossModeRequired = errors.New("core: bipartite edge must cross modes")

	// ErrEdgeExists indicates InsertEdge was called on an existing edge.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates RemoveEdge (or a lookup) referenced an absent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotBipartite indicates a bipartite-only operation was called on a
	// one-mode graph.
	ErrNotBipartite = errors.New("core: graph is not bipartite")
)
