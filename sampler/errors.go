package sampler

import "errors"

// ErrThetaLengthMismatch is returned when a Model's Theta vector does not
// have exactly one entry per bound Effect.
var ErrThetaLengthMismatch = errors.New("sampler: theta length does not match effect count")

// ErrNoEdges names the case of a deletion proposed on an edgeless graph.
// No kernel in this package returns it: on such a graph TNT proposes an
// addition and IFD rejects the step.
var ErrNoEdges = errors.New("sampler: no edges to propose a deletion from")
