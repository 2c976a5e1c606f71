package estimator

import "errors"

// ErrNumericFailure is returned when θ or an accumulated ΔZ becomes NaN
// or unbounded during estimation — spec.md §7's NumericFailure taxonomy
// entry. The owning chain terminates; other chains are unaffected.
var ErrNumericFailure = errors.New("estimator: numeric failure (NaN or Inf) in theta or ΔZ")

// ErrSingularModel names a degenerate model (a constant ΔZ column). No
// function in this package returns it: a zero standard deviation gives a
// step scale of 1 in AlgorithmS and a t-ratio of 0 in AlgorithmEE.
var ErrSingularModel = errors.New("estimator: degenerate model (ΔZ covariance is singular)")
