// Package simulate runs a fixed-θ simulation: burn-in sweeps with no
// output, then repeated interval sweeps each emitting one row of observed
// z-statistics and, optionally, a graph snapshot. It never mutates the
// model's θ.
package simulate
