// Package estimator implements the Equilibrium Expectation estimation
// loop: Algorithm S (warm-up, scaling θ by a fixed multiplier toward
// E[ΣΔz] = 0) followed by Algorithm EE (the main estimation loop, with a
// choice of stochastic-approximation or Borisenko θ-update rules),
// finishing with a per-effect t-ratio convergence check.
package estimator
