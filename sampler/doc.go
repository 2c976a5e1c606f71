// Package sampler implements the three MCMC proposal/acceptance kernels
// — Basic, Tie-No-Tie (TNT), and Improved Fixed Density (IFD) — that
// drive an ERGM chain, plus the shared sweep loop that runs any Kernel
// for a configured number of steps while polling a context.Context for
// cooperative cancellation between steps.
//
// Every kernel follows the same shape: propose a dyad toggle (or, for
// IFD, a paired toggle), score it against the current θ via the bound
// effect set, accept with the Metropolis criterion, and — only on
// acceptance — mutate the graph and its two-path cache together. No
// kernel ever mutates state on a rejected proposal.
package sampler
