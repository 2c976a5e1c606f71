package estimator

import (
	"context"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/networkee/ergmee/effect"
	"github.com/networkee/ergmee/sampler"
)

// Params collects the algorithm constants spec.md §6 names under
// "Algorithm constants".
type Params struct {
	ACA_S        float64
	ACA_EE       float64
	CompC        float64
	Ssteps       int
	EEsteps      int
	InnerSteps   int
	UseBorisenko bool
}

// Result is what a chain's estimation run produces: the fitted θ, the
// per-outer-step histories spec.md §4.3's trace record names (θ(t),
// ΣΔz(t), acceptance rate(t)), and whether convergence held.
type Result struct {
	Theta           []float64
	History         [][]float64 // History[step][effectIndex], mean ΔZ per inner sweep
	ThetaHistory    [][]float64 // ThetaHistory[step][effectIndex], θ after that step's update
	AcceptanceRates []float64   // AcceptanceRates[step]
	Converged       bool
	TRatios         []float64
	Unconverged     bool
}

// AlgorithmS runs the warm-up loop: for Params.Ssteps outer steps, sweep
// Params.InnerSteps moves, and nudge θ by a fixed multiplier ACA_S toward
// making the observed mean ΔZ vanish. Returns the resulting θ and a
// per-effect step-size scale derived from the warm-up's own ΔZ
// variability, which Algorithm EE uses to seed its adaptive step sizes.
func AlgorithmS(termCtx context.Context, kernel sampler.Kernel, state *effect.Context, rng *rand.Rand, model *sampler.Model, p Params) ([]float64, []float64, error) {
	k := len(model.Effects)
	history := make([][]float64, 0, p.Ssteps)

	for step := 0; step < p.Ssteps; step++ {
		dz, _, err := sampler.Sweep(termCtx, kernel, state, rng, model, p.InnerSteps)
		if err != nil {
			return model.Theta, nil, err
		}
		mean := make([]float64, k)
		copy(mean, dz)
		floats.Scale(1/float64(p.InnerSteps), mean)
		history = append(history, mean)

		for idx := range model.Theta {
			model.Theta[idx] -= p.ACA_S * mean[idx]
			if math.IsNaN(model.Theta[idx]) || math.IsInf(model.Theta[idx], 0) {
				return model.Theta, nil, ErrNumericFailure
			}
		}
	}

	stepScale := make([]float64, k)
	for idx := 0; idx < k; idx++ {
		col := make([]float64, len(history))
		for s, row := range history {
			col[s] = row[idx]
		}
		_, sd := stat.MeanStdDev(col, nil)
		if sd == 0 {
			sd = 1
		}
		stepScale[idx] = 1 / sd
	}

	return model.Theta, stepScale, nil
}

// AlgorithmEE runs the main estimation loop for Params.EEsteps outer
// steps, updating θ after each via the configured update rule, and
// reports the per-effect t-ratio convergence check spec.md §4.5/§8 name:
// |mean(ΔZ)/sd(ΔZ)| ≤ 0.3 over the run's history.
func AlgorithmEE(termCtx context.Context, kernel sampler.Kernel, state *effect.Context, rng *rand.Rand, model *sampler.Model, p Params, stepScale []float64) (*Result, error) {
	k := len(model.Effects)
	history := make([][]float64, 0, p.EEsteps)
	thetaHistory := make([][]float64, 0, p.EEsteps)
	acceptanceRates := make([]float64, 0, p.EEsteps)

	for step := 0; step < p.EEsteps; step++ {
		dz, accepted, err := sampler.Sweep(termCtx, kernel, state, rng, model, p.InnerSteps)
		if err != nil {
			return nil, err
		}
		mean := make([]float64, k)
		copy(mean, dz)
		floats.Scale(1/float64(p.InnerSteps), mean)
		history = append(history, mean)
		acceptanceRates = append(acceptanceRates, float64(accepted)/float64(p.InnerSteps))

		if p.UseBorisenko {
			borisenkoUpdate(model.Theta, mean, stepScale)
		} else {
			stochasticApproxUpdate(model.Theta, mean, stepScale, p.CompC, step)
		}

		snapshot := make([]float64, k)
		copy(snapshot, model.Theta)
		thetaHistory = append(thetaHistory, snapshot)

		for idx := range model.Theta {
			if math.IsNaN(model.Theta[idx]) || math.IsInf(model.Theta[idx], 0) {
				return &Result{Theta: model.Theta, History: history, ThetaHistory: thetaHistory, AcceptanceRates: acceptanceRates, Unconverged: true}, ErrNumericFailure
			}
		}
	}

	tRatios := make([]float64, k)
	converged := true
	for idx := 0; idx < k; idx++ {
		col := make([]float64, len(history))
		for s, row := range history {
			col[s] = row[idx]
		}
		mean, sd := stat.MeanStdDev(col, nil)
		if sd == 0 {
			tRatios[idx] = 0

			continue
		}
		t := math.Abs(mean / sd)
		tRatios[idx] = t
		if t > 0.3 {
			converged = false
		}
	}

	return &Result{
		Theta:           model.Theta,
		History:         history,
		ThetaHistory:    thetaHistory,
		AcceptanceRates: acceptanceRates,
		Converged:       converged,
		TRatios:         tRatios,
	}, nil
}

// stochasticApproxUpdate implements spec.md §4.5's "θₖ ← θₖ − ηₖ·ΔZₖ"
// rule with a Robbins-Monro diminishing step size: ηₖ is stepScale[k]
// divided by (1 + step/CompC), so it shrinks with the outer-step index at
// a rate set by CompC. The coefficient of variation of θₖ is not measured
// and does not feed back into ηₖ.
func stochasticApproxUpdate(theta, meanDz, stepScale []float64, compC float64, step int) {
	for k := range theta {
		eta := stepScale[k] / (1 + float64(step)/compC)
		theta[k] -= eta * meanDz[k]
	}
}

// borisenkoUpdate implements the sign-based alternative: only the sign of
// ΔZₖ drives the direction, with a magnitude set by the per-effect step
// scale — robust to ΔZ outliers at the cost of using only one bit of
// information per step.
func borisenkoUpdate(theta, meanDz, stepScale []float64) {
	for k := range theta {
		switch {
		case meanDz[k] > 0:
			theta[k] -= stepScale[k]
		case meanDz[k] < 0:
			theta[k] += stepScale[k]
		}
	}
}
