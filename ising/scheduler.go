package ising

import (
	"math"

	"github.com/katalvlaran/beliefprop/core"
)

// StandardFactorScheduler returns a factor scheduler holding Beta fixed at
// 1 for every iteration, with damping gamma.
func StandardFactorScheduler(gamma float64) core.Scheduler[FactorParams] {
	return func(int) FactorParams {
		return FactorParams{Beta: 1, Gamma: gamma}
	}
}

// ExponentialFactorScheduler returns a factor scheduler annealing Beta
// geometrically from beta0 at iteration 0 to betaT at iteration T:
// beta_i = beta0 * (betaT/beta0)^(i/T).
func ExponentialFactorScheduler(beta0, betaT float64, t int, gamma float64) core.Scheduler[FactorParams] {
	ratio := betaT / beta0
	tf := float64(t)
	return func(i int) FactorParams {
		beta := beta0 * math.Pow(ratio, float64(i)/tf)
		return FactorParams{Beta: beta, Gamma: gamma}
	}
}

// StandardVariableScheduler returns a variable scheduler holding damping
// gamma fixed for every iteration.
func StandardVariableScheduler(gamma float64) core.Scheduler[VariableParams] {
	return func(int) VariableParams {
		return VariableParams{Gamma: gamma}
	}
}
