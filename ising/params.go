package ising

// Rule selects between the SumProduct and MaxProduct belief-propagation
// variants. Coupling.SendMessages branches on it (LogSumExp vs
// max), and Variable.Sample branches on it (Bernoulli draw vs sign).
type Rule int

const (
	// SumProduct computes marginals of the product distribution.
	SumProduct Rule = iota
	// MaxProduct computes the per-variable projection of the mode.
	MaxProduct
)

// FactorParams carries the per-iteration hyper-parameters a factor
// scheduler produces: Beta is the inverse temperature applied to
// log-potentials (SumProduct only, by convention omitted, i.e. treated as
// 1, for MaxProduct); Gamma is the damping coefficient blending the
// previous outgoing message into the new one.
type FactorParams struct {
	Beta  float64
	Gamma float64
}

// VariableParams carries the per-iteration damping coefficient a variable
// scheduler produces.
type VariableParams struct {
	Gamma float64
}
