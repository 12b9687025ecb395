package ising

import (
	"math"

	"github.com/katalvlaran/beliefprop/core"
)

// entropy returns the Shannon entropy (natural log) of a probability
// vector, treating 0*log(0) as 0.
func entropy(p []float64) float64 {
	var h float64
	for _, v := range p {
		if v <= 0 {
			continue
		}
		h -= v * math.Log(v)
	}
	return h
}

// BetheFreeEntropy computes the standard Bethe approximation to the free
// entropy of a converged factor graph:
//
//	Phi = sum_f [ <log psi_f>_{b_f} + H(b_f) ] - sum_v (d_v - 1) H(b_v)
//
// where b_f/b_v are the factor/variable marginals and d_v is a variable's
// degree. This is a read-only diagnostic over already-exposed marginals
// it is a diagnostic over already-converged marginals, not used by
// Run/Sample and requires the caller to have already reached convergence.
func BetheFreeEntropy[PF, PV any](g *core.FactorGraph[Message, PF, PV, Sample]) float64 {
	var phi float64

	factorMarginals := g.FactorMarginals()
	potentials := g.Factors()
	for i, b := range factorMarginals {
		psi := potentials[i]
		var expect float64
		for k, bk := range b.Data {
			if bk <= 0 || psi.Data[k] <= 0 {
				continue
			}
			expect += bk * math.Log(psi.Data[k])
		}
		phi += expect + entropy(b.Data)
	}

	varMarginals := g.VariableMarginals()
	degrees := g.VariableDegrees()
	for i, b := range varMarginals {
		phi -= float64(degrees[i]-1) * entropy(b.Data)
	}

	return phi
}
